package intersect

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict/cmd/config"
)

var (
	output string
	Cmd    = &cobra.Command{
		Use:   "intersect <first> <second>",
		Short: "Write the entries of <first> whose keys also appear in <second>",
		Long: `Write the entries of <first> whose keys also appear in <second>.
Values are always taken from <first>.`,
		Args: cobra.ExactArgs(2),
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Dictionary file to write")
	_ = Cmd.MarkFlagRequired("output")
}

func exec(cmd *cobra.Command, args []string) error {
	first, err := config.Current.LoadDictionary(args[0])
	if err != nil {
		return err
	}
	second, err := config.Current.LoadDictionary(args[1])
	if err != nil {
		return err
	}

	result := first.Intersection(second)
	if err := config.SaveDictionary(output, result); err != nil {
		return err
	}

	slog.Debug("Saved intersection",
		slog.String("path", output),
		slog.Int("entries", result.Len()))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", result.Len())
	return err
}
