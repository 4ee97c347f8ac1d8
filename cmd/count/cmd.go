package count

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict/cmd/config"
	"github.com/theflywheel/hashdict/internal/wordcount"
)

type countOptions struct {
	output string
	wordcount.Options
}

var (
	options = countOptions{Options: wordcount.DefaultOptions}
	Cmd     = &cobra.Command{
		Use:   "count [files...]",
		Short: "Count the words of text files into a dictionary file",
		Long: `Count the words of the given text files (or stdin when none is given, or "-")
and save the per-word counts to a dictionary file.`,
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&options.output, "output", "o", "", "Dictionary file to write")
	Cmd.Flags().IntVar(&options.MinLength, "min-length", wordcount.DefaultOptions.MinLength, "Skip words shorter than this many characters")
	Cmd.Flags().BoolVar(&options.CaseSensitive, "case-sensitive", false, "Keep the case of words")
	_ = Cmd.MarkFlagRequired("output")
}

func exec(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{wordcount.Stdin}
	}

	d, err := config.Current.NewDictionary()
	if err != nil {
		return err
	}

	words, err := wordcount.CountFiles(args, d, options.Options)
	if err != nil {
		return err
	}

	if err := config.SaveDictionary(options.output, d); err != nil {
		return err
	}

	slog.Info("Saved word counts",
		slog.String("path", options.output),
		slog.Int("words", words),
		slog.Int("distinct", d.Len()))
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d words, %d distinct\n", words, d.Len())
	return err
}
