package compare

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict"
	"github.com/theflywheel/hashdict/cmd/config"
)

var Cmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Report whether two dictionary files hold the same entries",
	Args:  cobra.ExactArgs(2),
	RunE:  exec,
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

	result := "different"
	if hashdict.Equal(first, second) {
		result = "equal"
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
