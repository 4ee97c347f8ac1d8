package query

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict"
	"github.com/theflywheel/hashdict/cmd/config"
)

var (
	minValue int64
	Cmd      = &cobra.Command{
		Use:   "query <file>",
		Short: "Count the entries whose value is at least --min",
		Args:  cobra.ExactArgs(1),
		RunE:  exec,
	}
)

func init() {
	Cmd.Flags().Int64Var(&minValue, "min", 1, "Minimum value (repetitions) an entry needs to be counted")
}

func exec(cmd *cobra.Command, args []string) error {
	d, err := config.Current.LoadDictionary(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), hashdict.CountWithMinValue(d, minValue))
	return err
}
