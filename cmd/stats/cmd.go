package stats

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict/cmd/config"
)

var Cmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show the size and table occupancy of a dictionary file",
	Args:  cobra.ExactArgs(1),
	RunE:  exec,
}

func exec(cmd *cobra.Command, args []string) error {
	fi, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	d, err := config.Current.LoadDictionary(args[0])
	if err != nil {
		return err
	}

	s := d.Stats()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "entries:     %s\n", humanize.Comma(int64(s.Live))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "capacity:    %s\n", humanize.Comma(int64(s.Capacity))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "load factor: %.3f\n", s.LoadFactor); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "file size:   %s\n", humanize.Bytes(uint64(fi.Size())))
	return err
}
