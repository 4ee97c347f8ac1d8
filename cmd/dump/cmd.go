package dump

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theflywheel/hashdict"
	"github.com/theflywheel/hashdict/cmd/config"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type dumpOptions struct {
	format string
	min    int64
}

type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value int64  `json:"value" yaml:"value"`
}

var (
	options = dumpOptions{}
	Cmd     = &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the entries of a dictionary file",
		Long: `Print the entries of a dictionary file, highest value first.
Entries with equal values are ordered by key.`,
		Args: cobra.ExactArgs(1),
		RunE: exec,
	}
)

func init() {
	Cmd.Flags().StringVarP(&options.format, "format", "f", formatText, "Output format: text, json or yaml")
	Cmd.Flags().Int64Var(&options.min, "min", math.MinInt64, "Only print entries with at least this value")
}

// Entries returns the entries of d with a value of at least threshold, sorted by
// descending value and then by key.
func Entries(d *hashdict.Dictionary[string, int64], threshold int64) []Entry {
	entries := make([]Entry, 0, d.Len())
	for k, v := range d.All() {
		if v >= threshold {
			entries = append(entries, Entry{Key: k, Value: v})
		}
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return entries
}

func exec(cmd *cobra.Command, args []string) error {
	d, err := config.Current.LoadDictionary(args[0])
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), Entries(d, options.min), options.format)
}

func write(w io.Writer, entries []Entry, format string) error {
	switch format {
	case formatText:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", e.Value, e.Key); err != nil {
				return err
			}
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}
	return errors.Errorf("unknown format %q", format)
}
