package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theflywheel/hashdict/cmd/compare"
	"github.com/theflywheel/hashdict/cmd/config"
	"github.com/theflywheel/hashdict/cmd/count"
	"github.com/theflywheel/hashdict/cmd/dump"
	"github.com/theflywheel/hashdict/cmd/intersect"
	"github.com/theflywheel/hashdict/cmd/query"
	"github.com/theflywheel/hashdict/cmd/stats"
	"github.com/theflywheel/hashdict/internal/logging"
)

var (
	logLevelStr string
	configFile  string

	rootCmd = &cobra.Command{
		Use:               "hashdict",
		Short:             "Build and query word-count dictionary files",
		Long:              `Build, persist, query, intersect and compare word-count dictionaries.`,
		PersistentPreRunE: configure,
		SilenceUsage:      true,
	}
)

func init() {
	def := config.Default()
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default ./hashdict.yaml when present)")
	rootCmd.PersistentFlags().String("hasher", def.Hasher, "Key hash function [xxhash|xxh3|fnv1a]")
	rootCmd.PersistentFlags().Int("initial-capacity", def.InitialCapacity, "Initial slot count of new tables")
	rootCmd.PersistentFlags().Float64("max-load-factor", def.MaxLoadFactor, "Load factor that triggers doubling")

	rootCmd.AddCommand(count.Cmd)
	rootCmd.AddCommand(query.Cmd)
	rootCmd.AddCommand(intersect.Cmd)
	rootCmd.AddCommand(compare.Cmd)
	rootCmd.AddCommand(dump.Cmd)
	rootCmd.AddCommand(stats.Cmd)
}

type LogLevelError string

func (l LogLevelError) Error() string {
	return fmt.Sprintf("unknown log level (%s)", string(l))
}

func configure(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return LogLevelError(logLevelStr)
	}
	logging.LogLevel = level
	logging.ConfigureLogger()

	conf, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	config.Current = conf
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
