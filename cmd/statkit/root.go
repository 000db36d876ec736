package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "statkit",
		Short: "statkit - descriptive statistics for a sample of numbers",
		Long: `statkit computes descriptive statistics over a sample of real values.

It reports central tendency, dispersion, shape, the empirical distribution and
a confidence interval for the mean, and draws a character histogram. Samples
come from files, standard input, the command line, an interactive form or a
postgres query.`,
		Version:      version,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&a.configDir, "config-dir", "C", ".", "Directory to start searching for .statkit.yaml")
	flags.StringVar(&a.tableFlag, "table", "", "Critical-value table: embedded, generated, a file path or an Azure blob URL")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		a.ctx = cmd.Context()
		a.in = cmd.InOrStdin()
		a.errOut = cmd.ErrOrStderr()
		if err := a.loadConfig(); err != nil {
			return err
		}
		if a.debug {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newSummaryCommand(a))
	cmd.AddCommand(newDescribeCommand(a))
	cmd.AddCommand(newPercentileCommand(a))
	cmd.AddCommand(newCICommand(a))
	cmd.AddCommand(newSimulateCommand(a))
	cmd.AddCommand(newSearchCommand(a))
	cmd.AddCommand(newSubtractCommand(a))
	cmd.AddCommand(newTableCommand(a))
	cmd.AddCommand(newCacheCommand(a))
	cmd.AddCommand(newDemoCommand(a))
	cmd.AddCommand(newGenerateCommand(a))

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
