package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "linreg",
		Short:         "linreg fits a line with batch gradient descent",
		Long:          `linreg trains y = w*x + b on a small dataset, tracks loss, parameters and memory over the epochs and renders diagnostic charts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := zerolog.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("invalid log level '%s': %w", level, err)
			}
			zerolog.SetGlobalLevel(l)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", zerolog.InfoLevel.String(), "log level (debug, info, warn, error)")
	root.AddCommand(newTrainCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
