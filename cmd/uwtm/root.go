package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarzynski/uw-turing-machine/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "uwtm",
	Short: "uwtm translates two-tape Turing machines into single-tape ones",
	Long: `uwtm builds, from a two-tape Turing-machine description, an equivalent
single-tape machine whose transition count stays polynomial in the
input's state and alphabet size. It can also execute machines against
concrete input with a step bound.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the application logger honouring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
