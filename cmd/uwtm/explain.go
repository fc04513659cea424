package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwarzynski/uw-turing-machine/internal/presentation/tui"
)

//go:embed explain.md
var explainText string

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Describe the tape encoding and the locate/fire/move cycle",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(tui.RenderMarkdown(explainText))
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
