package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwarzynski/uw-turing-machine/internal/presentation/graph"
)

var graphCmd = &cobra.Command{
	Use:   "graph <machine-file>",
	Short: "Render a two-tape machine as a Mermaid flowchart",
	Long:  `Prints Mermaid flowchart syntax for the state graph of a two-tape machine.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transitions, err := readTwoTape(cmd, args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(transitions))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("format", "auto", "Input format: text, yaml or auto (by extension)")
}
