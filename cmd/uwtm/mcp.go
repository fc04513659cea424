package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	turing "github.com/mwarzynski/uw-turing-machine"
	"github.com/mwarzynski/uw-turing-machine/internal/server"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the translate and run tools over the Model Context Protocol.`,
	Run: func(cmd *cobra.Command, args []string) {
		s := server.NewMCP(turing.Version)
		if err := s.ServeStdio(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
