package main

import (
	"fmt"

	"github.com/spf13/cobra"

	turing "github.com/mwarzynski/uw-turing-machine"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of uwtm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("uwtm version %s\n", turing.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
