package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	turing "github.com/mwarzynski/uw-turing-machine"
	"github.com/mwarzynski/uw-turing-machine/internal/parser"
	"github.com/mwarzynski/uw-turing-machine/internal/presentation/tui"
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

var translateCmd = &cobra.Command{
	Use:   "translate <machine-file>",
	Short: "Translate a two-tape machine into a single-tape one",
	Long: `Reads a two-tape machine description (8 space-separated fields per line,
or the YAML form) and prints the equivalent single-tape table, one
5-field row per line.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTranslate(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().String("format", "auto", "Input format: text, yaml or auto (by extension)")
	translateCmd.Flags().StringP("out", "o", "", "Write the table to a file instead of stdout")
}

func runTranslate(cmd *cobra.Command, path string) error {
	transitions, err := readTwoTape(cmd, path)
	if err != nil {
		return err
	}

	rows := turing.Translate(transitions)
	table := machine.RenderTable(rows)

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := os.WriteFile(out, []byte(table), 0o644); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	} else {
		fmt.Print(table)
	}

	tui.PrintSummary(len(rows), turing.Deterministic(rows))
	return nil
}

// readTwoTape loads a two-tape description honouring --format.
func readTwoTape(cmd *cobra.Command, path string) ([]machine.TwoTapeTransition, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "auto" {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "text"
		}
	}

	switch format {
	case "yaml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open machine description: %w", err)
		}
		defer f.Close()
		return parser.ParseTwoTapeYAML(f)
	case "text":
		return parser.ReadTwoTape(path)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
