package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwarzynski/uw-turing-machine/internal/interpreter"
	"github.com/mwarzynski/uw-turing-machine/internal/parser"
	"github.com/mwarzynski/uw-turing-machine/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <machine-file> <steps>",
	Short: "Execute a single-tape machine against an input tape",
	Long: `Runs a single-tape machine description for at most <steps> transitions
and prints YES when the run accepts, NO otherwise. The input tape is
read from --tape, or from the first line of stdin.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRun(cmd, args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("tape", "", "Input tape, one letter per rune (default: first line of stdin)")
}

func runRun(cmd *cobra.Command, args []string) error {
	rows, err := parser.ReadSingleTape(args[0])
	if err != nil {
		return err
	}
	steps, err := strconv.Atoi(args[1])
	if err != nil || steps <= 0 {
		return fmt.Errorf("steps must be a positive integer, got %q", args[1])
	}

	tape, _ := cmd.Flags().GetString("tape")
	if !cmd.Flags().Changed("tape") {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		tape = strings.TrimRight(line, "\r\n")
	}

	m := interpreter.New(interpreter.NewDefinition(rows))
	res := m.Run(steps, interpreter.TapeFromString(tape))
	tui.PrintVerdict(res)
	return nil
}
