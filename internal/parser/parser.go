/*
Package parser reads textual machine descriptions.

The line formats are space-separated tokens, one transition per line.
Blank lines and lines starting with "//" are skipped. Field count and
direction tokens are validated here; alphabet membership is the
construction's business, not the parser's.
*/
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// ReadTwoTape reads a two-tape machine description from a file.
func ReadTwoTape(path string) ([]machine.TwoTapeTransition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open machine description: %w", err)
	}
	defer f.Close()
	return ParseTwoTape(f)
}

// ParseTwoTape decodes the 8-field two-tape line format:
// "<state> <symbol1> <symbol2> <target-state> <symbol1> <symbol2> <dir1> <dir2>".
func ParseTwoTape(r io.Reader) ([]machine.TwoTapeTransition, error) {
	var transitions []machine.TwoTapeTransition
	err := eachLine(r, func(lineNo int, fields []string) error {
		if len(fields) != 8 {
			return fmt.Errorf("line %d: %w: got %d fields, want 8", lineNo, machine.ErrFieldCount, len(fields))
		}
		move1, err := machine.ParseDirection(fields[6])
		if err != nil {
			return fmt.Errorf("line %d: %w: %q", lineNo, err, fields[6])
		}
		move2, err := machine.ParseDirection(fields[7])
		if err != nil {
			return fmt.Errorf("line %d: %w: %q", lineNo, err, fields[7])
		}
		transitions = append(transitions, machine.TwoTapeTransition{
			State:  machine.State(fields[0]),
			Read1:  machine.Letter(fields[1]),
			Read2:  machine.Letter(fields[2]),
			Target: machine.State(fields[3]),
			Write1: machine.Letter(fields[4]),
			Write2: machine.Letter(fields[5]),
			Move1:  move1,
			Move2:  move2,
		})
		return nil
	})
	return transitions, err
}

// ReadSingleTape reads a single-tape machine description from a file.
func ReadSingleTape(path string) ([]machine.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open machine description: %w", err)
	}
	defer f.Close()
	return ParseSingleTape(f)
}

// ParseSingleTape decodes the 5-field single-tape line format:
// "<state> <symbol> <target-state> <symbol> <direction>".
func ParseSingleTape(r io.Reader) ([]machine.Transition, error) {
	var transitions []machine.Transition
	err := eachLine(r, func(lineNo int, fields []string) error {
		if len(fields) != 5 {
			return fmt.Errorf("line %d: %w: got %d fields, want 5", lineNo, machine.ErrFieldCount, len(fields))
		}
		move, err := machine.ParseDirection(fields[4])
		if err != nil {
			return fmt.Errorf("line %d: %w: %q", lineNo, err, fields[4])
		}
		transitions = append(transitions, machine.Transition{
			State:  machine.State(fields[0]),
			Read:   machine.ParseSymbol(fields[1]),
			Target: machine.State(fields[2]),
			Write:  machine.ParseSymbol(fields[3]),
			Move:   move,
		})
		return nil
	})
	return transitions, err
}

// eachLine feeds every non-blank, non-comment line to fn, split on
// single spaces.
func eachLine(r io.Reader, fn func(lineNo int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := fn(lineNo, strings.Split(line, " ")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read machine description: %w", err)
	}
	return nil
}
