package turing

import (
	"github.com/mwarzynski/uw-turing-machine/internal/compiler"
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Version is the library and CLI version.
const Version = "1.2.0"

// Translate builds a single-tape transition table equivalent to the
// given two-tape table. It is a pure function: the output is
// deterministic for a given input, duplicate rows are removed, and a
// deterministic input yields a deterministic output.
func Translate(transitions []machine.TwoTapeTransition) []machine.Transition {
	return compiler.Translate(transitions)
}

// Deterministic reports whether at most one row of the table matches any
// (state, symbol) pair.
func Deterministic(rows []machine.Transition) bool {
	return compiler.Deterministic(rows)
}
