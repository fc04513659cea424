/*
Package turing translates two-tape Turing-machine descriptions into
equivalent single-tape machines, preserving determinism and keeping the
output transition count polynomial in the input's state and alphabet
size.

The produced machine encodes both virtual tapes on one physical track:
every cell packs the letters of both tapes together with a head
occupancy tag, behind a reserved left sentinel. Each simulated step runs
a locate / fire / move cycle: locate captures the letters under both
virtual heads, fire applies the matching two-tape transition read off a
hidden state marker parked on the sentinel cell, and move relocates each
head by at most one cell.

# Usage

	transitions, err := parser.ReadTwoTape("machine.tm")
	if err != nil {
		log.Fatal(err)
	}
	rows := turing.Translate(transitions)
	fmt.Print(machine.RenderTable(rows))

The `uwtm` command wraps this library with a CLI, an HTTP API and an
MCP adapter.
*/
package turing
