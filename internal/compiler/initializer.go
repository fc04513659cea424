package compiler

import (
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// emitInitializer produces the rows that rewrite a bare input tape
// `s0 s1 … BLANK…` into `SENTINEL (s0|BLANK|B) (s1|BLANK|_) …`.
//
// Stage 1 shifts the physical tape one cell rightward: the first letter
// is swapped for the sentinel and then bubbled to the right using a
// single-cell carry encoded in the state, until the shifted content
// reaches the blank boundary again. Stage 2 packs each shifted letter
// into a tracked cell, walks back to the sentinel, writes the start
// marker over it, steps once right and flips that first cell's head tag
// to BOTH, handing control to locate with empty capture slots.
//
// Empty input (first symbol already BLANK) skips stage 1; the packed
// first cell becomes (BLANK|BLANK|B).
func emitInitializer(cat *Catalog, uni universe) {
	start := sink(machine.StateInit)

	// Stage 1: shift right behind the sentinel.
	for _, x := range uni.alphabet.NonBlank {
		cat.Add(row(start, x, shiftCarry{Carry: x}, machine.Sentinel, machine.DirectionRight))
		for _, y := range uni.alphabet.NonBlank {
			cat.Add(row(shiftCarry{Carry: x}, y, shiftCarry{Carry: y}, x, machine.DirectionRight))
		}
		cat.Add(row(shiftCarry{Carry: x}, machine.Blank, shiftRewind{}, x, machine.DirectionLeft))
		cat.Add(row(shiftRewind{}, x, shiftRewind{}, x, machine.DirectionLeft))
	}
	cat.Add(row(shiftRewind{}, machine.Sentinel, packScan{}, machine.Sentinel, machine.DirectionRight))

	// Empty input: no content to shift, only the sentinel is written.
	cat.Add(row(start, machine.Blank, packScan{}, machine.Sentinel, machine.DirectionRight))

	// Stage 2: pack, walk back, plant the start marker, flip to BOTH.
	for _, x := range uni.alphabet.NonBlank {
		packed := machine.TrackedCell{Letter1: x, Letter2: machine.Blank, Tag: machine.TagNone}
		first := machine.TrackedCell{Letter1: x, Letter2: machine.Blank, Tag: machine.TagBoth}
		cat.Add(row(packScan{}, x, packScan{}, packed, machine.DirectionRight))
		cat.Add(row(packRewind{}, packed, packRewind{}, packed, machine.DirectionLeft))
		cat.Add(row(markFirst{}, packed, locate{}, first, machine.DirectionStay))
	}
	cat.Add(row(packScan{}, machine.Blank, packRewind{}, machine.Blank, machine.DirectionLeft))
	cat.Add(row(packRewind{}, machine.Sentinel, markFirst{}, machine.Marker{State: machine.StateInit}, machine.DirectionRight))

	emptyFirst := machine.TrackedCell{Letter1: machine.Blank, Letter2: machine.Blank, Tag: machine.TagBoth}
	cat.Add(row(markFirst{}, machine.Blank, locate{}, emptyFirst, machine.DirectionStay))
}
