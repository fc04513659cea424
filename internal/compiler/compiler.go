package compiler

import (
	"sort"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Translate builds a single-tape transition table equivalent to the
// given two-tape table. The construction is a pure function: no I/O, no
// shared state, and the output order is deterministic for a given input.
//
// The produced machine first rewrites its bare input tape into the
// tracked encoding behind a left sentinel (tape initializer), then runs
// the locate / fire / move cycle per simulated step. Only the fire rows
// depend on the concrete input transitions; everything else is generated
// generically over the working alphabet, so the output size stays
// polynomial in |states|·|alphabet| with a linear fire contribution.
func Translate(transitions []machine.TwoTapeTransition) []machine.Transition {
	uni := newUniverse(transitions)
	cat := NewCatalog()

	emitInitializer(cat, uni)
	emitLocate(cat, uni)
	emitMove(cat, uni)
	emitFire(cat, transitions)

	return cat.Rows()
}

// universe is the immutable snapshot of the alphabet and state space
// computed once up front and passed to every generator. No generator
// reads anything else, so the stages have no cross-stage order
// dependency before the final deduplication.
type universe struct {
	alphabet Alphabet
	// markers lists every non-terminal state that can appear as the
	// hidden marker on the sentinel cell, in deterministic order.
	markers []machine.State
	// cells enumerates all tracked-cell symbols over the alphabet.
	cells []machine.TrackedCell
}

var headTags = []machine.HeadTag{machine.TagNone, machine.TagHead1, machine.TagHead2, machine.TagBoth}

var directions = []machine.Direction{machine.DirectionLeft, machine.DirectionRight, machine.DirectionStay}

func newUniverse(transitions []machine.TwoTapeTransition) universe {
	alpha := DeriveAlphabet(transitions)

	set := map[machine.State]struct{}{machine.StateInit: {}}
	for _, t := range transitions {
		if !t.State.Terminal() {
			set[t.State] = struct{}{}
		}
		if !t.Target.Terminal() {
			set[t.Target] = struct{}{}
		}
	}
	markers := make([]machine.State, 0, len(set))
	for s := range set {
		markers = append(markers, s)
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i] < markers[j] })

	cells := make([]machine.TrackedCell, 0, 4*len(alpha.Letters)*len(alpha.Letters))
	for _, a := range alpha.Letters {
		for _, b := range alpha.Letters {
			for _, tag := range headTags {
				cells = append(cells, machine.TrackedCell{Letter1: a, Letter2: b, Tag: tag})
			}
		}
	}

	return universe{alphabet: alpha, markers: markers, cells: cells}
}
