package compiler

import (
	"sort"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Alphabet is the working alphabet of a translation run: every letter
// occurring in any letter field of the input, plus BLANK. It is computed
// once, before any generator runs, because generator sizes are
// parameterized by its size.
type Alphabet struct {
	// Letters holds the full working alphabet in a deterministic
	// (sorted) order. The order affects only the concrete output text,
	// never correctness.
	Letters []machine.Letter
	// NonBlank is Letters without BLANK; the tape initializer iterates
	// it because input tapes are blank-terminated.
	NonBlank []machine.Letter
}

// DeriveAlphabet scans the two-tape transitions once and returns the
// working alphabet. The result depends only on the set of letters, not
// on the iteration order of the input.
func DeriveAlphabet(transitions []machine.TwoTapeTransition) Alphabet {
	set := map[machine.Letter]struct{}{machine.Blank: {}}
	for _, t := range transitions {
		set[t.Read1] = struct{}{}
		set[t.Read2] = struct{}{}
		set[t.Write1] = struct{}{}
		set[t.Write2] = struct{}{}
	}

	letters := make([]machine.Letter, 0, len(set))
	for l := range set {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	nonBlank := make([]machine.Letter, 0, len(letters)-1)
	for _, l := range letters {
		if l != machine.Blank {
			nonBlank = append(nonBlank, l)
		}
	}
	return Alphabet{Letters: letters, NonBlank: nonBlank}
}
