package compiler

import (
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Catalog is the append-only registry every generator emits into.
// Rows are deduplicated structurally: the generic locate/move rows are
// requested once per point of the parameter space but the fire rows are
// requested once per concrete input transition, so the same row can
// arrive repeatedly. Emission order is first-insertion order, which
// makes the output deterministic for a given input.
type Catalog struct {
	rows []machine.Transition
	seen map[machine.Transition]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{seen: make(map[machine.Transition]struct{})}
}

// Add appends the row unless an identical row was added before.
func (c *Catalog) Add(t machine.Transition) {
	if _, ok := c.seen[t]; ok {
		return
	}
	c.seen[t] = struct{}{}
	c.rows = append(c.rows, t)
}

// Len reports the number of distinct rows collected so far.
func (c *Catalog) Len() int { return len(c.rows) }

// Rows returns the collected rows in insertion order.
func (c *Catalog) Rows() []machine.Transition { return c.rows }

// Deterministic reports whether at most one row matches every
// (state, symbol) pair. A deterministic input always yields a
// deterministic output; this is the check the tests and the CLI use.
func Deterministic(rows []machine.Transition) bool {
	type lookup struct {
		state machine.State
		read  machine.Symbol
	}
	seen := make(map[lookup]struct{}, len(rows))
	for _, r := range rows {
		k := lookup{r.State, r.Read}
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}
