package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwarzynski/uw-turing-machine/internal/interpreter"
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

const stepLimit = 100000

func runTranslated(t *testing.T, rows []machine.TwoTapeTransition, input string) interpreter.Result {
	t.Helper()
	table := Translate(rows)
	require.True(t, Deterministic(table), "translated table must stay deterministic")
	m := interpreter.New(interpreter.NewDefinition(table))
	return m.Run(stepLimit, interpreter.TapeFromString(input))
}

func TestTranslate_ImmediateAccept(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "accept", "0", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.True(t, res.Accepted)
	assert.True(t, res.Halted)
}

func TestTranslate_LeftClamp(t *testing.T) {
	// Head 1 writes and tries to run off the left edge. The simulated
	// machine only accepts if the head was clamped back onto cell 0.
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "q", "1", "0", "L", "S"),
		two("q", "1", "0", "accept", "1", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.True(t, res.Accepted)
	assert.True(t, res.Halted)
}

func TestTranslate_BothHeadsExtendRight(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "r", "1", "1", "R", "R"),
		two("r", "0", "0", "accept", "0", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.True(t, res.Accepted)
}

func TestTranslate_HeadsDiverge(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "d", "1", "2", "R", "S"),
		two("d", "0", "2", "accept", "0", "2", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.True(t, res.Accepted)
}

func TestTranslate_ColocatedHeadsSplit(t *testing.T) {
	// Both heads start on cell 0, then walk apart in opposite
	// directions. Head 2 clamps, head 1 steps right.
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "s", "1", "2", "R", "L"),
		two("s", "0", "2", "accept", "0", "2", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.True(t, res.Accepted)
}

func TestTranslate_RejectByExplicitRow(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "reject", "0", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "")
	assert.False(t, res.Accepted)
	assert.True(t, res.Halted)
}

func TestTranslate_StuckSimulatedMachineRejects(t *testing.T) {
	// No row for (start, 1, 0), so the simulated machine is stuck on
	// input "1". The single-tape machine must end up rejecting too.
	rows := []machine.TwoTapeTransition{
		two("q", "1", "0", "q", "1", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "1")
	assert.False(t, res.Accepted)
}

func TestTranslate_HeadInvariantAfterSetup(t *testing.T) {
	// A machine with no row out of start gets stuck right after the
	// tape rewrite, leaving the initial configuration on the tape.
	rows := []machine.TwoTapeTransition{
		two("q", "1", "0", "q", "1", "0", "S", "S"),
	}
	res := runTranslated(t, rows, "11")

	var head1, head2 int
	for _, raw := range res.Tape {
		cell, ok := machine.ParseTrackedCell(raw)
		if !ok {
			continue
		}
		if cell.Tag.Has(machine.TagHead1) {
			head1++
		}
		if cell.Tag.Has(machine.TagHead2) {
			head2++
		}
	}
	assert.Equal(t, 1, head1, "exactly one cell carries head 1")
	assert.Equal(t, 1, head2, "exactly one cell carries head 2")
}

func TestTranslate_BlowUpIsIndependentOfTransitionCount(t *testing.T) {
	// Adding a transition over the same alphabet and state set must
	// grow the table by exactly the rows dedicated to that transition,
	// not rescale the generic machinery.
	base := []machine.TwoTapeTransition{
		two("start", "0", "0", "a", "1", "1", "R", "R"),
		two("a", "0", "0", "accept", "0", "0", "S", "S"),
	}
	extended := append(append([]machine.TwoTapeTransition{}, base...),
		two("a", "1", "1", "reject", "1", "1", "S", "S"),
	)

	baseLen := len(Translate(base))
	extendedLen := len(Translate(extended))
	assert.Equal(t, baseLen+1, extendedLen)
}

func TestTranslate_DuplicateLookupTriplesCollapse(t *testing.T) {
	// Two rows on the same (state, read pair): the first one wins, so
	// the output stays deterministic.
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "accept", "0", "0", "S", "S"),
		two("start", "0", "0", "reject", "0", "0", "S", "S"),
	}
	table := Translate(rows)
	require.True(t, Deterministic(table))

	m := interpreter.New(interpreter.NewDefinition(table))
	res := m.Run(stepLimit, nil)
	assert.True(t, res.Accepted)
}

func TestTranslate_OutputIsReproducible(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		two("start", "0", "0", "a", "1", "1", "R", "R"),
		two("a", "0", "0", "accept", "0", "0", "S", "S"),
	}
	first := Translate(rows)
	second := Translate(rows)
	assert.Equal(t, first, second)
}
