package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

func row(state, read, target, write string, move machine.Direction) machine.Transition {
	return machine.Transition{
		State:  machine.State(state),
		Read:   machine.Letter(read),
		Target: machine.State(target),
		Write:  machine.Letter(write),
		Move:   move,
	}
}

func TestRun_AcceptsAndCountsSteps(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "1", "start", "1", machine.DirectionRight),
		row("start", "0", "accept", "0", machine.DirectionStay),
	})
	res := New(def).Run(100, TapeFromString("111"))

	assert.True(t, res.Accepted)
	assert.True(t, res.Halted)
	assert.Equal(t, machine.StateAccept, res.State)
	assert.Equal(t, 4, res.Steps)
}

func TestRun_StuckMeansReject(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "1", "start", "1", machine.DirectionRight),
	})
	res := New(def).Run(100, TapeFromString("10"))

	assert.False(t, res.Accepted)
	assert.True(t, res.Halted)
	assert.Equal(t, machine.StateReject, res.State)
}

func TestRun_LeftMoveClampsAtCellZero(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "1", "q", "2", machine.DirectionLeft),
		row("q", "2", "accept", "2", machine.DirectionStay),
	})
	res := New(def).Run(100, TapeFromString("1"))

	assert.True(t, res.Accepted)
	assert.Equal(t, []string{"2"}, res.Tape)
}

func TestRun_ExtendsTapeWithBlanks(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "1", "start", "1", machine.DirectionRight),
		row("start", "0", "accept", "x", machine.DirectionStay),
	})
	res := New(def).Run(100, TapeFromString("1"))

	assert.True(t, res.Accepted)
	assert.Equal(t, []string{"1", "x"}, res.Tape)
}

func TestRun_StepBoundExhausted(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "0", "start", "0", machine.DirectionRight),
	})
	res := New(def).Run(5, TapeFromString(""))

	assert.False(t, res.Halted)
	assert.False(t, res.Accepted)
	assert.Equal(t, 5, res.Steps)
}

func TestNewDefinition_FirstRowWins(t *testing.T) {
	def := NewDefinition([]machine.Transition{
		row("start", "0", "accept", "0", machine.DirectionStay),
		row("start", "0", "reject", "0", machine.DirectionStay),
	})
	res := New(def).Run(10, TapeFromString(""))
	assert.True(t, res.Accepted)
}

func TestTapeFromString(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "1"}, TapeFromString("121"))
	assert.Empty(t, TapeFromString(""))
}
