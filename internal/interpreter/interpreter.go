/*
Package interpreter executes a single-tape machine against a concrete
input tape and a step bound. It is a collaborator of the translator, not
part of the construction itself: the scenario tests use it to run
translated tables, and `uwtm run` exposes it on the command line.
*/
package interpreter

import (
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// Move is the action half of a transition row: what to write, where to
// go, and which state to enter.
type Move struct {
	Write  string
	Dir    machine.Direction
	Target machine.State
}

// Definition indexes a transition table by (state, read symbol). Symbols
// are compared by their rendering, so tables read back from text behave
// exactly like freshly translated ones.
type Definition struct {
	moves map[machine.State]map[string]Move
}

// NewDefinition builds the lookup index. When several rows match the
// same (state, symbol) pair the first one wins, mirroring a
// deterministic machine's single applicable row.
func NewDefinition(rows []machine.Transition) *Definition {
	d := &Definition{moves: make(map[machine.State]map[string]Move)}
	for _, r := range rows {
		byRead, ok := d.moves[r.State]
		if !ok {
			byRead = make(map[string]Move)
			d.moves[r.State] = byRead
		}
		read := r.Read.Render()
		if _, exists := byRead[read]; exists {
			continue
		}
		byRead[read] = Move{Write: r.Write.Render(), Dir: r.Move, Target: r.Target}
	}
	return d
}

// Move returns the applicable move, if any.
func (d *Definition) Move(state machine.State, symbol string) (Move, bool) {
	m, ok := d.moves[state][symbol]
	return m, ok
}

// Machine runs a definition step by step.
type Machine struct {
	def *Definition
}

// New creates a machine for the given definition.
func New(def *Definition) *Machine {
	return &Machine{def: def}
}

// Result is the outcome of a bounded run.
type Result struct {
	// Accepted reports whether the run reached the accepting state.
	Accepted bool
	// Halted reports whether the run terminated on its own (terminal
	// state reached, or no applicable row) within the step bound.
	Halted bool
	// State is the state the run ended in.
	State machine.State
	// Steps counts the transitions actually taken.
	Steps int
	// Tape is the final tape content.
	Tape []string
}

// Run executes at most steps transitions starting in the initial state
// with the head on the first cell. Reading past the written extent
// yields BLANK; writing past it extends the tape; LEFT at the first cell
// keeps the head where it is. A missing row halts the run rejecting.
func (m *Machine) Run(steps int, tape []string) Result {
	work := make([]string, len(tape))
	copy(work, tape)

	head := 0
	state := machine.StateInit
	taken := 0
	halted := false

	for taken < steps {
		symbol := string(machine.Blank)
		if head < len(work) && work[head] != "" {
			symbol = work[head]
		}

		mv, ok := m.def.Move(state, symbol)
		if !ok {
			state = machine.StateReject
			halted = true
			break
		}

		state = mv.Target
		for head >= len(work) {
			work = append(work, string(machine.Blank))
		}
		work[head] = mv.Write

		switch mv.Dir {
		case machine.DirectionLeft:
			if head > 0 {
				head--
			}
		case machine.DirectionRight:
			head++
		}
		taken++

		if state.Terminal() {
			halted = true
			break
		}
	}

	return Result{
		Accepted: state == machine.StateAccept,
		Halted:   halted,
		State:    state,
		Steps:    taken,
		Tape:     work,
	}
}

// TapeFromString turns raw input into a tape, one cell per rune. This is
// the shape the original bare input format uses: single-rune letters,
// no separators.
func TapeFromString(s string) []string {
	tape := make([]string, 0, len(s))
	for _, r := range s {
		tape = append(tape, string(r))
	}
	return tape
}
