package compiler

import (
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// control is a derived state of the produced machine. Every variant
// renders to a machine.State identifier; the rendering is globally
// injective because each phase owns a distinct prefix and all parameters
// appear inside the identifier. The identifier is the state: two control
// values are the same state iff they are structurally equal.
type control interface {
	state() machine.State
}

// sink lets the reserved machine states (start, accept, reject) appear
// wherever a control state is expected.
type sink machine.State

func (s sink) state() machine.State { return machine.State(s) }

// shiftCarry bubbles one cell of the original tape a single step to the
// right while the sentinel is inserted at the leftmost position.
type shiftCarry struct {
	Carry machine.Letter
}

func (s shiftCarry) state() machine.State {
	return machine.State("init-shift(" + string(s.Carry) + ")")
}

// shiftRewind walks back to the sentinel once the shifted content has
// reached the blank boundary again.
type shiftRewind struct{}

func (shiftRewind) state() machine.State { return "init-rewind" }

// packScan converts each shifted bare letter into a tracked cell.
type packScan struct{}

func (packScan) state() machine.State { return "init-pack" }

// packRewind walks back to the sentinel after packing.
type packRewind struct{}

func (packRewind) state() machine.State { return "init-return" }

// markFirst steps right off the freshly written start marker and flips
// the first cell's head tag to BOTH.
type markFirst struct{}

func (markFirst) state() machine.State { return "init-mark" }

// capture is one of the two letter slots filled while locating the
// virtual heads. The zero value is the empty slot.
type capture struct {
	Letter machine.Letter
	OK     bool
}

func (c capture) String() string {
	if !c.OK {
		return "_"
	}
	return string(c.Letter)
}

// locate scans rightward over tracked cells recording the letters under
// both virtual heads. The simulated two-tape state is not part of the
// control state; it stays hidden in the marker on the sentinel cell.
type locate struct {
	Cap1 capture
	Cap2 capture
}

func (l locate) state() machine.State {
	return machine.State("locate(" + l.Cap1.String() + "|" + l.Cap2.String() + ")")
}

// rewind carries both captured letters back to the sentinel, where the
// marker decides which concrete transition fires.
type rewind struct {
	Cap1 machine.Letter
	Cap2 machine.Letter
}

func (r rewind) state() machine.State {
	return machine.State("rewind(" + string(r.Cap1) + "|" + string(r.Cap2) + ")")
}

// move relocates both virtual heads, scanning rightward from the
// sentinel. Done1/Done2 record which heads already reached their target
// cell for this cycle.
type move struct {
	Write1 machine.Letter
	Write2 machine.Letter
	Move1  machine.Direction
	Move2  machine.Direction
	Done1  bool
	Done2  bool
}

func (m move) write(h machine.HeadTag) machine.Letter {
	if h == machine.TagHead1 {
		return m.Write1
	}
	return m.Write2
}

func (m move) dir(h machine.HeadTag) machine.Direction {
	if h == machine.TagHead1 {
		return m.Move1
	}
	return m.Move2
}

func (m move) done(h machine.HeadTag) bool {
	if h == machine.TagHead1 {
		return m.Done1
	}
	return m.Done2
}

func (m move) withDone(h machine.HeadTag) move {
	if h == machine.TagHead1 {
		m.Done1 = true
	} else {
		m.Done2 = true
	}
	return m
}

func (m move) complete() bool { return m.Done1 && m.Done2 }

func (m move) params() string {
	return string(m.Write1) + "." + string(m.Move1) + "|" +
		string(m.Write2) + "." + string(m.Move2) + "|" +
		flag(m.Done1) + flag(m.Done2)
}

func (m move) state() machine.State {
	return machine.State("move(" + m.params() + ")")
}

// place carries one head's role to the neighbouring cell after a LEFT or
// RIGHT step. Back means the origin cell still holds the other, not yet
// relocated head, so control must return there before scanning on.
type place struct {
	Head machine.HeadTag
	Next move
	Back bool
}

func (p place) state() machine.State {
	return machine.State("put(" + p.Head.String() + "|" + p.Next.params() + "|" + flag(p.Back) + ")")
}

// unclamp rolls a head's role back rightward after a LEFT step ran into
// the sentinel, realizing the simulated machine's left-boundary rule.
type unclamp struct {
	Head machine.HeadTag
	Next move
}

func (u unclamp) state() machine.State {
	return machine.State("unclamp(" + u.Head.String() + "|" + u.Next.params() + ")")
}

// moveRewind walks back to the sentinel once both heads are relocated,
// collapsing the cycle back into locate with cleared capture slots.
type moveRewind struct{}

func (moveRewind) state() machine.State { return "move-return" }

func flag(b bool) string {
	if b {
		return "+"
	}
	return "-"
}

// row assembles one output transition from control states and symbols.
func row(from control, read machine.Symbol, to control, write machine.Symbol, d machine.Direction) machine.Transition {
	return machine.Transition{
		State:  from.state(),
		Read:   read,
		Target: to.state(),
		Write:  write,
		Move:   d,
	}
}
