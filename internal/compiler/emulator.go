package compiler

import (
	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// One emulation cycle of the produced machine:
//
//	locate(_|_) → … → locate(l1|l2) → rewind(l1|l2) → fire → move → … → locate(_|_)
//
// Locate and move rows are generated generically over the whole
// alphabet/direction space; only the fire rows (see emitFire) depend on
// the concrete input transitions.

// emitLocate produces the shared sub-machine that records the letters
// under both virtual heads without altering tape content, then carries
// them back to the sentinel. Exactly one row exists per (tracked-cell
// symbol, capture-state) combination, so locate never introduces
// nondeterminism.
func emitLocate(cat *Catalog, uni universe) {
	options := make([]capture, 0, len(uni.alphabet.Letters)+1)
	options = append(options, capture{})
	for _, l := range uni.alphabet.Letters {
		options = append(options, capture{Letter: l, OK: true})
	}

	for _, c1 := range options {
		for _, c2 := range options {
			if c1.OK && c2.OK {
				// Both slots filled is never a scanning state; control
				// has already reversed into rewind.
				continue
			}
			from := locate{Cap1: c1, Cap2: c2}
			for _, cell := range uni.cells {
				n1, n2 := c1, c2
				if !n1.OK && cell.Tag.Has(machine.TagHead1) {
					n1 = capture{Letter: cell.Letter1, OK: true}
				}
				if !n2.OK && cell.Tag.Has(machine.TagHead2) {
					n2 = capture{Letter: cell.Letter2, OK: true}
				}
				if n1.OK && n2.OK {
					cat.Add(row(from, cell, rewind{Cap1: n1.Letter, Cap2: n2.Letter}, cell, machine.DirectionLeft))
				} else {
					cat.Add(row(from, cell, locate{Cap1: n1, Cap2: n2}, cell, machine.DirectionRight))
				}
			}
		}
	}

	// rewind walks left over tracked cells until it reaches the marker,
	// the deterministic anchor independent of where the heads sit.
	for _, a := range uni.alphabet.Letters {
		for _, b := range uni.alphabet.Letters {
			from := rewind{Cap1: a, Cap2: b}
			for _, cell := range uni.cells {
				cat.Add(row(from, cell, from, cell, machine.DirectionLeft))
			}
		}
	}
}

// emitFire produces one row per concrete two-tape transition: with both
// captures complete and the head on the hidden marker, the matching
// transition jumps straight to a terminal state (restoring the plain
// sentinel) or enters the move phase carrying both write letters and
// directions as state parameters, rewriting the marker to the target
// state. Captured triples with no matching transition get no row at all:
// the translated run then halts without accepting, which models
// rejection-by-stuck. No reachability pruning is performed.
func emitFire(cat *Catalog, transitions []machine.TwoTapeTransition) {
	seen := make(map[machine.TwoTapeKey]struct{}, len(transitions))
	for _, t := range transitions {
		// Several rows on the same lookup triple would make the output
		// nondeterministic; the first row wins, the interpreter's rule.
		if _, ok := seen[t.Key()]; ok {
			continue
		}
		seen[t.Key()] = struct{}{}
		from := rewind{Cap1: t.Read1, Cap2: t.Read2}
		marker := machine.Marker{State: t.State}
		if t.Target.Terminal() {
			cat.Add(row(from, marker, sink(t.Target), machine.Sentinel, machine.DirectionStay))
			continue
		}
		next := move{Write1: t.Write1, Write2: t.Write2, Move1: t.Move1, Move2: t.Move2}
		cat.Add(row(from, marker, next, machine.Marker{State: t.Target}, machine.DirectionRight))
	}
}

// emitMove produces the head-relocation sub-machine: a rightward scan
// that, per head and per its own direction, rewrites the letter in place
// (STAY), or carries the head role one cell left or right (place), with
// left underflow clamped at the sentinel (unclamp) and right overflow
// extending the tape with a fresh blank tracked cell. Co-located pairs
// are separated by relocating head 1 first and returning for head 2;
// roles landing on the same cell re-merge through plain tag arithmetic.
func emitMove(cat *Catalog, uni universe) {
	for _, ms := range uni.moveStates() {
		for _, cell := range uni.cells {
			cat.Add(moveRow(ms, cell))
		}
	}
	for _, ps := range uni.placeStates() {
		emitPlace(cat, uni, ps)
	}
	for _, us := range uni.unclampStates() {
		emitUnclamp(cat, uni, us)
	}

	// Both heads relocated: walk back to the marker and start the next
	// cycle with cleared capture slots.
	for _, cell := range uni.cells {
		cat.Add(row(moveRewind{}, cell, moveRewind{}, cell, machine.DirectionLeft))
	}
	for _, q := range uni.markers {
		m := machine.Marker{State: q}
		cat.Add(row(moveRewind{}, m, locate{}, m, machine.DirectionRight))
	}
}

// moveRow builds the single row for a move state reading one tracked
// cell. Head 1 is always handled before head 2 on the same cell, which
// is what separates a co-located pair.
func moveRow(ms move, cell machine.TrackedCell) machine.Transition {
	switch {
	case !ms.Done1 && cell.Tag.Has(machine.TagHead1):
		return headOp(ms, cell, machine.TagHead1)
	case !ms.Done2 && cell.Tag.Has(machine.TagHead2):
		return headOp(ms, cell, machine.TagHead2)
	default:
		return row(ms, cell, ms, cell, machine.DirectionRight)
	}
}

// headOp performs one head's write-and-step on the cell under scan.
func headOp(ms move, cell machine.TrackedCell, h machine.HeadTag) machine.Transition {
	written := cell
	if h == machine.TagHead1 {
		written.Letter1 = ms.Write1
	} else {
		written.Letter2 = ms.Write2
	}
	next := ms.withDone(h)

	switch ms.dir(h) {
	case machine.DirectionRight:
		written.Tag = written.Tag.Without(h)
		return row(ms, cell, place{Head: h, Next: next, Back: otherPending(ms, cell, h)}, written, machine.DirectionRight)
	case machine.DirectionLeft:
		written.Tag = written.Tag.Without(h)
		return row(ms, cell, place{Head: h, Next: next, Back: otherPending(ms, cell, h)}, written, machine.DirectionLeft)
	default:
		// STAY overwrites the letter in place; the tag is untouched.
		if next.complete() {
			return row(ms, cell, moveRewind{}, written, machine.DirectionLeft)
		}
		return row(ms, cell, next, written, machine.DirectionStay)
	}
}

// otherPending reports whether the cell also holds the other head's tag
// and that head is still waiting for relocation.
func otherPending(ms move, cell machine.TrackedCell, h machine.HeadTag) bool {
	other := machine.TagHead2
	if h == machine.TagHead2 {
		other = machine.TagHead1
	}
	return cell.Tag.Has(other) && !ms.done(other)
}

// emitPlace produces the rows that drop a carried head role onto the
// neighbouring cell. The step direction is the relocated head's own
// direction from the move parameters.
func emitPlace(cat *Catalog, uni universe, ps place) {
	side := ps.Next.dir(ps.Head)

	for _, cell := range uni.cells {
		if cell.Tag.Has(ps.Head) {
			// A second role for the same head cannot exist.
			continue
		}
		landed := cell
		landed.Tag = cell.Tag.With(ps.Head)
		to, d := afterPlacement(ps, side)
		cat.Add(row(ps, cell, to, landed, d))
	}

	switch side {
	case machine.DirectionRight:
		// Crossing previously unwritten extent: extend the tape with a
		// fresh blank tracked cell carrying only this head's tag.
		fresh := machine.TrackedCell{Letter1: machine.Blank, Letter2: machine.Blank, Tag: ps.Head}
		to, d := afterPlacement(ps, side)
		cat.Add(row(ps, machine.Blank, to, fresh, d))
	case machine.DirectionLeft:
		// The left neighbour turned out to be the sentinel (holding a
		// hidden marker): the role must stay where it was. Skip over the
		// marker rightward and roll the role back.
		for _, q := range uni.markers {
			m := machine.Marker{State: q}
			cat.Add(row(ps, m, unclamp{Head: ps.Head, Next: ps.Next}, m, machine.DirectionRight))
		}
	}
}

// afterPlacement decides where control goes once the role is written:
// back left/right to the origin cell when the other head is still parked
// there, straight into the sentinel walk when everything is done, and a
// stationary re-read otherwise (the landed cell may itself hold the
// other pending head).
func afterPlacement(ps place, side machine.Direction) (control, machine.Direction) {
	if ps.Next.complete() {
		return moveRewind{}, machine.DirectionLeft
	}
	if ps.Back {
		if side == machine.DirectionRight {
			return ps.Next, machine.DirectionLeft
		}
		return ps.Next, machine.DirectionRight
	}
	return ps.Next, machine.DirectionStay
}

// emitUnclamp re-adds a head role to the cell it tried to leave across
// the left boundary.
func emitUnclamp(cat *Catalog, uni universe, us unclamp) {
	for _, cell := range uni.cells {
		if cell.Tag.Has(us.Head) {
			continue
		}
		restored := cell
		restored.Tag = cell.Tag.With(us.Head)
		if us.Next.complete() {
			cat.Add(row(us, cell, moveRewind{}, restored, machine.DirectionLeft))
		} else {
			cat.Add(row(us, cell, us.Next, restored, machine.DirectionStay))
		}
	}
}

// moveStates enumerates the move parameter space: both write letters,
// both directions, and the three reachable flag combinations (both done
// collapses into moveRewind immediately).
func (u universe) moveStates() []move {
	flags := [][2]bool{{false, false}, {true, false}, {false, true}}
	states := make([]move, 0, len(flags)*9*len(u.alphabet.Letters)*len(u.alphabet.Letters))
	for _, w1 := range u.alphabet.Letters {
		for _, d1 := range directions {
			for _, w2 := range u.alphabet.Letters {
				for _, d2 := range directions {
					for _, f := range flags {
						states = append(states, move{
							Write1: w1, Move1: d1,
							Write2: w2, Move2: d2,
							Done1: f[0], Done2: f[1],
						})
					}
				}
			}
		}
	}
	return states
}

// placeStates enumerates the placement carriers: one per head whose own
// direction is a real step, per remaining parameter combination, with
// and without a pending co-located partner to come back for.
func (u universe) placeStates() []place {
	var states []place
	for _, h := range []machine.HeadTag{machine.TagHead1, machine.TagHead2} {
		for _, ms := range u.moveStates() {
			if ms.done(h) || ms.dir(h) == machine.DirectionStay {
				continue
			}
			if ms.Done1 || ms.Done2 {
				// Reached only with the carried head still pending and
				// the other head's flag encoded in Next below.
				continue
			}
			next := ms.withDone(h)
			states = append(states, place{Head: h, Next: next, Back: false})
			states = append(states, place{Head: h, Next: next, Back: true})

			other := next
			if h == machine.TagHead1 {
				other.Done2 = true
			} else {
				other.Done1 = true
			}
			// Other head already relocated earlier in the scan.
			states = append(states, place{Head: h, Next: other, Back: false})
		}
	}
	return states
}

// unclampStates enumerates the rollback states: only LEFT steps can run
// into the sentinel.
func (u universe) unclampStates() []unclamp {
	var states []unclamp
	for _, ps := range u.placeStates() {
		if ps.Next.dir(ps.Head) != machine.DirectionLeft {
			continue
		}
		states = append(states, unclamp{Head: ps.Head, Next: ps.Next})
	}
	return states
}
