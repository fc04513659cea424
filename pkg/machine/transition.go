package machine

import "strings"

// TwoTapeTransition is one row of a two-tape machine description:
// in state State, reading Read1 under head 1 and Read2 under head 2,
// switch to Target, write both letters and move both heads.
type TwoTapeTransition struct {
	State  State
	Read1  Letter
	Read2  Letter
	Target State
	Write1 Letter
	Write2 Letter
	Move1  Direction
	Move2  Direction
}

// Key identifies the lookup triple a deterministic machine may match
// at most once.
func (t TwoTapeTransition) Key() TwoTapeKey {
	return TwoTapeKey{State: t.State, Read1: t.Read1, Read2: t.Read2}
}

// TwoTapeKey is the (state, letter-1, letter-2) lookup triple.
type TwoTapeKey struct {
	State State
	Read1 Letter
	Read2 Letter
}

// Transition is one row of a single-tape machine, the only entity the
// output format understands.
type Transition struct {
	State  State
	Read   Symbol
	Target State
	Write  Symbol
	Move   Direction
}

// String renders the row in the external 5-field line format:
// "<state> <symbol> <target-state> <symbol> <direction>".
func (t Transition) String() string {
	return string(t.State) + " " + t.Read.Render() + " " +
		string(t.Target) + " " + t.Write.Render() + " " + string(t.Move)
}

// RenderTable renders a whole table, one row per line, in input order.
func RenderTable(rows []Transition) string {
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
