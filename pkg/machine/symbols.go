package machine

import "strings"

// Symbol is the tape vocabulary of the produced single-tape machine.
// Two symbols are equal iff their renderings are equal; the rendering
// doubles as the wire format and as the deduplication key.
type Symbol interface {
	// Render returns the canonical space-free token for this symbol.
	Render() string
}

// HeadTag marks which virtual head(s) occupy a physical cell.
// It is a bitmask so that tag arithmetic (adding or removing one head)
// stays a pure set operation.
type HeadTag uint8

const (
	TagNone  HeadTag = 0
	TagHead1 HeadTag = 1 << 0
	TagHead2 HeadTag = 1 << 1
	TagBoth  HeadTag = TagHead1 | TagHead2
)

// Has reports whether every head in h occupies the cell.
func (t HeadTag) Has(h HeadTag) bool { return t&h == h }

// With returns the tag extended by h.
func (t HeadTag) With(h HeadTag) HeadTag { return t | h }

// Without returns the tag with h removed.
func (t HeadTag) Without(h HeadTag) HeadTag { return t &^ h }

func (t HeadTag) String() string {
	switch t {
	case TagHead1:
		return "1"
	case TagHead2:
		return "2"
	case TagBoth:
		return "B"
	default:
		return "_"
	}
}

// tagFromString is the inverse of HeadTag.String.
func tagFromString(s string) (HeadTag, bool) {
	switch s {
	case "1":
		return TagHead1, true
	case "2":
		return TagHead2, true
	case "B":
		return TagBoth, true
	case "_":
		return TagNone, true
	}
	return TagNone, false
}

// Render makes a bare letter usable wherever a Symbol is expected.
func (l Letter) Render() string { return string(l) }

// TrackedCell packs the content of both virtual tapes at one physical
// position together with the head-occupancy tag.
type TrackedCell struct {
	Letter1 Letter
	Letter2 Letter
	Tag     HeadTag
}

func (c TrackedCell) Render() string {
	return "(" + string(c.Letter1) + "|" + string(c.Letter2) + "|" + c.Tag.String() + ")"
}

// Marker hides the currently simulated two-tape state on the tape.
// It rides on the sentinel cell between emulation cycles and is restored
// to the plain sentinel when a terminal state is reached.
type Marker struct {
	State State
}

func (m Marker) Render() string { return "{" + string(m.State) + "}" }

// ParseTrackedCell decodes the rendering produced by TrackedCell.Render.
// It reports false for any token that is not a tracked cell.
func ParseTrackedCell(s string) (TrackedCell, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return TrackedCell{}, false
	}
	parts := strings.Split(s[1:len(s)-1], "|")
	if len(parts) != 3 {
		return TrackedCell{}, false
	}
	tag, ok := tagFromString(parts[2])
	if !ok {
		return TrackedCell{}, false
	}
	return TrackedCell{Letter1: Letter(parts[0]), Letter2: Letter(parts[1]), Tag: tag}, true
}

// ParseSymbol decodes any symbol rendering back into its variant.
// Unknown shapes fall back to a bare letter, which keeps round-tripping
// of plain source alphabets lossless.
func ParseSymbol(s string) Symbol {
	if c, ok := ParseTrackedCell(s); ok {
		return c
	}
	if len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}' {
		return Marker{State: State(s[1 : len(s)-1])}
	}
	return Letter(s)
}
