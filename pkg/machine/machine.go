package machine

// Letter is a single tape symbol of the source description. Letters are
// opaque tokens; the only constraint is that they contain no spaces
// (the line format is space-separated) and none of the delimiter runes
// used by composite symbol renderings ('|', '(', ')', '{', '}').
type Letter string

// State is a machine state token. INIT, ACCEPT and REJECT are reserved.
type State string

// Direction is a head movement instruction.
type Direction string

const (
	// Blank is the implicit content of every unwritten tape cell.
	Blank Letter = "0"

	// Sentinel is the reserved left-boundary marker of the produced
	// single-tape machine. It never occurs in a source alphabet and is
	// never overwritten by ordinary emulation.
	Sentinel Letter = "#"
)

const (
	// StateInit is the state every run starts in.
	StateInit State = "start"
	// StateAccept is the accepting sink. No outgoing rows exist for it.
	StateAccept State = "accept"
	// StateReject is the rejecting sink. No outgoing rows exist for it.
	StateReject State = "reject"
)

const (
	DirectionLeft  Direction = "L"
	DirectionRight Direction = "R"
	DirectionStay  Direction = "S"
)

// Terminal reports whether the state is one of the two halting sinks.
func (s State) Terminal() bool {
	return s == StateAccept || s == StateReject
}
