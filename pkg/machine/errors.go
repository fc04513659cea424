package machine

import "errors"

// ErrFieldCount is returned when a transition line does not split into
// the expected number of space-separated fields.
var ErrFieldCount = errors.New("malformed transition line")

// ErrUnknownDirection is returned when a direction field is not one of
// L, R or S.
var ErrUnknownDirection = errors.New("unknown direction")

// ParseDirection validates a direction token.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionLeft, DirectionRight, DirectionStay:
		return d, nil
	default:
		return d, ErrUnknownDirection
	}
}
