package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

func TestParseTwoTape(t *testing.T) {
	input := strings.Join([]string{
		"// palindrome check, first two rows",
		"",
		"start 0 0 accept 0 0 S S",
		"start 1 0 copy a 1 R R",
	}, "\n")

	rows, err := ParseTwoTape(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, machine.TwoTapeTransition{
		State:  "start",
		Read1:  "1",
		Read2:  "0",
		Target: "copy",
		Write1: "a",
		Write2: "1",
		Move1:  machine.DirectionRight,
		Move2:  machine.DirectionRight,
	}, rows[1])
}

func TestParseTwoTape_FieldCount(t *testing.T) {
	_, err := ParseTwoTape(strings.NewReader("start 0 0 accept 0 0 S"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, machine.ErrFieldCount))
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), "want 8")
}

func TestParseTwoTape_UnknownDirection(t *testing.T) {
	_, err := ParseTwoTape(strings.NewReader("start 0 0 accept 0 0 S X"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, machine.ErrUnknownDirection))
	assert.Contains(t, err.Error(), `"X"`)
}

func TestParseSingleTape(t *testing.T) {
	input := "locate(_|_) (1|0|B) rewind(1|0) (1|0|B) L\n"

	rows, err := ParseSingleTape(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, machine.State("locate(_|_)"), rows[0].State)
	assert.Equal(t, machine.TrackedCell{Letter1: "1", Letter2: "0", Tag: machine.TagBoth}, rows[0].Read)
	assert.Equal(t, machine.DirectionLeft, rows[0].Move)
}

func TestParseSingleTape_FieldCount(t *testing.T) {
	_, err := ParseSingleTape(strings.NewReader("q 1 q 1 R extra"))
	assert.True(t, errors.Is(err, machine.ErrFieldCount))
}

func TestParseSingleTape_RoundTripsRenderedTable(t *testing.T) {
	row := machine.Transition{
		State:  "moveRewind",
		Read:   machine.Marker{State: "copy"},
		Target: "locate(_|_)",
		Write:  machine.Marker{State: "copy"},
		Move:   machine.DirectionRight,
	}
	rendered := machine.RenderTable([]machine.Transition{row})

	rows, err := ParseSingleTape(strings.NewReader(rendered))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, row, rows[0])
}
