package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid([]machine.TwoTapeTransition{
		{
			State: "start", Read1: "1", Read2: "0",
			Target: "copy", Write1: "a", Write2: "1",
			Move1: machine.DirectionRight, Move2: machine.DirectionRight,
		},
		{
			State: "copy", Read1: "0", Read2: "0",
			Target: "accept", Write1: "0", Write2: "0",
			Move1: machine.DirectionStay, Move2: machine.DirectionStay,
		},
	})

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `start(("start"))`)
	assert.Contains(t, out, `accept[["accept"]]`)
	assert.Contains(t, out, `copy["copy"]`)
	assert.Contains(t, out, `start -->|"1,0 / a,1 RR"| copy`)
	assert.Contains(t, out, `copy -->|"0,0 / 0,0 SS"| accept`)
}

func TestGenerateMermaid_Deterministic(t *testing.T) {
	rows := []machine.TwoTapeTransition{
		{State: "b", Read1: "0", Read2: "0", Target: "a", Write1: "0", Write2: "0", Move1: "S", Move2: "S"},
		{State: "a", Read1: "0", Read2: "0", Target: "b", Write1: "0", Write2: "0", Move1: "S", Move2: "S"},
	}
	assert.Equal(t, GenerateMermaid(rows), GenerateMermaid(rows))
}

func TestSanitizeMermaidID(t *testing.T) {
	assert.Equal(t, "locate_____", sanitizeMermaidID("locate(_|_)"))
	assert.Equal(t, "_", sanitizeMermaidID(""))
	assert.Equal(t, "state_1", sanitizeMermaidID("state-1"))
}
