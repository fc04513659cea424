package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// yamlDocument is the YAML form of a two-tape machine description. It
// carries the same eight fields per transition as the text format.
type yamlDocument struct {
	Transitions []yamlTransition `yaml:"transitions"`
}

type yamlTransition struct {
	From  string   `yaml:"from"`
	Read  []string `yaml:"read"`
	To    string   `yaml:"to"`
	Write []string `yaml:"write"`
	Move  []string `yaml:"move"`
}

// ParseTwoTapeYAML decodes the YAML form of a two-tape machine.
func ParseTwoTapeYAML(r io.Reader) ([]machine.TwoTapeTransition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read machine description: %w", err)
	}
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode machine description: %w", err)
	}

	transitions := make([]machine.TwoTapeTransition, 0, len(doc.Transitions))
	for i, t := range doc.Transitions {
		if len(t.Read) != 2 || len(t.Write) != 2 || len(t.Move) != 2 {
			return nil, fmt.Errorf("transition %d: %w: read/write/move must each hold two entries", i, machine.ErrFieldCount)
		}
		move1, err := machine.ParseDirection(t.Move[0])
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w: %q", i, err, t.Move[0])
		}
		move2, err := machine.ParseDirection(t.Move[1])
		if err != nil {
			return nil, fmt.Errorf("transition %d: %w: %q", i, err, t.Move[1])
		}
		transitions = append(transitions, machine.TwoTapeTransition{
			State:  machine.State(t.From),
			Read1:  machine.Letter(t.Read[0]),
			Read2:  machine.Letter(t.Read[1]),
			Target: machine.State(t.To),
			Write1: machine.Letter(t.Write[0]),
			Write2: machine.Letter(t.Write[1]),
			Move1:  move1,
			Move2:  move2,
		})
	}
	return transitions, nil
}
