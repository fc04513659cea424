package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mwarzynski/uw-turing-machine/pkg/machine"
)

// GenerateMermaid produces a Mermaid flowchart of a two-tape machine.
// It applies semantic styling:
// - start: ((Circle))
// - accept/reject: [[Subroutine]]
// - Default: [Rectangle]
// Edges are labeled with "read / write move" for both tapes.
func GenerateMermaid(transitions []machine.TwoTapeTransition) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	states := collectStates(transitions)
	for _, s := range states {
		safeID := sanitizeMermaidID(string(s))

		opener, closer := "[", "]"
		switch {
		case s == machine.StateInit:
			opener, closer = "((", "))" // Circle
		case s.Terminal():
			opener, closer = "[[", "]]" // Subroutine
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, s, closer))
	}

	for _, t := range transitions {
		from := sanitizeMermaidID(string(t.State))
		to := sanitizeMermaidID(string(t.Target))
		label := fmt.Sprintf("%s,%s / %s,%s %s%s",
			t.Read1, t.Read2, t.Write1, t.Write2, t.Move1, t.Move2)
		sb.WriteString(fmt.Sprintf("    %s -->|\"%s\"| %s\n", from, label, to))
	}

	return sb.String()
}

// collectStates returns every state referenced by the table, sorted so
// the diagram text is stable across runs.
func collectStates(transitions []machine.TwoTapeTransition) []machine.State {
	set := make(map[machine.State]struct{})
	for _, t := range transitions {
		set[t.State] = struct{}{}
		set[t.Target] = struct{}{}
	}
	states := make([]machine.State, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}

// sanitizeMermaidID keeps node identifiers inside Mermaid's safe subset.
func sanitizeMermaidID(id string) string {
	var sb strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}
