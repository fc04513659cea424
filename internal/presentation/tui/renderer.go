package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/mwarzynski/uw-turing-machine/internal/interpreter"
)

// colorEnabled reports whether stdout is a terminal worth styling.
func colorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintVerdict renders the outcome of a run: YES on accept, NO
// otherwise, matching the original interpreter's answer format, with a
// colored summary line when attached to a terminal.
func PrintVerdict(res interpreter.Result) {
	answer := "NO"
	if res.Accepted {
		answer = "YES"
	}
	fmt.Println(answer)

	if !colorEnabled() {
		return
	}
	p := termenv.ColorProfile()
	color := "#f87171" // red
	if res.Accepted {
		color = "#4ade80" // green
	}
	detail := fmt.Sprintf("state=%s steps=%d halted=%v", res.State, res.Steps, res.Halted)
	fmt.Fprintln(os.Stderr, termenv.String(detail).Foreground(p.Color(color)))
}

// PrintSummary reports how large a translated table came out.
func PrintSummary(rows int, deterministic bool) {
	line := fmt.Sprintf("%d rows emitted (deterministic=%v)", rows, deterministic)
	if colorEnabled() {
		p := termenv.ColorProfile()
		line = termenv.String(line).Foreground(p.Color("#818cf8")).String()
	}
	fmt.Fprintln(os.Stderr, line)
}

// RenderMarkdown renders markdown for terminal display, falling back to
// the raw text when no TTY is attached or rendering fails.
func RenderMarkdown(md string) string {
	if !colorEnabled() {
		return md
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return out
}
