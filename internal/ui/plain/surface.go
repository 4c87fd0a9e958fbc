// Package plain renders sessions as numbered text prompts and reads answers
// line by line. It is used when stdout is not a terminal.
package plain

import (
	"fmt"
	"io"
	"strings"

	"statadvisor/internal/session"
)

// Surface writes session views as plain text.
type Surface struct {
	out io.Writer
}

// NewSurface returns a surface writing to out.
func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

// RenderQuestion prints the question with numbered options.
func (s *Surface) RenderQuestion(question session.QuestionView) {
	fmt.Fprintf(s.out, "\n[%d/%d] %s\n", question.Position, question.Total, question.Text)
	for i, option := range question.Options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, option.Label)
	}
	commands := ":reset, :revisit <id>, :quit"
	if question.GuidanceAvailable {
		commands = ":redo, " + commands
	}
	fmt.Fprintf(s.out, "Commands: %s\n", commands)
}

// RenderGuidance prints help text for the displayed question.
func (s *Surface) RenderGuidance(text string) {
	fmt.Fprintf(s.out, "\n%s\n", strings.TrimSpace(text))
}

// RenderResult prints the recommendation.
func (s *Surface) RenderResult(result session.Result) {
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, FormatResult(result))
}

// FormatResult renders a result as text.
func FormatResult(result session.Result) string {
	var b strings.Builder
	if result.TestID == "" {
		fmt.Fprintf(&b, "%s\n", result.Explanation)
		return b.String()
	}
	fmt.Fprintf(&b, "Prueba sugerida: %s\n", result.TestName)
	if result.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", result.Explanation)
	} else {
		fmt.Fprintln(&b, "\nNo se encontró una explicación detallada para esta prueba.")
	}
	return b.String()
}
