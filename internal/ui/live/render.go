package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"statadvisor/internal/session"
)

const (
	noSelectionMessage = "Por favor selecciona una opción antes de continuar."
	resetMessage       = "El sistema ha sido reiniciado exitosamente."
)

var (
	colorHeader   = lipgloss.Color("33")
	colorCursor   = lipgloss.Color("212")
	colorGuidance = lipgloss.Color("179")
	colorResult   = lipgloss.Color("42")
	colorMuted    = lipgloss.Color("242")
	colorStatus   = lipgloss.Color("244")
	colorError    = lipgloss.Color("196")
)

// renderHeader renders the title line with progress.
func renderHeader(view session.View, noColor bool) string {
	line := "Asesor de Prueba Estadística"
	if view.State != session.StateDone && view.Question.Total > 0 {
		line += fmt.Sprintf(" | Pregunta %d/%d", view.Question.Position, view.Question.Total)
	}
	return stylize(line, noColor, colorHeader)
}

// renderQuestion renders the prompt and the option list.
func renderQuestion(question session.QuestionView, cursor int, noColor bool) string {
	lines := []string{"", question.Text, ""}
	for i, option := range question.Options {
		prefix := "  ( ) "
		if i == cursor {
			prefix = "> (•) "
			lines = append(lines, stylize(prefix+option.Label, noColor, colorCursor))
			continue
		}
		lines = append(lines, prefix+option.Label)
	}
	return strings.Join(lines, "\n")
}

// renderGuidance renders help text in a bordered box.
func renderGuidance(text string, noColor bool) string {
	if noColor {
		return "\n" + text
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGuidance).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(text)
}

// renderResult renders the recommendation.
func renderResult(result session.Result, noColor bool) string {
	lines := []string{""}
	if result.TestID == "" {
		lines = append(lines, result.Explanation)
		return strings.Join(lines, "\n")
	}
	title := "Prueba sugerida: " + result.TestName
	if noColor {
		lines = append(lines, title)
	} else {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(colorResult).Render(title))
	}
	explanation := result.Explanation
	if explanation == "" {
		explanation = "No se encontró una explicación detallada para esta prueba."
	}
	lines = append(lines, "", explanation)
	return strings.Join(lines, "\n")
}

// renderAnswers lists the answers given so far.
func renderAnswers(answers []session.Answer, noColor bool) string {
	if len(answers) == 0 {
		return ""
	}
	parts := make([]string, 0, len(answers))
	for _, answer := range answers {
		parts = append(parts, answer.QuestionID+"="+answer.Label)
	}
	return stylize("\nRespuestas: "+strings.Join(parts, ", "), noColor, colorMuted)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
