package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/ui/components"
	"github.com/abhisek/smartassess/internal/ui/theme"
)

// renderQuestionView renders the progress line, the question and its
// options.
func (s *AssessmentScreen) renderQuestionView(width, height int) string {
	snap := s.session.Snapshot()
	if snap.Question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Scoring your assessment...")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder

	b.WriteString(components.QuestionProgress(snap.QuestionNumber(), snap.PoolSize, cw).View())
	b.WriteString("\n\n")

	tier := lipgloss.NewStyle().
		Foreground(theme.TierColor(string(snap.ActiveTier))).
		Bold(true).
		Render(snap.ActiveTier.DisplayName())
	info := "Difficulty: " + tier
	if snap.Question.Topic != "" {
		info += lipgloss.NewStyle().Foreground(theme.TextDim).Render("   Topic: " + snap.Question.Topic)
	}
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw)))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View(cw))
	b.WriteString("\n\n")

	timer := lipgloss.NewStyle().
		Foreground(theme.TimerColor(snap.RemainingSeconds)).
		Render(fmt.Sprintf("Time remaining %s", assess.FormatClock(snap.RemainingSeconds)))
	b.WriteString(timer)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 0).Render(b.String()))
}

// renderQuitConfirm renders the end-early confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End assessment early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You will be scored on the questions answered so far."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end assessment"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
