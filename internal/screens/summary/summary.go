package summary

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/router"
	"github.com/abhisek/smartassess/internal/screen"
	"github.com/abhisek/smartassess/internal/ui/components"
	"github.com/abhisek/smartassess/internal/ui/layout"
	"github.com/abhisek/smartassess/internal/ui/theme"
)

// SummaryScreen displays the result of a completed assessment.
type SummaryScreen struct {
	result  assess.Result
	restart func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. restart builds the screen for a retake;
// when nil the retake action is hidden.
func New(result assess.Result, restart func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, restart: restart}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Assessment Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Continue to Home"}}
	if s.restart != nil {
		hints = append(hints, layout.Hints(components.Keys.Restart)...)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, components.Keys.Select), key.Matches(kmsg, components.Keys.Back):
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case key.Matches(kmsg, components.Keys.Restart):
		if s.restart == nil {
			return s, nil
		}
		next := s.restart()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(Headline(res.Reason)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(ScoreLine(res.Score)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Score: %d%%        Final difficulty: %s        Time: %s",
		res.Score.Percentage,
		res.FinalTier.DisplayName(),
		assess.FormatClock(int(res.Duration.Seconds())))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	rec := lipgloss.NewStyle().
		Foreground(theme.LevelColor(string(res.Level))).
		Render(res.Feedback)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(rec, cw)))
	b.WriteString("\n\n")

	if len(res.Responses) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			renderResponses(res.Responses, cw)))
	}

	return b.String()
}

// Headline returns the title for how the assessment ended.
func Headline(reason assess.CompletionReason) string {
	switch reason {
	case assess.ReasonTimeExpired:
		return "Time's up! Assessment Complete!"
	case assess.ReasonAborted:
		return "Assessment Ended Early"
	default:
		return "Assessment Complete!"
	}
}

// ScoreLine renders the score sentence.
func ScoreLine(score assess.Score) string {
	return fmt.Sprintf("You scored %d out of %d questions correctly.", score.Correct, score.Total)
}

// renderResponses lists each answered question with a mark.
func renderResponses(responses []assess.Response, cw int) string {
	lines := make([]string, 0, len(responses))
	for i, r := range responses {
		mark := theme.Correct.Render("✓")
		if !r.Correct() {
			mark = theme.Incorrect.Render("✗")
		}
		prompt := truncate(r.Question.Prompt, cw-16)
		tier := lipgloss.NewStyle().
			Foreground(theme.TierColor(string(r.Tier))).
			Render(fmt.Sprintf("%-6s", r.Tier.DisplayName()))
		lines = append(lines, fmt.Sprintf("%s %2d. %s %s", mark, i+1, tier, prompt))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
