package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/smartassess/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only tracks the highlighted
// option; correctness is decided by the caller.
type MultiChoice struct {
	Prompt   string
	Options  []string
	Selected int
}

// NewMultiChoice creates a selector with the first option highlighted.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:  prompt,
		Options: options,
	}
}

// Choice returns the highlighted option, or "" when there are no options.
func (m MultiChoice) Choice() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Update handles arrow navigation and digit shortcuts. chosen is true when
// the learner committed a choice with Enter or a digit key.
func (m MultiChoice) Update(msg tea.Msg) (updated MultiChoice, chosen bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Options) == 0 {
		return m, false
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, Keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, Keys.Select):
		return m, true
	default:
		if i := OptionIndex(kmsg.String()); i >= 0 && i < len(m.Options) {
			m.Selected = i
			return m, true
		}
	}

	return m, false
}

// View renders the prompt and the numbered options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt)))
		b.WriteString("\n")
	}

	hint := "Select (1-9) or use arrows + Enter"
	if len(m.Options) < 9 {
		hint = fmt.Sprintf("Select (1-%d) or use arrows + Enter", len(m.Options))
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(hint))

	return b.String()
}
