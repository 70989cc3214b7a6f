package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/ui/components"
	"github.com/abhisek/smartassess/internal/ui/theme"
)

var tips = []string{
	"Find a quiet space where you can focus without interruptions",
	"Read each question carefully before answering",
	"Don't rush - take your time to demonstrate your best understanding",
}

// renderTitle returns the heading and tagline.
func renderTitle(cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Smart Assessment")
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Take our adaptive assessment to personalize your learning journey.")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + tagline)
}

// renderInfoBar shows the bank size and time limit in a bordered box.
func renderInfoBar(info Info, cw int) string {
	accent := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	second := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	stats := fmt.Sprintf("%s  %s",
		accent.Render(fmt.Sprintf("◆ %d QUESTIONS", info.Questions)),
		second.Render(fmt.Sprintf("⏱ %s LIMIT", assess.FormatClock(int(info.Duration.Seconds())))),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderTips lists the assessment tips.
func renderTips(cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Assessment Tips"))
	for i, tip := range tips {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("%d ", i+1)))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(tip))
	}
	return components.Card(b.String(), cw)
}

// renderLastResult summarizes the most recent assessment.
func renderLastResult(res assess.Result, cw int) string {
	level := lipgloss.NewStyle().
		Foreground(theme.LevelColor(string(res.Level))).
		Bold(true).
		Render(strings.ToUpper(string(res.Level)))

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recent Result"),
		fmt.Sprintf("%s  %d of %d correct  %s",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d%%", res.Score.Percentage)),
			res.Score.Correct, res.Score.Total, level),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(reasonText(res.Reason)),
	}
	return components.Card(strings.Join(lines, "\n"), cw)
}

func reasonText(reason assess.CompletionReason) string {
	switch reason {
	case assess.ReasonTimeExpired:
		return "Time ran out"
	case assess.ReasonAborted:
		return "Ended early"
	default:
		return "Completed"
	}
}

// renderError renders a one-line error above the menu.
func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.View())
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
