package assessment

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerTickMsg is sent every second to advance the countdown of one
// session. Ticks for other sessions are ignored.
type timerTickMsg struct {
	SessionID string
	At        time.Time
}

// tickCmd returns a 1-second tick command for sessionID.
func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{SessionID: sessionID, At: t}
	})
}
