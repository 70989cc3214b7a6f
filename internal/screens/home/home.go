package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/router"
	"github.com/abhisek/smartassess/internal/screen"
	assessscreen "github.com/abhisek/smartassess/internal/screens/assessment"
	"github.com/abhisek/smartassess/internal/ui/components"
)

// StartFunc creates a fresh assessment session.
type StartFunc func() (*assess.Session, error)

// Info describes the configured assessment for the dashboard.
type Info struct {
	Questions int
	Duration  time.Duration
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	info       Info
	last       *assess.Result
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ assessscreen.Recorder = (*HomeScreen)(nil)

// New creates a new HomeScreen. start is called for every new assessment.
func New(start StartFunc, info Info) *HomeScreen {
	h := &HomeScreen{info: info}

	h.menuLabels = []string{"START ASSESSMENT", "EXIT"}
	items := []components.MenuItem{
		{Label: h.menuLabels[0], Action: func() tea.Cmd {
			session, err := start()
			if err != nil {
				h.errMsg = err.Error()
				return nil
			}
			h.errMsg = ""
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: assessscreen.New(session, h)}
			}
		}},
		{Label: h.menuLabels[1], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// Record keeps the latest result for the recent-result card. Results live
// only for the current process.
func (h *HomeScreen) Record(res assess.Result) {
	h.last = &res
}

// LastResult returns the most recent result, or nil.
func (h *HomeScreen) LastResult() *assess.Result {
	return h.last
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderInfoBar(h.info, cw))
	if h.last != nil {
		sections = append(sections, renderLastResult(*h.last, cw))
	} else if !compact {
		sections = append(sections, renderTips(cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
