package app

import (
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/questionbank"
	"github.com/abhisek/smartassess/internal/router"
	"github.com/abhisek/smartassess/internal/screen"
	"github.com/abhisek/smartassess/internal/screens/home"
	"github.com/abhisek/smartassess/internal/ui/components"
	"github.com/abhisek/smartassess/internal/ui/layout"
)

// Options holds dependencies injected into the app.
type Options struct {
	Bank *questionbank.Bank
	// Duration is the time budget of every session; zero means
	// assess.DefaultDuration.
	Duration time.Duration
	// SessionOptions carries the remaining engine settings such as the
	// initial tier and answer policy.
	SessionOptions []assess.Option
	Logger         zerolog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	duration := opts.Duration
	if duration == 0 {
		duration = assess.DefaultDuration
	}

	sessionOpts := append([]assess.Option{assess.WithLogger(opts.Logger)}, opts.SessionOptions...)
	sessionOpts = append(sessionOpts, assess.WithDuration(duration))
	start := func() (*assess.Session, error) {
		return assess.New(opts.Bank, sessionOpts...)
	}

	info := home.Info{Questions: opts.Bank.Len(), Duration: duration}

	return AppModel{
		router: router.New(home.New(start, info)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, components.Keys.Quit) {
			m.router.Close()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.Hints(components.Keys.Quit)...)
		}
	}
	return layout.Hints(components.Keys.Up, components.Keys.Select, components.Keys.Quit)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bank == nil {
		opts.Bank = questionbank.Default()
	}

	m := newAppModel(opts)
	defer m.router.Close()

	p := tea.NewProgram(m)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
