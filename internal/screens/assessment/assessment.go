package assessment

import (
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/router"
	"github.com/abhisek/smartassess/internal/screen"
	"github.com/abhisek/smartassess/internal/screens/summary"
	"github.com/abhisek/smartassess/internal/ui/components"
	"github.com/abhisek/smartassess/internal/ui/layout"
)

// Recorder receives the result of every completed assessment.
type Recorder interface {
	Record(result assess.Result)
}

// AssessmentScreen implements screen.Screen for a running assessment.
type AssessmentScreen struct {
	session  *assess.Session
	recorder Recorder

	choice   components.MultiChoice
	answered int // response count the choice was built for

	showingQuitConfirm bool
	finished           bool
	errMsg             string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)
var _ screen.Closer = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen for session. recorder may be nil.
func New(session *assess.Session, recorder Recorder) *AssessmentScreen {
	s := &AssessmentScreen{
		session:  session,
		recorder: recorder,
		answered: -1,
	}
	s.syncQuestion()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tickCmd(s.session.ID())
}

func (s *AssessmentScreen) Title() string {
	return "Smart Assessment"
}

// Status shows the countdown in the header.
func (s *AssessmentScreen) Status() string {
	return "⏱ " + assess.FormatClock(s.session.RemainingSeconds())
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return layout.Hints(components.Keys.Confirm, components.Keys.Cancel)
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-9/Enter", Description: "Answer"},
		{Key: "Esc", Description: "End early"},
	}
}

// Close ends the session when the screen leaves the stack.
func (s *AssessmentScreen) Close() {
	s.session.Close()
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestionView(width, height)
}

func (s *AssessmentScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.SessionID != s.session.ID() || s.finished {
		return s, nil
	}
	if !s.session.Tick() {
		return s.finish()
	}
	return s, tickCmd(s.session.ID())
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finished {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch {
		case key.Matches(msg, components.Keys.Confirm):
			s.showingQuitConfirm = false
			s.session.Close()
			return s.finish()
		case key.Matches(msg, components.Keys.Cancel):
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key.Matches(msg, components.Keys.Back) {
		s.showingQuitConfirm = true
		return s, nil
	}

	var chosen bool
	s.choice, chosen = s.choice.Update(msg)
	if chosen {
		return s.submitAnswer(s.choice.Choice())
	}
	return s, nil
}

// submitAnswer hands the answer to the engine and moves to the next
// question or the summary.
func (s *AssessmentScreen) submitAnswer(answer string) (screen.Screen, tea.Cmd) {
	_, err := s.session.SubmitAnswer(answer)
	switch {
	case errors.Is(err, assess.ErrInvalidState):
		// The countdown won the race; the session is already complete.
		return s.finish()
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}

	if s.session.Status() == assess.StatusCompleted {
		return s.finish()
	}
	s.syncQuestion()
	return s, nil
}

// finish records the result once and swaps this screen for the summary.
func (s *AssessmentScreen) finish() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	res, err := s.session.Result()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.finished = true
	if s.recorder != nil {
		s.recorder.Record(res)
	}

	sess, recorder := s.session, s.recorder
	restart := func() screen.Screen {
		return New(sess.Restart(), recorder)
	}
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(res, restart)}
	}
}

// syncQuestion rebuilds the selector when the session has moved on.
func (s *AssessmentScreen) syncQuestion() {
	snap := s.session.Snapshot()
	if snap.Question == nil || snap.Answered == s.answered {
		return
	}
	s.choice = components.NewMultiChoice(snap.Question.Prompt, snap.Question.Options)
	s.answered = snap.Answered
}
