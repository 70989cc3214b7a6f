package assessment

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/smartassess/internal/questionbank"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// CompletionReason records why a session completed.
type CompletionReason string

const (
	ReasonPoolExhausted CompletionReason = "pool_exhausted"
	ReasonTimeExpired   CompletionReason = "time_expired"
	ReasonAborted       CompletionReason = "aborted"
)

// Session is one adaptive assessment attempt. All methods are safe for
// concurrent use; the countdown goroutine and answer submission serialize
// on the session mutex, so exactly one of them performs the completion.
type Session struct {
	mu   sync.Mutex
	id   string
	bank *questionbank.Bank
	opts options
	log  zerolog.Logger

	activeTier questionbank.Tier
	position   int
	responses  []Response
	remaining  int
	status     Status
	reason     CompletionReason

	startedAt   time.Time
	completedAt time.Time
	result      *Result

	timerGen  uint64
	stopTimer chan struct{}
}

// New creates an in-progress session over bank. The countdown does not run
// until Start is called.
func New(bank *questionbank.Bank, opts ...Option) (*Session, error) {
	if bank == nil {
		return nil, errors.New("new session: nil question bank")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !o.initialTier.Valid() {
		return nil, fmt.Errorf("new session: unknown initial tier %q", o.initialTier)
	}
	if o.budget < 1 {
		return nil, fmt.Errorf("new session: duration must be at least 1s, got %ds", o.budget)
	}
	switch o.policy {
	case AnswerPolicyLenient, AnswerPolicyStrict:
	default:
		return nil, fmt.Errorf("new session: unknown answer policy %q", o.policy)
	}
	if o.clock == nil {
		o.clock = systemClock{}
	}
	if o.newTicker == nil {
		o.newTicker = NewStdTicker
	}

	return newSession(bank, o), nil
}

func newSession(bank *questionbank.Bank, o options) *Session {
	id := uuid.New().String()
	s := &Session{
		id:         id,
		bank:       bank,
		opts:       o,
		log:        o.logger.With().Str("session_id", id).Logger(),
		activeTier: o.initialTier,
		remaining:  o.budget,
		status:     StatusInProgress,
		startedAt:  o.clock.Now(),
	}

	s.log.Info().
		Str("tier", string(s.activeTier)).
		Int("budget_seconds", s.remaining).
		Msg("assessment session created")
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ActiveTier returns the tier the current question is drawn from.
func (s *Session) ActiveTier() questionbank.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTier
}

// Position returns the index of the current question within the active
// tier's pool. While in progress it equals the number of responses.
func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// RemainingSeconds returns the countdown value.
func (s *Session) RemainingSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Responses returns a copy of the response log in answer order.
func (s *Session) Responses() []Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Response, len(s.responses))
	copy(out, s.responses)
	return out
}

// CurrentQuestion returns the question awaiting an answer.
func (s *Session) CurrentQuestion() (questionbank.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() (questionbank.Question, error) {
	if s.status != StatusInProgress {
		return questionbank.Question{}, fmt.Errorf("current question: session %s: %w", s.status, ErrInvalidState)
	}
	q, ok := s.bank.At(s.activeTier, s.position)
	if !ok {
		return questionbank.Question{}, fmt.Errorf("current question: no question at position %d of %s pool: %w",
			s.position, s.activeTier, ErrInvalidState)
	}
	return q, nil
}

// SubmitAnswer records answer for the current question, re-tiers the
// session from its accuracy over all responses and advances. The session
// completes when the new position is past the end of the new tier's pool.
func (s *Session) SubmitAnswer(answer string) (Response, error) {
	s.mu.Lock()
	resp, res, err := s.submitLocked(answer)
	s.mu.Unlock()

	if res != nil {
		s.notify(*res)
	}
	return resp, err
}

func (s *Session) submitLocked(answer string) (Response, *Result, error) {
	q, err := s.currentLocked()
	if err != nil {
		s.log.Debug().Err(err).Msg("answer rejected")
		return Response{}, nil, fmt.Errorf("submit answer: %w", err)
	}

	if s.opts.policy == AnswerPolicyStrict && !q.HasOption(answer) {
		s.log.Debug().Str("question_id", q.ID).Str("answer", answer).Msg("answer rejected: not an option")
		return Response{}, nil, fmt.Errorf("submit answer %q for question %q: %w", answer, q.ID, ErrInvalidAnswer)
	}

	resp := Response{
		Tier:             s.activeTier,
		Position:         s.position,
		Question:         q,
		ChosenAnswer:     answer,
		AnsweredAt:       s.opts.clock.Now(),
		RemainingSeconds: s.remaining,
	}
	s.responses = append(s.responses, resp)

	prev := s.activeTier
	s.activeTier = NextTier(s.responses)
	s.position++

	s.log.Debug().
		Str("question_id", q.ID).
		Bool("correct", resp.Correct()).
		Int("answered", len(s.responses)).
		Msg("answer recorded")
	if s.activeTier != prev {
		s.log.Info().
			Str("from", string(prev)).
			Str("to", string(s.activeTier)).
			Float64("accuracy", Accuracy(s.responses)).
			Msg("tier changed")
	}

	// The pool is looked up for the tier just selected, so a switch to a
	// smaller pool can end the session immediately.
	if s.position >= s.bank.Count(s.activeTier) {
		res := s.completeLocked(ReasonPoolExhausted)
		return resp, &res, nil
	}
	return resp, nil, nil
}

// Close stops the countdown. An in-progress session completes with reason
// aborted. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	s.haltTimerLocked()
	var res *Result
	if s.status == StatusInProgress {
		r := s.completeLocked(ReasonAborted)
		res = &r
	}
	s.mu.Unlock()

	if res != nil {
		s.notify(*res)
	}
}

// Restart returns a fresh session over the same bank and options, starting
// in the default tier with a full budget. The receiver's countdown is
// stopped but its state is otherwise left as is.
func (s *Session) Restart() *Session {
	s.mu.Lock()
	s.haltTimerLocked()
	o := s.opts
	s.mu.Unlock()

	o.initialTier = questionbank.DefaultTier
	next := newSession(s.bank, o)
	s.log.Info().Str("next_session_id", next.id).Msg("assessment restarted")
	return next
}

// Result returns the outcome of a completed session.
func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, fmt.Errorf("result: session %s: %w", s.status, ErrInvalidState)
	}
	return *s.result, nil
}

// completeLocked performs the single in_progress -> completed transition.
// Caller must hold s.mu and have checked the status.
func (s *Session) completeLocked(reason CompletionReason) Result {
	s.status = StatusCompleted
	s.reason = reason
	s.completedAt = s.opts.clock.Now()
	s.haltTimerLocked()

	res := buildResult(s.id, s.responses, s.activeTier, reason, s.completedAt.Sub(s.startedAt))
	s.result = &res

	s.log.Info().
		Str("reason", string(reason)).
		Int("correct", res.Score.Correct).
		Int("total", res.Score.Total).
		Int("percentage", res.Score.Percentage).
		Str("level", string(res.Level)).
		Msg("assessment completed")
	return res
}

func (s *Session) notify(res Result) {
	if s.opts.onComplete != nil {
		s.opts.onComplete(res)
	}
}
