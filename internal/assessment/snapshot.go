package assessment

import (
	"time"

	"github.com/abhisek/smartassess/internal/questionbank"
)

// Snapshot is a consistent read-only view of a session for rendering.
type Snapshot struct {
	SessionID        string
	Status           Status
	Reason           CompletionReason
	ActiveTier       questionbank.Tier
	Position         int
	PoolSize         int
	Question         *questionbank.Question // nil once completed
	RemainingSeconds int
	Answered         int
	Correct          int
	Running          bool
	StartedAt        time.Time
	Result           *Result // set once completed
}

// QuestionNumber is the 1-based number of the current question within the
// active tier's pool.
func (s Snapshot) QuestionNumber() int {
	return s.Position + 1
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:        s.id,
		Status:           s.status,
		Reason:           s.reason,
		ActiveTier:       s.activeTier,
		Position:         s.position,
		PoolSize:         s.bank.Count(s.activeTier),
		RemainingSeconds: s.remaining,
		Answered:         len(s.responses),
		Correct:          CorrectCount(s.responses),
		Running:          s.stopTimer != nil,
		StartedAt:        s.startedAt,
	}
	if q, err := s.currentLocked(); err == nil {
		snap.Question = &q
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}
