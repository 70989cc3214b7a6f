package assessment

import (
	"fmt"
	"time"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Ticker delivers countdown ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker that fires every d.
type TickerFunc func(d time.Duration) Ticker

type stdTicker struct {
	t *time.Ticker
}

// NewStdTicker wraps time.NewTicker.
func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FormatClock renders a second count as m:ss, e.g. 90 -> "1:30".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Start begins (or resumes) the countdown on a background goroutine.
// It is a no-op when the countdown is already running or the session has
// completed.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusInProgress || s.stopTimer != nil {
		return
	}

	s.timerGen++
	stop := make(chan struct{})
	s.stopTimer = stop
	go s.runTimer(s.opts.newTicker(TickInterval), s.timerGen, stop)

	s.log.Debug().Int("remaining", s.remaining).Msg("timer started")
}

// Pause stops the countdown and keeps the remaining time.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopTimer == nil {
		return
	}
	s.haltTimerLocked()
	s.log.Debug().Int("remaining", s.remaining).Msg("timer paused")
}

// Running reports whether the background countdown is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopTimer != nil
}

// Tick advances the countdown by one second. It is meant for callers that
// drive time from their own scheduler instead of Start, and is a no-op
// while the background countdown is running. Returns false once the
// session is no longer in progress.
func (s *Session) Tick() bool {
	return s.tick(0)
}

// runTimer forwards ticks until stopped or the session leaves in_progress.
func (s *Session) runTimer(t Ticker, gen uint64, stop <-chan struct{}) {
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick decrements the countdown. gen identifies the background timer that
// produced the tick; stale generations are ignored so a tick that raced a
// Pause or completion never mutates state. gen 0 is an external tick.
func (s *Session) tick(gen uint64) bool {
	s.mu.Lock()
	if s.status != StatusInProgress || (gen != 0 && gen != s.timerGen) {
		s.mu.Unlock()
		return false
	}
	if gen == 0 && s.stopTimer != nil {
		s.mu.Unlock()
		return true
	}

	if s.remaining > 0 {
		s.remaining--
	}

	var res *Result
	if s.remaining == 0 {
		r := s.completeLocked(ReasonTimeExpired)
		res = &r
	}
	s.mu.Unlock()

	if res != nil {
		s.notify(*res)
		return false
	}
	return true
}

// haltTimerLocked tears down the background countdown, if any, and
// invalidates ticks already in flight. Caller must hold s.mu.
func (s *Session) haltTimerLocked() {
	if s.stopTimer != nil {
		close(s.stopTimer)
		s.stopTimer = nil
	}
	s.timerGen++
}
