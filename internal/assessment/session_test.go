package assessment

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smartassess/internal/questionbank"
)

func TestNew_Defaults(t *testing.T) {
	s, err := New(testBank(t, 3, 3, 3))
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, StatusInProgress, snap.Status)
	assert.Equal(t, questionbank.TierMedium, snap.ActiveTier)
	assert.Equal(t, 0, snap.Position)
	assert.Equal(t, 3, snap.PoolSize)
	assert.Equal(t, 1800, snap.RemainingSeconds)
	assert.False(t, snap.Running)
	assert.Nil(t, snap.Result)
	require.NotNil(t, snap.Question)
	assert.Equal(t, "medium-1", snap.Question.ID)
	assert.Equal(t, 1, snap.QuestionNumber())
}

func TestNew_RejectsBadOptions(t *testing.T) {
	bank := testBank(t, 1, 1, 1)
	tests := []struct {
		name string
		bank *questionbank.Bank
		opts []Option
	}{
		{"nil bank", nil, nil},
		{"unknown tier", bank, []Option{WithInitialTier("expert")}},
		{"zero duration", bank, []Option{WithDuration(0)}},
		{"sub-second duration", bank, []Option{WithDuration(500 * time.Millisecond)}},
		{"unknown policy", bank, []Option{WithAnswerPolicy("picky")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.bank, tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestSubmitAnswer_ResponsesTrackPosition(t *testing.T) {
	s := newTestSession(t, testBank(t, 10, 10, 10))

	for i, answer := range []string{"right", "wrong", "wrong", "right", "other", "right"} {
		_, err := s.SubmitAnswer(answer)
		require.NoError(t, err, "answer %d", i)
		require.Equal(t, StatusInProgress, s.Status())
		assert.Len(t, s.Responses(), s.Position())
	}
}

func TestSubmitAnswer_RecordsResponse(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, testBank(t, 3, 3, 3), WithClock(clock))
	clock.Advance(5 * time.Second)

	resp, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	assert.Equal(t, questionbank.TierMedium, resp.Tier)
	assert.Equal(t, 0, resp.Position)
	assert.Equal(t, "medium-1", resp.Question.ID)
	assert.Equal(t, "right", resp.ChosenAnswer)
	assert.True(t, resp.Correct())
	assert.Equal(t, clock.Now(), resp.AnsweredAt)
	assert.Equal(t, 1800, resp.RemainingSeconds)

	// A single correct answer is 100% accuracy.
	assert.Equal(t, questionbank.TierHard, s.ActiveTier())
	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, "hard-2", q.ID)
}

func TestSubmitAnswer_MediumPoolScenario(t *testing.T) {
	s := newTestSession(t, testBank(t, 5, 5, 5))

	steps := []struct {
		answer string
		tier   questionbank.Tier
	}{
		{"right", questionbank.TierHard},   // 1/1
		{"right", questionbank.TierHard},   // 2/2
		{"wrong", questionbank.TierMedium}, // 2/3 = 0.67
		{"wrong", questionbank.TierMedium}, // 2/4 = 0.50
	}
	for i, step := range steps {
		_, err := s.SubmitAnswer(step.answer)
		require.NoError(t, err)
		assert.Equal(t, step.tier, s.ActiveTier(), "after answer %d", i+1)
		assert.Equal(t, StatusInProgress, s.Status())
	}

	// 3/5 = 0.60 keeps medium and position 5 reaches the end of its pool.
	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, s.Status())
	assert.Equal(t, 5, s.Position())

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, ReasonPoolExhausted, res.Reason)
	assert.Equal(t, questionbank.TierMedium, res.FinalTier)
	assert.Equal(t, Score{Correct: 3, Total: 5, Percentage: 60}, res.Score)
	assert.Len(t, res.Responses, 5)
}

func TestSubmitAnswer_TierSwitchToSmallerPoolCompletes(t *testing.T) {
	s := newTestSession(t, testBank(t, 5, 5, 1))

	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)

	// Position 1 is already past the single-question hard pool.
	assert.Equal(t, StatusCompleted, s.Status())
	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, ReasonPoolExhausted, res.Reason)
	assert.Equal(t, 1, res.Score.Total)
}

func TestSubmitAnswer_ZeroOfTen(t *testing.T) {
	s := newTestSession(t, testBank(t, 10, 10, 10))

	for i := 0; i < 10; i++ {
		require.Equal(t, StatusInProgress, s.Status(), "before answer %d", i+1)
		_, err := s.SubmitAnswer("wrong")
		require.NoError(t, err)
	}

	require.Equal(t, StatusCompleted, s.Status())
	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, Score{Correct: 0, Total: 10, Percentage: 0}, res.Score)
	assert.Equal(t, LevelBeginner, res.Level)
	assert.Equal(t, questionbank.TierEasy, res.FinalTier)
}

func TestSubmitAnswer_AfterCompletionRejected(t *testing.T) {
	s := newTestSession(t, testBank(t, 1, 1, 1))
	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, s.Status())

	_, err = s.SubmitAnswer("right")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, s.Responses(), 1)
	assert.Equal(t, StatusCompleted, s.Status())

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Nil(t, s.Snapshot().Question)
}

func TestSubmitAnswer_LenientRecordsUnknownAnswer(t *testing.T) {
	s := newTestSession(t, testBank(t, 3, 3, 3))

	resp, err := s.SubmitAnswer("not an option")
	require.NoError(t, err)
	assert.False(t, resp.Correct())
	assert.Equal(t, questionbank.TierEasy, s.ActiveTier())
}

func TestSubmitAnswer_StrictRejectsUnknownAnswer(t *testing.T) {
	s := newTestSession(t, testBank(t, 3, 3, 3), WithAnswerPolicy(AnswerPolicyStrict))

	_, err := s.SubmitAnswer("not an option")
	assert.ErrorIs(t, err, ErrInvalidAnswer)
	assert.Equal(t, 0, s.Position())
	assert.Empty(t, s.Responses())
	assert.Equal(t, questionbank.TierMedium, s.ActiveTier())

	_, err = s.SubmitAnswer("other")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Position())
}

func TestTick_ExpiryWithNoResponses(t *testing.T) {
	var completions int
	s := newTestSession(t, testBank(t, 3, 3, 3),
		WithDuration(3*time.Second),
		OnComplete(func(Result) { completions++ }),
	)

	assert.True(t, s.Tick())
	assert.True(t, s.Tick())
	assert.Equal(t, 1, s.RemainingSeconds())
	assert.False(t, s.Tick())

	assert.Equal(t, StatusCompleted, s.Status())
	assert.Equal(t, 0, s.RemainingSeconds())
	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, ReasonTimeExpired, res.Reason)
	assert.Equal(t, Score{}, res.Score)
	assert.Equal(t, LevelBeginner, res.Level)

	// Further ticks are no-ops.
	assert.False(t, s.Tick())
	assert.Equal(t, 0, s.RemainingSeconds())
	assert.Equal(t, 1, completions)
}

func TestTick_ExpiryMidSessionScoresPartialLog(t *testing.T) {
	s := newTestSession(t, testBank(t, 5, 5, 5), WithDuration(2*time.Second))

	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	s.Tick()
	s.Tick()

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, ReasonTimeExpired, res.Reason)
	assert.Equal(t, Score{Correct: 1, Total: 1, Percentage: 100}, res.Score)
	assert.Equal(t, 1, s.Position())
}

func TestClose_AbortsOnce(t *testing.T) {
	var completions int
	var got Result
	s := newTestSession(t, testBank(t, 3, 3, 3), OnComplete(func(r Result) {
		completions++
		got = r
	}))
	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)

	s.Close()
	s.Close()

	assert.Equal(t, 1, completions)
	assert.Equal(t, ReasonAborted, got.Reason)
	assert.Equal(t, 1, got.Score.Total)
	assert.Equal(t, StatusCompleted, s.Status())

	_, err = s.SubmitAnswer("right")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestClose_AfterCompletionKeepsReason(t *testing.T) {
	s := newTestSession(t, testBank(t, 1, 1, 1))
	_, err := s.SubmitAnswer("wrong")
	require.NoError(t, err)
	s.Close()

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, ReasonPoolExhausted, res.Reason)
}

func TestResult_InProgressRejected(t *testing.T) {
	s := newTestSession(t, testBank(t, 1, 1, 1))
	_, err := s.Result()
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRestart_ResetsEverything(t *testing.T) {
	s := newTestSession(t, testBank(t, 5, 5, 5),
		WithInitialTier(questionbank.TierHard),
		WithDuration(60*time.Second),
	)
	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	s.Tick()
	s.Close()

	next := s.Restart()
	t.Cleanup(next.Close)

	snap := next.Snapshot()
	assert.NotEqual(t, s.ID(), snap.SessionID)
	assert.Equal(t, StatusInProgress, snap.Status)
	assert.Equal(t, questionbank.TierMedium, snap.ActiveTier)
	assert.Equal(t, 0, snap.Position)
	assert.Equal(t, 0, snap.Answered)
	assert.Equal(t, 60, snap.RemainingSeconds)

	// The old session is left as it was.
	assert.Equal(t, StatusCompleted, s.Status())
	assert.Len(t, s.Responses(), 1)
	assert.Equal(t, 59, s.RemainingSeconds())
}

func TestRestart_StopsOldTimer(t *testing.T) {
	ft := newFakeTickers()
	s := newTestSession(t, testBank(t, 3, 3, 3), WithTicker(ft.New))
	s.Start()
	old := ft.Next(t)

	next := s.Restart()
	t.Cleanup(next.Close)

	require.Eventually(t, old.Stopped, time.Second, 5*time.Millisecond)
	assert.False(t, s.Running())
	assert.Equal(t, StatusInProgress, s.Status())
	assert.False(t, next.Running())
}

func TestStart_CountsDownToExpiry(t *testing.T) {
	ft := newFakeTickers()
	done := make(chan Result, 1)
	s := newTestSession(t, testBank(t, 3, 3, 3),
		WithDuration(3*time.Second),
		WithTicker(ft.New),
		OnComplete(func(r Result) { done <- r }),
	)

	s.Start()
	s.Start() // already running
	tk := ft.Next(t)
	assert.True(t, s.Running())

	tk.Fire()
	tk.Fire()
	require.Eventually(t, func() bool { return s.RemainingSeconds() == 1 }, time.Second, 5*time.Millisecond)
	tk.Fire()

	select {
	case res := <-done:
		assert.Equal(t, ReasonTimeExpired, res.Reason)
	case <-time.After(time.Second):
		t.Fatal("session did not expire")
	}
	require.Eventually(t, tk.Stopped, time.Second, 5*time.Millisecond)
	assert.False(t, s.Running())
	ft.AssertNoneCreated(t)
}

func TestPause_KeepsRemainingAndResumes(t *testing.T) {
	ft := newFakeTickers()
	s := newTestSession(t, testBank(t, 3, 3, 3), WithDuration(10*time.Second), WithTicker(ft.New))

	s.Start()
	first := ft.Next(t)
	first.Fire()
	require.Eventually(t, func() bool { return s.RemainingSeconds() == 9 }, time.Second, 5*time.Millisecond)

	s.Pause()
	require.Eventually(t, first.Stopped, time.Second, 5*time.Millisecond)
	assert.False(t, s.Running())
	assert.Equal(t, 9, s.RemainingSeconds())

	s.Start()
	second := ft.Next(t)
	second.Fire()
	require.Eventually(t, func() bool { return s.RemainingSeconds() == 8 }, time.Second, 5*time.Millisecond)
}

func TestStart_NoOpWhenCompleted(t *testing.T) {
	ft := newFakeTickers()
	s := newTestSession(t, testBank(t, 3, 3, 3), WithTicker(ft.New))
	s.Close()

	s.Start()
	assert.False(t, s.Running())
	ft.AssertNoneCreated(t)
}

func TestSubmitAnswer_CompletionStopsTimer(t *testing.T) {
	ft := newFakeTickers()
	s := newTestSession(t, testBank(t, 1, 1, 1), WithTicker(ft.New))
	s.Start()
	tk := ft.Next(t)

	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)

	require.Eventually(t, tk.Stopped, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1800, s.RemainingSeconds())
}

func TestTick_StaleGenerationIgnored(t *testing.T) {
	s := newTestSession(t, testBank(t, 3, 3, 3), WithTicker(newFakeTickers().New))
	s.Start()
	s.mu.Lock()
	gen := s.timerGen
	s.mu.Unlock()

	s.Pause()
	assert.False(t, s.tick(gen))
	assert.Equal(t, 1800, s.RemainingSeconds())
}

func TestTick_IgnoredWhileTimerRunning(t *testing.T) {
	ft := newFakeTickers()
	s := newTestSession(t, testBank(t, 3, 3, 3), WithDuration(10*time.Second), WithTicker(ft.New))

	s.Start()
	tk := ft.Next(t)

	assert.True(t, s.Tick())
	assert.True(t, s.Tick())
	assert.Equal(t, 10, s.RemainingSeconds(), "external ticks must not double the countdown")

	tk.Fire()
	require.Eventually(t, func() bool { return s.RemainingSeconds() == 9 }, time.Second, 5*time.Millisecond)

	s.Pause()
	assert.True(t, s.Tick())
	assert.Equal(t, 8, s.RemainingSeconds())
}

func TestRace_ExpiryAndSubmitCompleteOnce(t *testing.T) {
	bank := testBank(t, 5, 5, 5)
	for i := 0; i < 200; i++ {
		var completions atomic.Int32
		s := newTestSession(t, bank,
			WithDuration(time.Second),
			OnComplete(func(Result) { completions.Add(1) }),
		)

		var wg sync.WaitGroup
		var submitErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Tick()
		}()
		go func() {
			defer wg.Done()
			_, submitErr = s.SubmitAnswer("right")
		}()
		wg.Wait()

		require.Equal(t, int32(1), completions.Load(), "iteration %d", i)
		res, err := s.Result()
		require.NoError(t, err)
		assert.Equal(t, ReasonTimeExpired, res.Reason)
		if submitErr != nil {
			assert.ErrorIs(t, submitErr, ErrInvalidState)
			assert.Empty(t, res.Responses, "no response may be recorded after expiry")
		} else {
			assert.Len(t, res.Responses, 1)
		}
	}
}

func TestOnComplete_MayCallBackIntoSession(t *testing.T) {
	var s *Session
	var snap Snapshot
	s = newTestSession(t, testBank(t, 1, 1, 1), OnComplete(func(Result) {
		snap = s.Snapshot()
	}))

	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, snap.Status)
	require.NotNil(t, snap.Result)
}

func TestResult_Duration(t *testing.T) {
	clock := newFakeClock()
	s := newTestSession(t, testBank(t, 1, 1, 1), WithClock(clock))
	clock.Advance(95 * time.Second)
	_, err := s.SubmitAnswer("right")
	require.NoError(t, err)

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 95*time.Second, res.Duration)
	assert.Equal(t, s.ID(), res.SessionID)
}

// testBank builds a bank with the given pool sizes. Every question's
// correct answer is "right"; "wrong" and "other" are the distractors.
func testBank(t testing.TB, easy, medium, hard int) *questionbank.Bank {
	t.Helper()
	var questions []questionbank.Question
	add := func(tier questionbank.Tier, n int) {
		for i := 1; i <= n; i++ {
			questions = append(questions, questionbank.Question{
				ID:            fmt.Sprintf("%s-%d", tier, i),
				Prompt:        fmt.Sprintf("%s question %d", tier, i),
				Options:       []string{"wrong", "right", "other"},
				CorrectAnswer: "right",
				Tier:          tier,
			})
		}
	}
	add(questionbank.TierEasy, easy)
	add(questionbank.TierMedium, medium)
	add(questionbank.TierHard, hard)

	bank, err := questionbank.New(questions)
	require.NoError(t, err)
	return bank
}

func newTestSession(t testing.TB, bank *questionbank.Bank, opts ...Option) *Session {
	t.Helper()
	s, err := New(bank, opts...)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }
func (f *fakeTicker) Stopped() bool       { return f.stopped.Load() }

// Fire delivers one tick and blocks until the countdown goroutine takes it.
func (f *fakeTicker) Fire() {
	f.ch <- time.Now()
}

// fakeTickers hands out fakeTickers and records each one created.
type fakeTickers struct {
	created chan *fakeTicker
}

func newFakeTickers() *fakeTickers {
	return &fakeTickers{created: make(chan *fakeTicker, 8)}
}

func (f *fakeTickers) New(time.Duration) Ticker {
	tk := &fakeTicker{ch: make(chan time.Time)}
	f.created <- tk
	return tk
}

func (f *fakeTickers) Next(t testing.TB) *fakeTicker {
	t.Helper()
	select {
	case tk := <-f.created:
		return tk
	case <-time.After(time.Second):
		t.Fatal("no ticker created")
		return nil
	}
}

func (f *fakeTickers) AssertNoneCreated(t testing.TB) {
	t.Helper()
	select {
	case <-f.created:
		t.Fatal("unexpected ticker created")
	default:
	}
}
