package assessment

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/smartassess/internal/questionbank"
)

// DefaultDuration is the time budget of a session.
const DefaultDuration = 30 * time.Minute

// AnswerPolicy decides how answers outside the question's options are handled.
type AnswerPolicy string

const (
	// AnswerPolicyLenient records any answer; non-options score as incorrect.
	AnswerPolicyLenient AnswerPolicy = "lenient"

	// AnswerPolicyStrict rejects non-option answers with ErrInvalidAnswer
	// and leaves the session unchanged.
	AnswerPolicyStrict AnswerPolicy = "strict"
)

// Option configures a Session.
type Option func(*options)

type options struct {
	initialTier questionbank.Tier
	budget      int // seconds
	policy      AnswerPolicy
	logger      zerolog.Logger
	clock       Clock
	newTicker   TickerFunc
	onComplete  func(Result)
}

func defaultOptions() options {
	return options{
		initialTier: questionbank.DefaultTier,
		budget:      int(DefaultDuration / time.Second),
		policy:      AnswerPolicyLenient,
		logger:      zerolog.Nop(),
		clock:       systemClock{},
		newTicker:   NewStdTicker,
	}
}

// WithInitialTier overrides the starting tier (medium by default).
// Restarted sessions always start in medium.
func WithInitialTier(t questionbank.Tier) Option {
	return func(o *options) { o.initialTier = t }
}

// WithDuration sets the session time budget, truncated to whole seconds.
func WithDuration(d time.Duration) Option {
	return func(o *options) { o.budget = int(d / time.Second) }
}

// WithAnswerPolicy selects how non-option answers are treated.
func WithAnswerPolicy(p AnswerPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithLogger sets the session logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the clock used for timestamps.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithTicker sets the ticker factory used by Start.
func WithTicker(f TickerFunc) Option {
	return func(o *options) { o.newTicker = f }
}

// OnComplete registers fn to be called exactly once when the session
// completes. fn runs outside the session lock and may call back into the
// session.
func OnComplete(fn func(Result)) Option {
	return func(o *options) { o.onComplete = fn }
}
