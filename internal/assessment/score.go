package assessment

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/smartassess/internal/questionbank"
)

// Score is the tally of a response log.
type Score struct {
	Correct    int
	Total      int
	Percentage int // round(100 * Correct / Total), 0 when Total is 0
}

// ScoreResponses tallies responses. An empty log scores 0%.
func ScoreResponses(responses []Response) Score {
	s := Score{
		Correct: CorrectCount(responses),
		Total:   len(responses),
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(100 * float64(s.Correct) / float64(s.Total)))
	}
	return s
}

// Level is the course level recommended after an assessment.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Recommendation buckets on the raw correct count. These thresholds are
// independent of the tier classifier.
const (
	advancedMinCorrect     = 8
	intermediateMinCorrect = 5
)

// Recommend maps a raw correct count to a course level.
func Recommend(correct int) Level {
	switch {
	case correct >= advancedMinCorrect:
		return LevelAdvanced
	case correct >= intermediateMinCorrect:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// Feedback renders the one-line recommendation summary for level.
func Feedback(level Level) string {
	return fmt.Sprintf("Based on your performance, we recommend starting with %s level courses.", level)
}

// Result is the final outcome of a completed session.
type Result struct {
	SessionID string
	Score     Score
	Level     Level
	Feedback  string
	FinalTier questionbank.Tier
	Reason    CompletionReason
	Duration  time.Duration
	Responses []Response
}

// buildResult derives the result from a completed response log.
func buildResult(sessionID string, responses []Response, finalTier questionbank.Tier, reason CompletionReason, duration time.Duration) Result {
	score := ScoreResponses(responses)
	level := Recommend(score.Correct)
	log := make([]Response, len(responses))
	copy(log, responses)
	return Result{
		SessionID: sessionID,
		Score:     score,
		Level:     level,
		Feedback:  Feedback(level),
		FinalTier: finalTier,
		Reason:    reason,
		Duration:  duration,
		Responses: log,
	}
}
