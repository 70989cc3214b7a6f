package assessment

import "github.com/abhisek/smartassess/internal/questionbank"

// Accuracy thresholds, expressed as tenths so boundary comparisons are
// exact integer arithmetic: accuracy > 0.70 promotes to hard, accuracy
// < 0.40 demotes to easy.
const (
	hardThresholdTenths = 7
	easyThresholdTenths = 4
)

// Accuracy returns the fraction of correct responses, or 0 for an empty log.
func Accuracy(responses []Response) float64 {
	if len(responses) == 0 {
		return 0
	}
	return float64(CorrectCount(responses)) / float64(len(responses))
}

// NextTier classifies the session's accuracy over all responses so far
// into the tier the next question is drawn from.
func NextTier(responses []Response) questionbank.Tier {
	total := len(responses)
	if total == 0 {
		return questionbank.DefaultTier
	}
	correct := CorrectCount(responses)

	switch {
	case correct*10 > hardThresholdTenths*total:
		return questionbank.TierHard
	case correct*10 < easyThresholdTenths*total:
		return questionbank.TierEasy
	default:
		return questionbank.TierMedium
	}
}
