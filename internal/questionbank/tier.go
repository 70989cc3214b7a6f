package questionbank

import "fmt"

// Tier represents a difficulty tier of the question bank.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// DefaultTier is the tier every new session starts in.
const DefaultTier = TierMedium

// AllTiers returns all tiers in ascending difficulty order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// Valid reports whether t is one of the supported tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// DisplayName returns the capitalized tier name shown to learners.
func (t Tier) DisplayName() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return string(t)
	}
}

// ParseTier converts a tier string such as "medium" into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown tier %q (want easy, medium or hard)", s)
	}
	return t, nil
}
