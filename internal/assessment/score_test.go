package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreResponses(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      Score
	}{
		{"empty log", 0, 0, Score{Correct: 0, Total: 0, Percentage: 0}},
		{"zero of ten", 0, 10, Score{Correct: 0, Total: 10, Percentage: 0}},
		{"all correct", 5, 0, Score{Correct: 5, Total: 5, Percentage: 100}},
		{"two thirds rounds up", 2, 1, Score{Correct: 2, Total: 3, Percentage: 67}},
		{"one third rounds down", 1, 2, Score{Correct: 1, Total: 3, Percentage: 33}},
		{"one eighth rounds half up", 1, 7, Score{Correct: 1, Total: 8, Percentage: 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreResponses(answers(tt.correct, tt.incorrect)))
		})
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		correct int
		want    Level
	}{
		{0, LevelBeginner},
		{4, LevelBeginner},
		{5, LevelIntermediate},
		{7, LevelIntermediate},
		{8, LevelAdvanced},
		{26, LevelAdvanced},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Recommend(tt.correct), "Recommend(%d)", tt.correct)
	}
}

func TestFeedback(t *testing.T) {
	assert.Equal(t,
		"Based on your performance, we recommend starting with intermediate level courses.",
		Feedback(LevelIntermediate))
}

func TestBuildResult_CopiesLog(t *testing.T) {
	log := answers(8, 2)
	res := buildResult("id", log, "hard", ReasonPoolExhausted, 0)

	assert.Equal(t, Score{Correct: 8, Total: 10, Percentage: 80}, res.Score)
	assert.Equal(t, LevelAdvanced, res.Level)
	assert.Equal(t, Feedback(LevelAdvanced), res.Feedback)

	log[0].ChosenAnswer = "tampered"
	assert.Equal(t, "right", res.Responses[0].ChosenAnswer)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1800, "30:00"},
		{90, "1:30"},
		{61, "1:01"},
		{59, "0:59"},
		{0, "0:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock(tt.seconds), "FormatClock(%d)", tt.seconds)
	}
}
