package services

import (
	"testing"

	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const answerCatalog = `
concepts:
  - code: C_RIGHT_ANGLE
    label: Right Angle
problems:
  - ref: prob-1
    label: Name the angle
    text: What kind of angle measures exactly 90 degrees?
    correct_answer: Right Angle
    teaches: [C_RIGHT_ANGLE]
  - ref: prob-ungraded
    label: Sketch
    text: Sketch a right angle.
    teaches: [C_RIGHT_ANGLE]
`

func TestCheckAnswer(t *testing.T) {
	setTestCatalog(t, answerCatalog)

	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact match", "Right Angle", true},
		{"whitespace and case ignored", "  right angle ", true},
		{"uppercase", "RIGHT ANGLE", true},
		{"wrong answer", "obtuse", false},
		{"empty answer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := CheckAnswer(models.CheckAnswerRequest{ProblemRef: "prob-1", Answer: tt.answer})
			require.NoError(t, err)
			assert.Equal(t, tt.correct, resp.Correct)
			assert.NotEmpty(t, resp.Feedback)

			// The stored answer is always echoed for graded problems
			require.NotNil(t, resp.CorrectAnswer)
			assert.Equal(t, "Right Angle", *resp.CorrectAnswer)
		})
	}
}

func TestCheckAnswerUnknownProblem(t *testing.T) {
	setTestCatalog(t, answerCatalog)

	_, err := CheckAnswer(models.CheckAnswerRequest{ProblemRef: "prob-999", Answer: "anything"})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}

func TestCheckAnswerWithoutStoredAnswer(t *testing.T) {
	setTestCatalog(t, answerCatalog)

	// A data-quality gap, not an error
	resp, err := CheckAnswer(models.CheckAnswerRequest{ProblemRef: "prob-ungraded", Answer: "anything"})
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Nil(t, resp.CorrectAnswer)
	assert.NotEmpty(t, resp.Feedback)
}

func TestCheckAnswerWithoutCatalog(t *testing.T) {
	repository.SetCatalog(nil)

	_, err := CheckAnswer(models.CheckAnswerRequest{ProblemRef: "prob-1", Answer: "x"})
	require.Error(t, err)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNotFound, appErr.Code)
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims and folds", "  Right Angle ", "right angle"},
		{"inner whitespace preserved", "right  angle", "right  angle"},
		{"unicode folding", "STRASSE", "strasse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeAnswer(tt.input))
		})
	}
}
