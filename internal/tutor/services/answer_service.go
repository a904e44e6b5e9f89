package services

import (
	"strings"

	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
	"golang.org/x/text/cases"
)

var answerFolder = cases.Fold()

// normalizeAnswer trims surrounding whitespace and case-folds, so that
// " Right Angle " and "right angle" compare equal.
func normalizeAnswer(s string) string {
	return answerFolder.String(strings.TrimSpace(s))
}

// CheckAnswer grades a submitted answer against the problem's stored
// correct answer. An unresolvable problem ref is the caller's error; a
// problem without a stored answer is a catalog data gap and grades as
// incorrect with an explanation instead of failing.
func CheckAnswer(req models.CheckAnswerRequest) (*models.CheckAnswerResponse, error) {
	cat := repository.ActiveCatalog()
	if cat == nil {
		return nil, errors.NotFound("problem")
	}

	problem := cat.ProblemByRef(req.ProblemRef)
	if problem == nil {
		return nil, errors.NotFound("problem")
	}

	if problem.CorrectAnswer == "" {
		return &models.CheckAnswerResponse{
			Correct:  false,
			Feedback: "This problem has no reference answer recorded, so it cannot be graded.",
		}, nil
	}

	stored := problem.CorrectAnswer
	resp := &models.CheckAnswerResponse{
		CorrectAnswer: &stored,
	}

	if normalizeAnswer(req.Answer) == normalizeAnswer(stored) {
		resp.Correct = true
		resp.Feedback = "Correct!"
	} else {
		resp.Correct = false
		resp.Feedback = "That is not quite right. Compare your answer with the expected one."
	}

	return resp, nil
}
