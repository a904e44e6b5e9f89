package services

import (
	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/common/validation"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
)

// UpdateKnowledge replaces the student's known set wholesale, then runs
// inference against the stored result. Validation happens before the
// write, so a rejected request leaves the store untouched; the response
// always reflects exactly the set that was installed.
func UpdateKnowledge(req models.UpdateKnowledgeRequest) (*models.UpdateKnowledgeResponse, error) {
	if req.StudentID == "" {
		return nil, errors.BadRequest("student_id must not be empty")
	}
	if verrs := validation.Validate(req); verrs != nil {
		return nil, errors.Validation("invalid knowledge update request", verrs[0].Field)
	}

	stored := repository.ReplaceKnownConcepts(req.StudentID, req.KnownConcepts)

	return &models.UpdateKnowledgeResponse{
		Student: models.StudentView{
			StudentID:     req.StudentID,
			KnownConcepts: stored,
		},
		RecommendedConcepts: GapRecommendations(stored),
		Misconceptions:      MisconceptionFlags(),
	}, nil
}

// Recommendations re-derives the gap recommendations for a student
// without mutating anything. A student never seen before gets an empty
// record and recommendations for a blank slate.
func Recommendations(studentID string) (*models.RecommendationsResponse, error) {
	if studentID == "" {
		return nil, errors.BadRequest("student_id must not be empty")
	}

	known := repository.KnownConcepts(studentID)

	return &models.RecommendationsResponse{
		Concepts: GapRecommendations(known),
	}, nil
}

// TeacherReport returns the catalog-wide recommended concepts and
// misconception flags. When a student id is supplied its record is
// touched so the student exists before the report is read.
func TeacherReport(studentID string) *models.TeacherReportResponse {
	if studentID != "" {
		repository.KnownConcepts(studentID)
	}

	return &models.TeacherReportResponse{
		RecommendedConcepts: TeacherRecommendations(),
		Misconceptions:      MisconceptionFlags(),
	}
}
