package repository

import (
	"strings"

	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"gorm.io/gorm"
)

// LoadCatalogFromDB builds a catalog from the concepts/problems tables.
// Both tables must exist; the teacher tables are optional and degrade to
// empty teacher data when absent.
func LoadCatalogFromDB(db *gorm.DB) (*Catalog, error) {
	migrator := db.Migrator()

	if !migrator.HasTable(&models.ConceptRow{}) {
		return nil, errors.Schema("catalog database is missing the concepts table", "")
	}
	if !migrator.HasTable(&models.ProblemRow{}) {
		return nil, errors.Schema("catalog database is missing the problems table", "")
	}

	var conceptRows []models.ConceptRow
	if result := db.Order("id").Find(&conceptRows); result.Error != nil {
		return nil, errors.Internal("failed to load concepts", result.Error.Error())
	}

	var problemRows []models.ProblemRow
	if result := db.Order("id").Find(&problemRows); result.Error != nil {
		return nil, errors.Internal("failed to load problems", result.Error.Error())
	}

	concepts := make([]*models.Concept, 0, len(conceptRows))
	for _, row := range conceptRows {
		concepts = append(concepts, &models.Concept{
			Code:          row.Code,
			Label:         row.Label,
			Description:   row.Description,
			Difficulty:    row.Difficulty,
			KSLevel:       row.KSLevel,
			Prerequisites: splitCodes(row.Prerequisites),
		})
	}

	problems := make([]*models.Problem, 0, len(problemRows))
	for _, row := range problemRows {
		problems = append(problems, &models.Problem{
			Ref:           row.Ref,
			Label:         row.Label,
			Text:          row.Text,
			CorrectAnswer: row.CorrectAnswer,
			Teaches:       splitCodes(row.Teaches),
			Hints:         splitCodes(row.Hints),
		})
	}

	var recommended []string
	if migrator.HasTable(&models.TeacherRecommendationRow{}) {
		var rows []models.TeacherRecommendationRow
		if result := db.Order("id").Find(&rows); result.Error != nil {
			return nil, errors.Internal("failed to load teacher recommendations", result.Error.Error())
		}
		for _, row := range rows {
			recommended = append(recommended, row.ConceptCode)
		}
	}

	var misconceptions []models.MisconceptionPattern
	if migrator.HasTable(&models.MisconceptionPatternRow{}) {
		var rows []models.MisconceptionPatternRow
		if result := db.Order("id").Find(&rows); result.Error != nil {
			return nil, errors.Internal("failed to load misconception patterns", result.Error.Error())
		}
		for _, row := range rows {
			misconceptions = append(misconceptions, models.MisconceptionPattern{
				ConceptCode: row.ConceptCode,
				Message:     row.Message,
			})
		}
	}

	return newCatalog(concepts, problems, recommended, misconceptions), nil
}

// splitCodes splits a comma-joined code column, dropping blanks.
func splitCodes(joined string) []string {
	if joined == "" {
		return nil
	}
	var codes []string
	for _, part := range strings.Split(joined, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
