package repository

import (
	"testing"

	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestLoadCatalogFromDB(t *testing.T) {
	db := setupCatalogDB(t)
	require.NoError(t, db.AutoMigrate(
		&models.ConceptRow{},
		&models.ProblemRow{},
		&models.TeacherRecommendationRow{},
		&models.MisconceptionPatternRow{},
	))

	diff := 2
	db.Create(&models.ConceptRow{Code: "C_POINT", Label: "Point"})
	db.Create(&models.ConceptRow{Code: "C_ANGLE", Label: "Angle", Difficulty: &diff, Prerequisites: "C_POINT, C_LINE"})
	db.Create(&models.ProblemRow{Ref: "prob-1", Label: "Angles", Text: "Which angle?", CorrectAnswer: "Right Angle", Teaches: "C_ANGLE", Hints: "C_POINT"})
	db.Create(&models.TeacherRecommendationRow{ConceptCode: "C_ANGLE"})
	db.Create(&models.MisconceptionPatternRow{ConceptCode: "C_ANGLE", Message: "Angles are not lengths."})

	cat, err := LoadCatalogFromDB(db)
	require.NoError(t, err)

	require.Len(t, cat.All(), 2)
	assert.Equal(t, "C_POINT", cat.All()[0].Code)

	angle := cat.Lookup("C_ANGLE")
	require.NotNil(t, angle)
	assert.Equal(t, []string{"C_POINT", "C_LINE"}, angle.Prerequisites)
	require.NotNil(t, angle.Difficulty)
	assert.Equal(t, 2, *angle.Difficulty)

	problem := cat.ProblemByRef("prob-1")
	require.NotNil(t, problem)
	assert.Equal(t, []string{"C_ANGLE"}, problem.Teaches)
	assert.Equal(t, "Right Angle", problem.CorrectAnswer)

	assert.Equal(t, []string{"C_ANGLE"}, cat.Recommended())
	require.Len(t, cat.MisconceptionPatterns(), 1)
	assert.Equal(t, "Angles are not lengths.", cat.MisconceptionPatterns()[0].Message)
}

func TestLoadCatalogFromDBMissingTables(t *testing.T) {
	t.Run("no tables at all", func(t *testing.T) {
		db := setupCatalogDB(t)

		_, err := LoadCatalogFromDB(db)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeSchemaError, appErr.Code)
	})

	t.Run("concepts without problems", func(t *testing.T) {
		db := setupCatalogDB(t)
		require.NoError(t, db.AutoMigrate(&models.ConceptRow{}))

		_, err := LoadCatalogFromDB(db)
		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeSchemaError, appErr.Code)
	})
}

func TestLoadCatalogFromDBTeacherTablesOptional(t *testing.T) {
	db := setupCatalogDB(t)
	require.NoError(t, db.AutoMigrate(&models.ConceptRow{}, &models.ProblemRow{}))
	db.Create(&models.ConceptRow{Code: "C_POINT", Label: "Point"})

	cat, err := LoadCatalogFromDB(db)
	require.NoError(t, err)
	assert.Len(t, cat.All(), 1)
	assert.Empty(t, cat.Recommended())
	assert.Empty(t, cat.MisconceptionPatterns())
}

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		name     string
		joined   string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "C_A", []string{"C_A"}},
		{"several with spaces", "C_A, C_B ,C_C", []string{"C_A", "C_B", "C_C"}},
		{"blank segments dropped", "C_A,,C_B,", []string{"C_A", "C_B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitCodes(tt.joined))
		})
	}
}
