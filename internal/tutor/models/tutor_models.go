package models

// Concept is a unit of learnable knowledge in the geometry catalog.
// Identity is the concept code; the catalog never mutates after load.
type Concept struct {
	Code          string   `yaml:"code"`
	Label         string   `yaml:"label"`
	Description   *string  `yaml:"description"`
	Difficulty    *int     `yaml:"difficulty"`
	KSLevel       *int     `yaml:"ks_level"`
	Prerequisites []string `yaml:"prerequisites"`
}

// Problem is a practice problem tied to one or more concepts.
type Problem struct {
	Ref           string   `yaml:"ref"`
	Label         string   `yaml:"label"`
	Text          string   `yaml:"text"`
	CorrectAnswer string   `yaml:"correct_answer"`
	Teaches       []string `yaml:"teaches"`
	Hints         []string `yaml:"hints"`
}

// MisconceptionPattern is a catalog-level warning attached to a concept code.
// Message may be empty, in which case a default message is rendered.
type MisconceptionPattern struct {
	ConceptCode string `yaml:"concept_code"`
	Message     string `yaml:"message"`
}

// Database row models (catalog source "db"). Code lists are stored as
// comma-joined columns to keep the schema flat.

type ConceptRow struct {
	ID            uint    `gorm:"primaryKey"`
	Code          string  `gorm:"uniqueIndex"`
	Label         string  `gorm:"not null"`
	Description   *string
	Difficulty    *int
	KSLevel       *int
	Prerequisites string
}

func (ConceptRow) TableName() string { return "concepts" }

type ProblemRow struct {
	ID            uint   `gorm:"primaryKey"`
	Ref           string `gorm:"uniqueIndex;not null"`
	Label         string
	Text          string
	CorrectAnswer string
	Teaches       string
	Hints         string
}

func (ProblemRow) TableName() string { return "problems" }

type TeacherRecommendationRow struct {
	ID          uint   `gorm:"primaryKey"`
	ConceptCode string `gorm:"not null"`
}

func (TeacherRecommendationRow) TableName() string { return "teacher_recommendations" }

type MisconceptionPatternRow struct {
	ID          uint   `gorm:"primaryKey"`
	ConceptCode string `gorm:"not null"`
	Message     string
}

func (MisconceptionPatternRow) TableName() string { return "misconception_patterns" }

// Views

// ConceptView is the outward shape of a concept. ImageKey is always the
// concept code (the frontend resolves /public/shapes/{image_key}.png by
// convention) or null when the code is missing.
type ConceptView struct {
	Code          string   `json:"code"`
	Label         string   `json:"label"`
	Description   *string  `json:"description"`
	Difficulty    *int     `json:"difficulty"`
	KSLevel       *int     `json:"ks_level"`
	Prerequisites []string `json:"prerequisites"`
	ImageKey      *string  `json:"image_key"`
}

// ProblemView is the outward shape of a problem. The stored correct
// answer is deliberately not part of it.
type ProblemView struct {
	Ref       string   `json:"ref"`
	Label     string   `json:"label"`
	Text      string   `json:"text"`
	Teaches   []string `json:"concept_codes"`
	HintCodes []string `json:"hint_codes"`
}

// MisconceptionFlag pairs a concept code with a rendered warning message.
type MisconceptionFlag struct {
	ConceptCode string `json:"concept_code"`
	Message     string `json:"message"`
}

// Request/Response Models

type UpdateKnowledgeRequest struct {
	StudentID     string   `json:"student_id" binding:"required" validate:"required"`
	KnownConcepts []string `json:"known_concepts"`
}

type CheckAnswerRequest struct {
	ProblemRef string `json:"problem_ref" binding:"required" validate:"required"`
	Answer     string `json:"answer"`
}

type StudentView struct {
	StudentID     string   `json:"student_id"`
	KnownConcepts []string `json:"known_concepts"`
}

type UpdateKnowledgeResponse struct {
	Student             StudentView         `json:"student"`
	RecommendedConcepts []ConceptView       `json:"recommended_concepts"`
	Misconceptions      []MisconceptionFlag `json:"misconceptions"`
}

type RecommendationsResponse struct {
	Concepts []ConceptView `json:"concepts"`
}

type TeacherReportResponse struct {
	RecommendedConcepts []ConceptView       `json:"recommended_concepts"`
	Misconceptions      []MisconceptionFlag `json:"misconceptions"`
}

type CheckAnswerResponse struct {
	Correct       bool    `json:"correct"`
	CorrectAnswer *string `json:"correct_answer,omitempty"`
	Feedback      string  `json:"feedback"`
}
