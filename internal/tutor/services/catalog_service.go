package services

import (
	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
)

// ConceptView projects a catalog concept into its outward shape. The
// image key convention (key == code, absent when the code is missing)
// is an external contract the frontend relies on.
func ConceptView(c *models.Concept) models.ConceptView {
	view := models.ConceptView{
		Code:          c.Code,
		Label:         c.Label,
		Description:   c.Description,
		Difficulty:    c.Difficulty,
		KSLevel:       c.KSLevel,
		Prerequisites: c.Prerequisites,
	}
	if view.Prerequisites == nil {
		view.Prerequisites = []string{}
	}
	if c.Code != "" {
		key := c.Code
		view.ImageKey = &key
	}
	return view
}

func problemView(p *models.Problem) models.ProblemView {
	view := models.ProblemView{
		Ref:       p.Ref,
		Label:     p.Label,
		Text:      p.Text,
		Teaches:   p.Teaches,
		HintCodes: p.Hints,
	}
	if view.Teaches == nil {
		view.Teaches = []string{}
	}
	if view.HintCodes == nil {
		view.HintCodes = []string{}
	}
	return view
}

// ListConcepts returns every catalog concept in load order.
func ListConcepts() []models.ConceptView {
	views := []models.ConceptView{}
	cat := repository.ActiveCatalog()
	if cat == nil {
		return views
	}
	for _, c := range cat.All() {
		views = append(views, ConceptView(c))
	}
	return views
}

// GetConcept resolves one concept by code.
func GetConcept(code string) (*models.ConceptView, error) {
	cat := repository.ActiveCatalog()
	if cat == nil {
		return nil, errors.NotFound("concept")
	}
	c := cat.Lookup(code)
	if c == nil {
		return nil, errors.NotFound("concept")
	}
	view := ConceptView(c)
	return &view, nil
}

// ListProblems returns all problems, or only those teaching conceptCode
// when it is non-empty. The correct answer never leaves this layer.
func ListProblems(conceptCode string) []models.ProblemView {
	views := []models.ProblemView{}
	cat := repository.ActiveCatalog()
	if cat == nil {
		return views
	}

	problems := cat.Problems()
	if conceptCode != "" {
		problems = cat.ProblemsFor(conceptCode)
	}
	for _, p := range problems {
		views = append(views, problemView(p))
	}
	return views
}
