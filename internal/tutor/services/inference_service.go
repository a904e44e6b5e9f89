package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/repository"
)

// GapRecommendations derives the concepts a student is ready to learn: a
// concept qualifies when it is not yet known and every direct
// prerequisite is. Codes in the known set that match nothing in the
// catalog contribute nothing; concepts without a code are skipped.
//
// Only direct prerequisites are checked. A prerequisite cycle among
// unlearned concepts therefore never satisfies the subset test for any
// of its members, so none of them are recommended — degenerate, but it
// terminates and never crashes.
func GapRecommendations(known []string) []models.ConceptView {
	views := []models.ConceptView{}
	cat := repository.ActiveCatalog()
	if cat == nil {
		return views
	}

	knownSet := make(map[string]bool, len(known))
	for _, code := range known {
		knownSet[code] = true
	}

	var candidates []*models.Concept
	for _, c := range cat.All() {
		if c.Code == "" || knownSet[c.Code] {
			continue
		}
		if !allKnown(cat.PrerequisitesOf(c.Code), knownSet) {
			continue
		}
		candidates = append(candidates, c)
	}

	sortByDifficulty(candidates)

	for _, c := range candidates {
		views = append(views, ConceptView(c))
	}
	return views
}

func allKnown(codes []string, knownSet map[string]bool) bool {
	for _, code := range codes {
		if !knownSet[code] {
			return false
		}
	}
	return true
}

// sortByDifficulty orders easiest first; concepts without a difficulty
// sort last. Label breaks ties case-insensitively so output is stable
// regardless of catalog iteration order.
func sortByDifficulty(concepts []*models.Concept) {
	sort.SliceStable(concepts, func(i, j int) bool {
		a, b := concepts[i], concepts[j]
		switch {
		case a.Difficulty == nil && b.Difficulty == nil:
			// fall through to label
		case a.Difficulty == nil:
			return false
		case b.Difficulty == nil:
			return true
		case *a.Difficulty != *b.Difficulty:
			return *a.Difficulty < *b.Difficulty
		}
		return strings.ToLower(a.Label) < strings.ToLower(b.Label)
	})
}

// TeacherRecommendations projects the catalog's static recommended
// concept codes, skipping codes that resolve to nothing.
func TeacherRecommendations() []models.ConceptView {
	views := []models.ConceptView{}
	cat := repository.ActiveCatalog()
	if cat == nil {
		return views
	}
	for _, code := range cat.Recommended() {
		if c := cat.Lookup(code); c != nil {
			views = append(views, ConceptView(c))
		}
	}
	return views
}

// MisconceptionFlags renders the catalog's misconception patterns.
// Patterns without a concept code are dropped; patterns without a
// message get the default wording.
func MisconceptionFlags() []models.MisconceptionFlag {
	flags := []models.MisconceptionFlag{}
	cat := repository.ActiveCatalog()
	if cat == nil {
		return flags
	}
	for _, pattern := range cat.MisconceptionPatterns() {
		if pattern.ConceptCode == "" {
			continue
		}
		message := pattern.Message
		if message == "" {
			message = fmt.Sprintf("The system detected a possible misconception related to concept: %s", pattern.ConceptCode)
		}
		flags = append(flags, models.MisconceptionFlag{
			ConceptCode: pattern.ConceptCode,
			Message:     message,
		})
	}
	return flags
}
