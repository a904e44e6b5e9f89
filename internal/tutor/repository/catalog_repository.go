package repository

import (
	"os"

	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"gopkg.in/yaml.v3"
)

// Catalog is the immutable-after-load index over concepts, problems and
// the static teacher data. All methods are read-only and safe for
// unsynchronized concurrent use. Slice-returning accessors hand out
// fresh slice headers, so callers cannot reorder or truncate the index;
// the concept and problem values themselves are shared and must be
// treated as read-only.
type Catalog struct {
	concepts       []*models.Concept
	byCode         map[string]*models.Concept
	problems       []*models.Problem
	byRef          map[string]*models.Problem
	recommended    []string
	misconceptions []models.MisconceptionPattern
}

var activeCatalog *Catalog

// SetCatalog installs the process-wide catalog. Called once at startup
// and by tests.
func SetCatalog(c *Catalog) {
	activeCatalog = c
}

// ActiveCatalog returns the process-wide catalog, nil before load.
func ActiveCatalog() *Catalog {
	return activeCatalog
}

func newCatalog(concepts []*models.Concept, problems []*models.Problem, recommended []string, misconceptions []models.MisconceptionPattern) *Catalog {
	// Null YAML list entries decode to nil pointers. They carry no data
	// at all, so they are dropped like any other malformed entry.
	concepts = withoutNilConcepts(concepts)
	problems = withoutNilProblems(problems)

	c := &Catalog{
		concepts:       concepts,
		byCode:         make(map[string]*models.Concept, len(concepts)),
		problems:       problems,
		byRef:          make(map[string]*models.Problem, len(problems)),
		recommended:    recommended,
		misconceptions: misconceptions,
	}

	for _, concept := range concepts {
		// Concepts without a code stay listable but unaddressable.
		if concept.Code == "" {
			continue
		}
		if _, dup := c.byCode[concept.Code]; !dup {
			c.byCode[concept.Code] = concept
		}
	}

	for _, problem := range problems {
		if problem.Ref == "" {
			continue
		}
		if _, dup := c.byRef[problem.Ref]; !dup {
			c.byRef[problem.Ref] = problem
		}
	}

	return c
}

func withoutNilConcepts(concepts []*models.Concept) []*models.Concept {
	out := make([]*models.Concept, 0, len(concepts))
	for _, concept := range concepts {
		if concept != nil {
			out = append(out, concept)
		}
	}
	return out
}

func withoutNilProblems(problems []*models.Problem) []*models.Problem {
	out := make([]*models.Problem, 0, len(problems))
	for _, problem := range problems {
		if problem != nil {
			out = append(out, problem)
		}
	}
	return out
}

// All returns every concept in source order, malformed entries included.
func (c *Catalog) All() []*models.Concept {
	return append([]*models.Concept{}, c.concepts...)
}

// Lookup resolves a concept by code, nil if absent.
func (c *Catalog) Lookup(code string) *models.Concept {
	return c.byCode[code]
}

// Problems returns every problem in source order.
func (c *Catalog) Problems() []*models.Problem {
	return append([]*models.Problem{}, c.problems...)
}

// ProblemByRef resolves a problem by its opaque reference, nil if absent.
func (c *Catalog) ProblemByRef(ref string) *models.Problem {
	return c.byRef[ref]
}

// ProblemsFor returns the problems that teach the given concept code.
func (c *Catalog) ProblemsFor(code string) []*models.Problem {
	var out []*models.Problem
	for _, p := range c.problems {
		for _, taught := range p.Teaches {
			if taught == code {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// PrerequisitesOf returns the direct prerequisite codes of a concept.
// Unknown concept codes have no prerequisites.
func (c *Catalog) PrerequisitesOf(code string) []string {
	concept := c.byCode[code]
	if concept == nil {
		return nil
	}
	return append([]string{}, concept.Prerequisites...)
}

// Recommended returns the teacher-recommended concept codes.
func (c *Catalog) Recommended() []string {
	return c.recommended
}

// MisconceptionPatterns returns the raw catalog misconception entries.
func (c *Catalog) MisconceptionPatterns() []models.MisconceptionPattern {
	return c.misconceptions
}

// catalogDocument is the YAML catalog file shape. Concepts and Problems
// are pointers so a missing section can be told apart from an empty one.
type catalogDocument struct {
	Concepts *[]*models.Concept `yaml:"concepts"`
	Problems *[]*models.Problem `yaml:"problems"`
	Teacher  struct {
		Recommended    []string                      `yaml:"recommended"`
		Misconceptions []models.MisconceptionPattern `yaml:"misconceptions"`
	} `yaml:"teacher"`
}

// ParseCatalogYAML builds a catalog from YAML bytes. A document without
// the concepts or problems entity kinds is a schema error: the process
// must not start against a catalog it cannot serve.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Schema("catalog is not valid YAML", err.Error())
	}

	if doc.Concepts == nil {
		return nil, errors.Schema("catalog is missing the concepts section", "")
	}
	if doc.Problems == nil {
		return nil, errors.Schema("catalog is missing the problems section", "")
	}

	return newCatalog(*doc.Concepts, *doc.Problems, doc.Teacher.Recommended, doc.Teacher.Misconceptions), nil
}

// LoadCatalogFromYAML reads and parses the catalog file at path.
func LoadCatalogFromYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Schema("catalog file is not readable", err.Error())
	}
	return ParseCatalogYAML(data)
}
