package main

import (
	"flag"
	"log"
	"strings"

	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	DBType  string // "sqlite" or "postgres"
	DBPath  string // For SQLite
	ConnStr string // For PostgreSQL
}

var config Config

func init() {
	flag.StringVar(&config.DBType, "db-type", "sqlite", "Database type: sqlite or postgres")
	flag.StringVar(&config.DBPath, "output", "./data/geometry_tutor.db", "SQLite database path")
	flag.StringVar(&config.ConnStr, "conn", "host=localhost port=5432 user=postgres password=postgres dbname=geometry_tutor sslmode=disable", "PostgreSQL DSN")
}

type seedConcept struct {
	code          string
	label         string
	description   string
	difficulty    int
	ksLevel       int
	prerequisites []string
}

type seedProblem struct {
	label         string
	text          string
	correctAnswer string
	teaches       []string
	hints         []string
}

var concepts = []seedConcept{
	{"C_POINT", "Point", "A location with no size.", 1, 1, nil},
	{"C_LINE", "Line", "A straight path extending in both directions.", 1, 1, []string{"C_POINT"}},
	{"C_ANGLE", "Angle", "Two rays sharing a common endpoint.", 2, 1, []string{"C_LINE"}},
	{"C_RIGHT_ANGLE", "Right Angle", "An angle of exactly 90 degrees.", 2, 2, []string{"C_ANGLE"}},
	{"C_TRIANGLE", "Triangle", "A polygon with three sides.", 3, 2, []string{"C_LINE", "C_ANGLE"}},
	{"C_RIGHT_TRIANGLE", "Right Triangle", "A triangle containing a right angle.", 3, 2, []string{"C_TRIANGLE", "C_RIGHT_ANGLE"}},
	{"C_PYTHAGORAS", "Pythagorean Theorem", "Relates the side lengths of a right triangle.", 4, 3, []string{"C_RIGHT_TRIANGLE"}},
	{"C_CIRCLE", "Circle", "All points equidistant from a center.", 2, 2, []string{"C_POINT"}},
	{"C_AREA", "Area", "The measure of a bounded surface.", 3, 2, []string{"C_TRIANGLE", "C_CIRCLE"}},
}

var problems = []seedProblem{
	{
		label:         "Name the angle",
		text:          "What kind of angle measures exactly 90 degrees?",
		correctAnswer: "Right Angle",
		teaches:       []string{"C_RIGHT_ANGLE"},
		hints:         []string{"C_ANGLE"},
	},
	{
		label:         "Triangle sides",
		text:          "How many sides does a triangle have?",
		correctAnswer: "3",
		teaches:       []string{"C_TRIANGLE"},
		hints:         []string{"C_LINE"},
	},
	{
		label:         "Hypotenuse",
		text:          "In a right triangle with legs 3 and 4, how long is the hypotenuse?",
		correctAnswer: "5",
		teaches:       []string{"C_PYTHAGORAS"},
		hints:         []string{"C_RIGHT_TRIANGLE"},
	},
	{
		label:         "Circle center",
		text:          "What do we call the point all points of a circle are equidistant from?",
		correctAnswer: "Center",
		teaches:       []string{"C_CIRCLE"},
		hints:         []string{"C_POINT"},
	},
}

var recommended = []string{"C_ANGLE", "C_TRIANGLE"}

var misconceptions = []models.MisconceptionPatternRow{
	{ConceptCode: "C_RIGHT_ANGLE", Message: ""},
	{ConceptCode: "C_PYTHAGORAS", Message: "Students often apply the theorem to triangles without a right angle."},
}

func main() {
	flag.Parse()

	db, err := connectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Seeding geometry catalog...")

	if err := db.AutoMigrate(
		&models.ConceptRow{},
		&models.ProblemRow{},
		&models.TeacherRecommendationRow{},
		&models.MisconceptionPatternRow{},
	); err != nil {
		log.Fatalf("Failed to migrate catalog schema: %v", err)
	}

	for _, c := range concepts {
		desc := c.description
		diff := c.difficulty
		ks := c.ksLevel
		row := models.ConceptRow{
			Code:          c.code,
			Label:         c.label,
			Description:   &desc,
			Difficulty:    &diff,
			KSLevel:       &ks,
			Prerequisites: strings.Join(c.prerequisites, ","),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("Failed to seed concept %s: %v", c.code, err)
		}
	}
	log.Printf("Created %d concepts", len(concepts))

	for _, p := range problems {
		row := models.ProblemRow{
			Ref:           "prob-" + uuid.NewString(),
			Label:         p.label,
			Text:          p.text,
			CorrectAnswer: p.correctAnswer,
			Teaches:       strings.Join(p.teaches, ","),
			Hints:         strings.Join(p.hints, ","),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Fatalf("Failed to seed problem %q: %v", p.label, err)
		}
	}
	log.Printf("Created %d problems", len(problems))

	for _, code := range recommended {
		if err := db.Create(&models.TeacherRecommendationRow{ConceptCode: code}).Error; err != nil {
			log.Fatalf("Failed to seed teacher recommendation %s: %v", code, err)
		}
	}
	for i := range misconceptions {
		if err := db.Create(&misconceptions[i]).Error; err != nil {
			log.Fatalf("Failed to seed misconception pattern: %v", err)
		}
	}
	log.Printf("Created %d teacher recommendations and %d misconception patterns", len(recommended), len(misconceptions))

	log.Println("Done.")
}

func connectDB() (*gorm.DB, error) {
	if config.DBType == "postgres" {
		return gorm.Open(postgres.Open(config.ConnStr), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
}
