package handlers

import (
	"github.com/architect/geometry-tutor/internal/common/errors"
	"github.com/architect/geometry-tutor/internal/common/middleware"
	"github.com/architect/geometry-tutor/internal/tutor/models"
	"github.com/architect/geometry-tutor/internal/tutor/services"
	"github.com/gin-gonic/gin"
)

// ListConcepts returns every concept in the catalog
func ListConcepts(c *gin.Context) {
	c.JSON(200, services.ListConcepts())
}

// GetConcept returns a single concept by code
func GetConcept(c *gin.Context) {
	code := c.Param("code")

	concept, err := services.GetConcept(code)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, concept)
}

// ListProblems returns problems, optionally filtered by taught concept
func ListProblems(c *gin.Context) {
	conceptCode := c.Query("concept_code")
	c.JSON(200, services.ListProblems(conceptCode))
}

// UpdateStudentKnowledge replaces a student's known set and returns the
// stored set together with fresh recommendations
func UpdateStudentKnowledge(c *gin.Context) {
	var req models.UpdateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	response, err := services.UpdateKnowledge(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, response)
}

// GetRecommendations re-derives gap recommendations for a student
func GetRecommendations(c *gin.Context) {
	studentID := c.Param("student_id")

	response, err := services.Recommendations(studentID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, response)
}

// GetTeacherRecommendations returns the catalog-wide teacher report
func GetTeacherRecommendations(c *gin.Context) {
	studentID := c.Query("student_id")
	c.JSON(200, services.TeacherReport(studentID))
}

// CheckAnswer grades a submitted answer against a problem
func CheckAnswer(c *gin.Context) {
	var req models.CheckAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body: "+err.Error()))
		return
	}

	response, err := services.CheckAnswer(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, response)
}
