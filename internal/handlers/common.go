package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/samharre/trivia-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const questionsPerPage = 10

// ErrorResponse is the uniform failure envelope. Every failure path of every
// endpoint, including router-level 404/405, responds with exactly this shape.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Resource not found"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusNotFound:            "Resource not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal server error",
}

func abortWithError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: statusMessages[code],
	})
}

// NotFound and MethodNotAllowed are wired as the router's NoRoute/NoMethod
// handlers so that routing misses speak the same envelope as the handlers.
func NotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// bindJSON decodes the request body into dst and maps failures onto the API
// error codes: an absent or unparsable body is a 400, a body that parses but
// fails field validation is a 422. Returns 0 on success.
func bindJSON(c *gin.Context, dst any) int {
	if err := c.ShouldBindJSON(dst); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadRequest
	}
	return 0
}

// paginateQuestions slices questions for the 1-based "page" query parameter,
// questionsPerPage at a time. Values that fail to parse fall back to page 1.
func paginateQuestions(c *gin.Context, questions []models.Question) []models.Question {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	start := (page - 1) * questionsPerPage
	if start >= len(questions) {
		return nil
	}
	end := start + questionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Type
	}
	return m
}
