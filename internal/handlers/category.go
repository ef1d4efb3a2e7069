package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/samharre/trivia-api/internal/models"
	"github.com/samharre/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryProvider interface {
	ListCategories() ([]models.Category, error)
	GetCategory(id uint) (*models.Category, error)
}

type CategoryHandler struct {
	categories CategoryProvider
	questions  QuestionProvider
}

func NewCategoryHandler(categories CategoryProvider, questions QuestionProvider) *CategoryHandler {
	return &CategoryHandler{categories: categories, questions: questions}
}

type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

type CategoryQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory uint              `json:"current_category"`
}

// GetCategories godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: categoryMap(categories),
	})
}

// GetCategoryQuestions godoc
// @Summary      List all questions of a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	category, err := h.categories.GetCategory(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			abortWithError(c, http.StatusNotFound)
		} else {
			abortWithError(c, http.StatusInternalServerError)
		}
		return
	}

	questions, err := h.questions.QuestionsByCategory(category.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.ID,
	})
}
