package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/samharre/trivia-api/internal/models"
	"github.com/samharre/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionProvider interface {
	ListQuestions() ([]models.Question, error)
	GetQuestion(id uint) (*models.Question, error)
	CreateQuestion(question *models.Question) error
	DeleteQuestion(question *models.Question) error
	SearchQuestions(term string) ([]models.Question, error)
	QuestionsByCategory(categoryID uint) ([]models.Question, error)
	QuizCandidates(categoryID uint, exclude []uint) ([]models.Question, error)
}

type QuestionHandler struct {
	categories CategoryProvider
	questions  QuestionProvider
}

func NewQuestionHandler(categories CategoryProvider, questions QuestionProvider) *QuestionHandler {
	return &QuestionHandler{categories: categories, questions: questions}
}

type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"required"`
	Category   uint   `json:"category" binding:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required"`
}

type QuestionsPageResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	Categories      map[uint]string   `json:"categories"`
	CurrentCategory *uint             `json:"current_category"`
}

type SearchQuestionsResponse struct {
	Success         bool              `json:"success"`
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int               `json:"total_questions"`
	CurrentCategory *uint             `json:"current_category"`
}

type QuestionIDResponse struct {
	Success    bool `json:"success"`
	QuestionID uint `json:"question_id"`
}

// GetQuestions godoc
// @Summary      List questions, paginated ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "1-based page number" default(1)
// @Success      200 {object} QuestionsPageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	categories, err := h.categories.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	questions, err := h.questions.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	current := paginateQuestions(c, questions)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, QuestionsPageResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      categoryMap(categories),
		CurrentCategory: nil,
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} QuestionIDResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if code := bindJSON(c, &req); code != 0 {
		abortWithError(c, code)
		return
	}

	question := models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		CategoryID: req.Category,
	}
	if err := h.questions.CreateQuestion(&question); err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{
		Success:    true,
		QuestionID: question.ID,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} QuestionIDResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	// A missing question is a 422 here, not a 404. The client contract has
	// always distinguished "no such resource path" from "nothing to delete".
	question, err := h.questions.GetQuestion(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			abortWithError(c, http.StatusUnprocessableEntity)
		} else {
			abortWithError(c, http.StatusInternalServerError)
		}
		return
	}

	if err := h.questions.DeleteQuestion(question); err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, QuestionIDResponse{
		Success:    true,
		QuestionID: question.ID,
	})
}

// SearchQuestions godoc
// @Summary      Search questions by a case-insensitive substring
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} SearchQuestionsResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if code := bindJSON(c, &req); code != 0 {
		abortWithError(c, code)
		return
	}

	questions, err := h.questions.SearchQuestions(req.SearchTerm)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}

	// An empty match set is a success, not a 404.
	c.JSON(http.StatusOK, SearchQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}
