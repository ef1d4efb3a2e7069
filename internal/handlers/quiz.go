package handlers

import (
	"math/rand"
	"net/http"

	"github.com/samharre/trivia-api/internal/models"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	questions QuestionProvider
}

func NewQuizHandler(questions QuestionProvider) *QuizHandler {
	return &QuizHandler{questions: questions}
}

type QuizCategory struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
	PreviousQuestions []uint        `json:"previous_questions"`
}

type QuizResponse struct {
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// PlayQuiz godoc
// @Summary      Fetch a random question for a quiz round
// @Description  Picks uniformly among the questions of quiz_category (all
// @Description  categories when its id is 0) that are not listed in
// @Description  previous_questions. A null question means the quiz is over.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz round state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req QuizRequest
	if code := bindJSON(c, &req); code != 0 {
		abortWithError(c, code)
		return
	}

	candidates, err := h.questions.QuizCandidates(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	var question *models.Question
	if len(candidates) > 0 {
		question = &candidates[rand.Intn(len(candidates))]
	}

	c.JSON(http.StatusOK, QuizResponse{
		Success:  true,
		Question: question,
	})
}
