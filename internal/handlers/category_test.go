package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/samharre/trivia-api/internal/models"
	"github.com/samharre/trivia-api/internal/services"

	"github.com/stretchr/testify/assert"
)

// --- Mock Repository ---

type MockCategoryRepo struct {
	Categories []models.Category
	ListErr    error
	GetErr     error
}

func (m *MockCategoryRepo) ListCategories() ([]models.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Categories, nil
}

func (m *MockCategoryRepo) GetCategory(id uint) (*models.Category, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, c := range m.Categories {
		if c.ID == id {
			category := c
			return &category, nil
		}
	}
	return nil, services.ErrCategoryNotFound
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

func newCategoryRouter(categories CategoryProvider, questions QuestionProvider) http.Handler {
	h := NewCategoryHandler(categories, questions)
	r := newRouter()
	r.GET("/categories", h.GetCategories)
	r.GET("/categories/:id/questions", h.GetCategoryQuestions)
	return r
}

// --- Tests: GET /categories ---

func TestGetCategories(t *testing.T) {
	testCases := []struct {
		name           string
		categoriesRepo *MockCategoryRepo
		checkResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "all categories are returned keyed by id",
			categoriesRepo: &MockCategoryRepo{Categories: seedCategories()},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var resp CategoriesResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Len(t, resp.Categories, 6)
				assert.Equal(t, "Science", resp.Categories[1])
				assert.Equal(t, "Sports", resp.Categories[6])
			},
		},
		{
			name:           "empty table is still a success",
			categoriesRepo: &MockCategoryRepo{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var resp CategoriesResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Len(t, resp.Categories, 0)
			},
		},
		{
			name:           "repository error is a 500",
			categoriesRepo: &MockCategoryRepo{ListErr: errors.New("db down")},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				checkErrorEnvelope(t, rec, http.StatusInternalServerError, "internal server error")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newCategoryRouter(tc.categoriesRepo, &MockQuestionRepo{})
			rec := performRequest(r, "GET", "/categories", "")
			tc.checkResponse(t, rec)
		})
	}
}

// --- Tests: GET /categories/{id}/questions ---

func TestGetCategoryQuestions(t *testing.T) {
	testCases := []struct {
		name          string
		url           string
		questionsRepo *MockQuestionRepo
		checkResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:          "questions of the category are returned",
			url:           "/categories/1/questions",
			questionsRepo: &MockQuestionRepo{SourceQuestions: seedQuestions()},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var resp CategoryQuestionsResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Len(t, resp.Questions, 3)
				assert.Equal(t, 3, resp.TotalQuestions)
				assert.Equal(t, uint(1), resp.CurrentCategory)
				for _, q := range resp.Questions {
					assert.Equal(t, uint(1), q.CategoryID)
				}
			},
		},
		{
			name:          "category without questions is an empty success",
			url:           "/categories/2/questions",
			questionsRepo: &MockQuestionRepo{},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				var resp CategoryQuestionsResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.Len(t, resp.Questions, 0)
				assert.Equal(t, 0, resp.TotalQuestions)
				assert.Equal(t, uint(2), resp.CurrentCategory)
			},
		},
		{
			name:          "unknown category is a 404",
			url:           "/categories/100/questions",
			questionsRepo: &MockQuestionRepo{SourceQuestions: seedQuestions()},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				checkErrorEnvelope(t, rec, http.StatusNotFound, "resource not found")
			},
		},
		{
			name:          "non-numeric id is a 404",
			url:           "/categories/abc/questions",
			questionsRepo: &MockQuestionRepo{SourceQuestions: seedQuestions()},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				checkErrorEnvelope(t, rec, http.StatusNotFound, "resource not found")
			},
		},
		{
			name: "repository error is a 500",
			url:  "/categories/1/questions",
			questionsRepo: &MockQuestionRepo{
				SourceQuestions: seedQuestions(),
				ByCategoryErr:   errors.New("db down"),
			},
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				checkErrorEnvelope(t, rec, http.StatusInternalServerError, "internal server error")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newCategoryRouter(&MockCategoryRepo{Categories: seedCategories()}, tc.questionsRepo)
			rec := performRequest(r, "GET", tc.url, "")
			tc.checkResponse(t, rec)
		})
	}
}
