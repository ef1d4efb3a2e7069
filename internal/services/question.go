package services

import (
	"errors"

	"github.com/samharre/trivia-api/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

func (s *QuestionService) ListQuestions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) GetQuestion(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) CreateQuestion(question *models.Question) error {
	return s.db.Create(question).Error
}

func (s *QuestionService) DeleteQuestion(question *models.Question) error {
	return s.db.Delete(question).Error
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text.
func (s *QuestionService) SearchQuestions(term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("question ILIKE ?", "%"+term+"%").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *QuestionService) QuestionsByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category_id = ?", categoryID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// QuizCandidates returns the questions still available to a quiz round. A
// categoryID of 0 means no category filter.
func (s *QuestionService) QuizCandidates(categoryID uint, exclude []uint) ([]models.Question, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
