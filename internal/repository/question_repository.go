package repository

import (
	"careerworld/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByText(text string) (*model.Question, error)
	FindAllWithOptions(skip, limit int) ([]model.Question, error)
	FindOptionByID(id uint) (*model.Option, error)
	// MaxPoints returns the highest point value among a question's options,
	// i.e. the maximum attainable score for that question. Zero when the
	// question has no options.
	MaxPoints(questionID uint) (float64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	// GORM creates the associated options together with the question.
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByText(text string) (*model.Question, error) {
	var question model.Question
	if err := r.db.Where("text = ?", text).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAllWithOptions(skip, limit int) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("Options").Order("id ASC").Offset(skip).Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindOptionByID(id uint) (*model.Option, error) {
	var option model.Option
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *questionRepository) MaxPoints(questionID uint) (float64, error) {
	var max *float64
	err := r.db.Model(&model.Option{}).
		Select("MAX(points)").
		Where("question_id = ?", questionID).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}
