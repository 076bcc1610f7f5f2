package repository

import (
	"careerworld/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository interface {
	// CreateWithAnswers persists the assessment and its answer rows as one
	// unit. GORM wraps the association insert in a transaction, so no caller
	// can observe an assessment without its answers.
	CreateWithAnswers(assessment *model.Assessment) error
	FindAllByOwner(ownerID uint) ([]model.Assessment, error)
	FindByID(id uint) (*model.Assessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) CreateWithAnswers(assessment *model.Assessment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(assessment).Error
	})
}

func (r *assessmentRepository) FindAllByOwner(ownerID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.Preload("Answers").First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}
