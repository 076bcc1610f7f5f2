package repository

import (
	"careerworld/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	// GetOrCreate looks up a user by email and creates the row if missing.
	// Login and signup collapse into this single step.
	GetOrCreate(email string) (*model.User, error)
	UpdateResume(userID uint, text string, analysis string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetOrCreate(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where(model.User{Email: email}).FirstOrCreate(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateResume(userID uint, text string, analysis string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	user.ResumeText = &text
	user.ResumeAnalysis = &analysis
	if err := r.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
