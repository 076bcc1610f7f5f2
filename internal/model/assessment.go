package model

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is one scored submission. OwnerID is nullable so anonymous
// submissions remain representable. Report and Suggestions hold the
// AI-generated feedback (suggestions are a serialized JSON list).
type Assessment struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OwnerID     *uint          `json:"owner_id,omitempty" gorm:"index"`
	Score       float64        `json:"score" gorm:"not null"`
	Report      string         `json:"report,omitempty" gorm:"type:text"`
	Suggestions string         `json:"suggestions,omitempty" gorm:"type:text"`
	Answers     []Answer       `json:"answers,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Answer records the option a user selected for a question. Rows are created
// together with their parent Assessment and never updated afterwards.
type Answer struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	AssessmentID     uint      `json:"assessment_id" gorm:"not null;index"`
	QuestionID       uint      `json:"question_id" gorm:"not null;index"`
	SelectedOptionID uint      `json:"selected_option_id" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
}
