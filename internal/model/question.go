package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Category  string         `json:"category" gorm:"not null;index"` // e.g. "Communication", "Problem Solving"
	Options   []Option       `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Option is one selectable answer. The option carrying the question's maximum
// point value is the "correct" choice; the others carry zero.
type Option struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	Points     float64        `json:"points" gorm:"not null;default:0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
