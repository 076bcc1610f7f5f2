package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Email          string         `json:"email" gorm:"not null;uniqueIndex"`
	ResumeText     *string        `json:"resume_text,omitempty" gorm:"type:text"`
	ResumeAnalysis *string        `json:"resume_analysis,omitempty" gorm:"type:text"`
	Assessments    []Assessment   `json:"assessments,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
