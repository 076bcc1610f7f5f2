package dto

import "time"

type UserResponseDTO struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	ResumeText     *string   `json:"resume_text,omitempty"`
	ResumeAnalysis *string   `json:"resume_analysis,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
