package dto

import "time"

// OptionResponseDTO deliberately omits point values so the catalog endpoint
// cannot be used to read off the correct answers.
type OptionResponseDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionResponseDTO struct {
	ID       uint                `json:"id"`
	Text     string              `json:"text"`
	Category string              `json:"category"`
	Options  []OptionResponseDTO `json:"options,omitempty"`
}

// AnswerSubmitDTO is one (question, selected option) pair within a submission.
type AnswerSubmitDTO struct {
	QuestionID       uint `json:"question_id" binding:"required"`
	SelectedOptionID uint `json:"selected_option_id" binding:"required"`
}

type AssessmentSubmitDTO struct {
	Answers []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// CategoryScoreDTO is the achieved vs. attainable score for one category.
type CategoryScoreDTO struct {
	Score float64 `json:"score"`
	Total float64 `json:"total"`
}

type CourseSuggestionDTO struct {
	CourseName string `json:"course_name"`
	Platform   string `json:"platform"`
	Reason     string `json:"reason"`
}

type AssessmentResponseDTO struct {
	ID          uint                        `json:"id"`
	OwnerID     *uint                       `json:"owner_id,omitempty"`
	Score       float64                     `json:"score"`
	Report      string                      `json:"report,omitempty"`
	Suggestions []CourseSuggestionDTO       `json:"suggestions"`
	Categories  map[string]CategoryScoreDTO `json:"categories,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
}

type AssessmentSummaryDTO struct {
	ID        uint      `json:"id"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
