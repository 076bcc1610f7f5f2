package dto

// OptionCreateDTO is used within QuestionCreateDTO for admin ingestion.
type OptionCreateDTO struct {
	Text   string  `json:"text" binding:"required"`
	Points float64 `json:"points" binding:"gte=0"`
}

// QuestionCreateDTO creates one question with all of its options. Exactly one
// option is expected to carry the question's full point value.
type QuestionCreateDTO struct {
	Text     string            `json:"text" binding:"required"`
	Category string            `json:"category" binding:"required"`
	Options  []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
}

// QuestionImportDTO bulk-loads questions; entries whose text already exists
// are skipped rather than duplicated.
type QuestionImportDTO struct {
	Questions []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

type ImportResultDTO struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
