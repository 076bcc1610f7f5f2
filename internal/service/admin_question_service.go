package service

import (
	"fmt"

	"careerworld/internal/dto"
	"careerworld/internal/model"
	"careerworld/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminQuestionService handles question ingestion.
type AdminQuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	// Import bulk-loads questions, skipping any whose text already exists.
	Import(req dto.QuestionImportDTO) (*dto.ImportResultDTO, error)
}

type adminQuestionService struct {
	questions repository.QuestionRepository
}

func NewAdminQuestionService(questions repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{questions: questions}
}

func (s *adminQuestionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question := model.Question{
		Text:     req.Text,
		Category: req.Category,
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.Option{
			Text:   opt.Text,
			Points: opt.Points,
		})
	}

	if err := s.questions.Create(&question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	var resp dto.QuestionResponseDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing question response: %w", err)
	}
	return &resp, nil
}

func (s *adminQuestionService) Import(req dto.QuestionImportDTO) (*dto.ImportResultDTO, error) {
	result := dto.ImportResultDTO{}
	for _, entry := range req.Questions {
		if _, err := s.questions.FindByText(entry.Text); err == nil {
			result.Skipped++
			continue
		}
		if _, err := s.CreateQuestion(entry); err != nil {
			return nil, fmt.Errorf("import failed after %d created: %w", result.Created, err)
		}
		result.Created++
	}
	log.Info().Int("created", result.Created).Int("skipped", result.Skipped).Msg("Question import finished")
	return &result, nil
}
