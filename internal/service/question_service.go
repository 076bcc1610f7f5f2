package service

import (
	"fmt"

	"careerworld/internal/dto"
	"careerworld/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuestionService serves the public assessment catalog.
type QuestionService interface {
	Questions(skip, limit int) ([]dto.QuestionResponseDTO, error)
}

type questionService struct {
	questions repository.QuestionRepository
}

func NewQuestionService(questions repository.QuestionRepository) QuestionService {
	return &questionService{questions: questions}
}

func (s *questionService) Questions(skip, limit int) ([]dto.QuestionResponseDTO, error) {
	questions, err := s.questions.FindAllWithOptions(skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Questions: failed to list questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionResponseDTO, 0, len(questions))
	for _, question := range questions {
		var resp dto.QuestionResponseDTO
		if err := copier.Copy(&resp, &question); err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("Questions: error copying question to DTO")
			continue
		}
		dtos = append(dtos, resp)
	}
	return dtos, nil
}
