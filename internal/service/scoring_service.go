package service

import (
	"careerworld/internal/dto"
	"careerworld/internal/repository"

	"github.com/rs/zerolog/log"
)

// MissedAnswer is a question answered for zero points, fed to the feedback
// generator as an "incorrect answer". Valid as a proxy for "not the correct
// choice" as long as exactly one option per question carries non-zero value.
type MissedAnswer struct {
	Question       string `json:"question"`
	SelectedOption string `json:"selected_option"`
}

// ScoreResult is the aggregate of one submission: total points, the
// per-category breakdown, and the zero-point answers.
type ScoreResult struct {
	Total      float64
	Categories map[string]dto.CategoryScoreDTO
	Missed     []MissedAnswer
}

// ScoringService rolls submitted answers up into a ScoreResult.
type ScoringService interface {
	Score(answers []dto.AnswerSubmitDTO) (*ScoreResult, error)
}

type scoringService struct {
	questions repository.QuestionRepository
}

func NewScoringService(questions repository.QuestionRepository) ScoringService {
	return &scoringService{questions: questions}
}

// Score resolves each (question, option) pair and aggregates. A dangling
// question or option reference is a data-integrity anomaly: it is logged and
// that answer is skipped, but the rest of the submission still scores.
//
// Category totals count each distinct question once. The question contributes
// its maximum option value regardless of which option was selected, so
// Categories[c].Total is the attainable ceiling for what was answered in c.
func (s *scoringService) Score(answers []dto.AnswerSubmitDTO) (*ScoreResult, error) {
	result := &ScoreResult{
		Categories: make(map[string]dto.CategoryScoreDTO),
		Missed:     []MissedAnswer{},
	}
	counted := make(map[uint]bool)

	for _, answer := range answers {
		option, err := s.questions.FindOptionByID(answer.SelectedOptionID)
		if err != nil {
			log.Warn().Err(err).Uint("optionID", answer.SelectedOptionID).Msg("Score: selected option not found, skipping answer")
			continue
		}
		question, err := s.questions.FindByID(answer.QuestionID)
		if err != nil {
			log.Warn().Err(err).Uint("questionID", answer.QuestionID).Msg("Score: question not found, skipping answer")
			continue
		}

		result.Total += option.Points

		entry := result.Categories[question.Category]
		entry.Score += option.Points
		if !counted[question.ID] {
			counted[question.ID] = true
			maxPoints, err := s.questions.MaxPoints(question.ID)
			if err != nil {
				log.Error().Err(err).Uint("questionID", question.ID).Msg("Score: failed to resolve max points")
				return nil, err
			}
			entry.Total += maxPoints
		}
		result.Categories[question.Category] = entry

		if option.Points == 0 {
			result.Missed = append(result.Missed, MissedAnswer{
				Question:       question.Text,
				SelectedOption: option.Text,
			})
		}
	}

	return result, nil
}
