package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerworld/internal/dto"
	"careerworld/internal/model"
	"careerworld/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// fallbackReport replaces the AI feedback whenever generation fails; the
// submission itself still succeeds.
const fallbackReport = "We encountered an error generating your personalized feedback. The AI service may be temporarily unavailable."

// AssessmentService runs the submission pipeline and serves history.
type AssessmentService interface {
	Submit(ctx context.Context, owner *model.User, req dto.AssessmentSubmitDTO) (*dto.AssessmentResponseDTO, error)
	History(ownerID uint) ([]dto.AssessmentSummaryDTO, error)
}

type assessmentService struct {
	scoring     ScoringService
	ai          AIService
	mailer      EmailService
	assessments repository.AssessmentRepository
}

func NewAssessmentService(
	scoring ScoringService,
	ai AIService,
	mailer EmailService,
	assessments repository.AssessmentRepository,
) AssessmentService {
	return &assessmentService{
		scoring:     scoring,
		ai:          ai,
		mailer:      mailer,
		assessments: assessments,
	}
}

// Submit scores the answers, asks the feedback generator for a report, mails
// the report, and persists the assessment with its answers in one
// transaction. Feedback and email are best effort: a failing generator yields
// the fallback report and empty suggestions, a failing mailer is logged only.
// Only a storage failure fails the submission.
func (s *assessmentService) Submit(ctx context.Context, owner *model.User, req dto.AssessmentSubmitDTO) (*dto.AssessmentResponseDTO, error) {
	result, err := s.scoring.Score(req.Answers)
	if err != nil {
		log.Error().Err(err).Msg("Submit: scoring failed")
		return nil, fmt.Errorf("failed to score submission: %w", err)
	}

	feedback, err := s.ai.GenerateAssessmentFeedback(ctx, result.Categories, result.Missed)
	if err != nil {
		log.Warn().Err(err).Msg("Submit: feedback generation failed, using fallback report")
		feedback = &FeedbackResult{
			Report:      fallbackReport,
			Suggestions: []dto.CourseSuggestionDTO{},
		}
	}

	report := sanitizeText(feedback.Report)

	suggestionsJSON, err := json.Marshal(feedback.Suggestions)
	if err != nil {
		log.Error().Err(err).Msg("Submit: failed to serialize course suggestions")
		suggestionsJSON = []byte("[]")
	}

	go s.mailer.SendAssessmentReport(context.WithoutCancel(ctx), owner.Email, report, result.Total)

	assessment := model.Assessment{
		OwnerID:     &owner.ID,
		Score:       result.Total,
		Report:      report,
		Suggestions: string(suggestionsJSON),
	}
	for _, answer := range req.Answers {
		assessment.Answers = append(assessment.Answers, model.Answer{
			QuestionID:       answer.QuestionID,
			SelectedOptionID: answer.SelectedOptionID,
		})
	}

	if err := s.assessments.CreateWithAnswers(&assessment); err != nil {
		log.Error().Err(err).Msg("Submit: failed to persist assessment")
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	return &dto.AssessmentResponseDTO{
		ID:          assessment.ID,
		OwnerID:     assessment.OwnerID,
		Score:       assessment.Score,
		Report:      assessment.Report,
		Suggestions: feedback.Suggestions,
		Categories:  result.Categories,
		CreatedAt:   assessment.CreatedAt,
	}, nil
}

func (s *assessmentService) History(ownerID uint) ([]dto.AssessmentSummaryDTO, error) {
	assessments, err := s.assessments.FindAllByOwner(ownerID)
	if err != nil {
		log.Error().Err(err).Uint("ownerID", ownerID).Msg("History: failed to list assessments")
		return nil, fmt.Errorf("error fetching assessment history: %w", err)
	}

	dtos := make([]dto.AssessmentSummaryDTO, 0, len(assessments))
	for _, assessment := range assessments {
		var summary dto.AssessmentSummaryDTO
		if err := copier.Copy(&summary, &assessment); err != nil {
			log.Error().Err(err).Uint("assessmentID", assessment.ID).Msg("History: error copying assessment to summary DTO")
			continue
		}
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

// sanitizeText strips NUL bytes, which Postgres text columns reject.
func sanitizeText(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
