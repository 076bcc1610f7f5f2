package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"careerworld/config"
	"careerworld/internal/dto"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const aiCallTimeout = 45 * time.Second

// FeedbackResult is what the feedback generator produces for one submission.
type FeedbackResult struct {
	Report      string                    `json:"performance_report"`
	Suggestions []dto.CourseSuggestionDTO `json:"course_suggestions"`
}

// AIService generates assessment feedback and resume critiques. Both calls
// may fail; callers are expected to substitute their fixed fallback text and
// carry on, never to surface the failure.
type AIService interface {
	GenerateAssessmentFeedback(ctx context.Context, categories map[string]dto.CategoryScoreDTO, missed []MissedAnswer) (*FeedbackResult, error)
	AnalyzeResume(ctx context.Context, resumeText string) (string, error)
}

type geminiService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiService(cfg *config.Config) (AIService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. AIService will be non-functional.")
		return &geminiService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiService{client: model, cfg: cfg}, nil
}

func buildAssessmentPrompt(categories map[string]dto.CategoryScoreDTO, missed []MissedAnswer) string {
	var b strings.Builder
	b.WriteString("You are an expert career coach. Based on the following job readiness assessment results, provide two things:\n")
	b.WriteString("1. A concise, encouraging, and actionable performance report in Markdown format. The report must include these sections: 'Overall Summary', 'Key Strengths', 'Areas for Improvement', and 'Action Plan'.\n")
	b.WriteString("2. A list of 3 course suggestions to address the user's weakest areas.\n\n")
	b.WriteString("Here is the user's performance data:\n--- PERFORMANCE BY CATEGORY ---\n")

	for category, data := range categories {
		percentage := 0.0
		if data.Total > 0 {
			percentage = data.Score / data.Total * 100
		}
		b.WriteString(fmt.Sprintf("- %s: Scored %.1f out of %.1f (%.0f%%)\n", category, data.Score, data.Total, percentage))
	}

	if len(missed) > 0 {
		b.WriteString("\n--- INCORRECTLY ANSWERED QUESTIONS ---\n")
		for _, item := range missed {
			b.WriteString(fmt.Sprintf("- Question: %s\n  - Selected Answer: %s\n", item.Question, item.SelectedOption))
		}
	}

	b.WriteString("\nReturn your response as a single JSON object with two keys: 'performance_report' (a string containing the Markdown report) and 'course_suggestions' (a list of JSON objects, where each object has 'course_name', 'platform', and 'reason' keys).")
	return b.String()
}

func (s *geminiService) GenerateAssessmentFeedback(ctx context.Context, categories map[string]dto.CategoryScoreDTO, missed []MissedAnswer) (*FeedbackResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	resp, err := s.client.GenerateContent(ctx, genai.Text(buildAssessmentPrompt(categories, missed)))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during assessment feedback")
		return nil, err
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, fmt.Errorf("gemini returned no text content")
	}

	// The model tends to wrap JSON output in markdown fences.
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	var result FeedbackResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse feedback JSON from Gemini response")
		return nil, fmt.Errorf("could not parse feedback response: %w", err)
	}
	if result.Suggestions == nil {
		result.Suggestions = []dto.CourseSuggestionDTO{}
	}
	return &result, nil
}

func (s *geminiService) AnalyzeResume(ctx context.Context, resumeText string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	prompt := fmt.Sprintf(`You are an expert resume reviewer for tech and business roles. Analyze the following resume text.
Provide a concise, actionable critique in Markdown format. The report must include these sections:
'Overall Impression', 'Strengths', 'Areas for Improvement', and 'Top 5 Keywords to Add'.

--- RESUME TEXT ---
%s
--- END RESUME TEXT ---

Generate the report now.`, resumeText)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during resume analysis")
		return "", err
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
