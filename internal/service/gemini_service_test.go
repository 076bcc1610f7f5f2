package service

import (
	"strings"
	"testing"

	"careerworld/internal/dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildAssessmentPrompt(t *testing.T) {
	prompt := buildAssessmentPrompt(
		map[string]dto.CategoryScoreDTO{
			"Communication": {Score: 10, Total: 20},
		},
		[]MissedAnswer{
			{Question: "How do you open a status update?", SelectedOption: "Chronological narration"},
		},
	)

	assert.Contains(t, prompt, "Communication: Scored 10.0 out of 20.0 (50%)")
	assert.Contains(t, prompt, "How do you open a status update?")
	assert.Contains(t, prompt, "Chronological narration")
	assert.Contains(t, prompt, "performance_report")
	assert.Contains(t, prompt, "course_suggestions")
}

func TestBuildAssessmentPrompt_ZeroTotalCategory(t *testing.T) {
	prompt := buildAssessmentPrompt(
		map[string]dto.CategoryScoreDTO{"Empty": {Score: 0, Total: 0}},
		nil,
	)

	// no division by zero: an unanswerable category reads as 0%
	assert.Contains(t, prompt, "Empty: Scored 0.0 out of 0.0 (0%)")
	assert.False(t, strings.Contains(prompt, "INCORRECTLY ANSWERED"), "no missed section without missed answers")
}

func TestResponseText_NilSafe(t *testing.T) {
	assert.Empty(t, responseText(nil))
}
