package service

import (
	"testing"

	"careerworld/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionFixture(text string) dto.QuestionCreateDTO {
	return dto.QuestionCreateDTO{
		Text:     text,
		Category: "Communication",
		Options: []dto.OptionCreateDTO{
			{Text: "Correct", Points: 10},
			{Text: "Wrong", Points: 0},
		},
	}
}

func TestCreateQuestion_PersistsWithOptions(t *testing.T) {
	repo := newFakeQuestionRepository()
	svc := NewAdminQuestionService(repo)

	resp, err := svc.CreateQuestion(questionFixture("How do you escalate a blocker?"))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "How do you escalate a blocker?", resp.Text)
	assert.Equal(t, "Communication", resp.Category)
	require.Len(t, resp.Options, 2)

	stored, err := repo.FindByText("How do you escalate a blocker?")
	require.NoError(t, err)
	maxPoints, err := repo.MaxPoints(stored.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, maxPoints)
}

func TestImport_SkipsExistingByText(t *testing.T) {
	repo := newFakeQuestionRepository()
	svc := NewAdminQuestionService(repo)

	_, err := svc.CreateQuestion(questionFixture("Existing question"))
	require.NoError(t, err)

	result, err := svc.Import(dto.QuestionImportDTO{Questions: []dto.QuestionCreateDTO{
		questionFixture("Existing question"),
		questionFixture("Brand new question"),
		questionFixture("Another new question"),
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Skipped)

	_, err = repo.FindByText("Brand new question")
	assert.NoError(t, err)
}

func TestImport_Rerunnable(t *testing.T) {
	repo := newFakeQuestionRepository()
	svc := NewAdminQuestionService(repo)

	batch := dto.QuestionImportDTO{Questions: []dto.QuestionCreateDTO{
		questionFixture("Q one"),
		questionFixture("Q two"),
	}}

	first, err := svc.Import(batch)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 0, first.Skipped)

	second, err := svc.Import(batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
}
