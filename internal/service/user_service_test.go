package service

import (
	"context"
	"errors"
	"testing"

	"careerworld/internal/dto"
	"careerworld/internal/extract"
	"careerworld/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resumeAIStub answers resume analysis only; feedback generation is not part
// of the upload pipeline.
type resumeAIStub struct {
	analysis string
	err      error
}

func (s *resumeAIStub) GenerateAssessmentFeedback(ctx context.Context, categories map[string]dto.CategoryScoreDTO, missed []MissedAnswer) (*FeedbackResult, error) {
	return nil, errors.New("not implemented")
}

func (s *resumeAIStub) AnalyzeResume(ctx context.Context, resumeText string) (string, error) {
	return s.analysis, s.err
}

type stubStorage struct {
	uploads []string
	err     error
}

func (s *stubStorage) UploadDocument(ctx context.Context, filename string, contents []byte, mimeType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads = append(s.uploads, filename)
	return "https://storage.local/resumes/" + filename, nil
}

func newUserFixture(ai AIService, storage StorageService) (UserService, *model.User) {
	users := newFakeUserRepository()
	user, _ := users.GetOrCreate("alice@example.com")
	svc := NewUserService(users, extract.NewRegistry(), ai, storage)
	return svc, user
}

func TestUploadResume_StoresTextAndAnalysis(t *testing.T) {
	storage := &stubStorage{}
	svc, user := newUserFixture(&resumeAIStub{analysis: "Solid resume."}, storage)

	resp, err := svc.UploadResume(context.Background(), user.ID, "resume.txt", []byte("Go engineer, 8 years."), "text/plain")
	require.NoError(t, err)

	require.NotNil(t, resp.ResumeText)
	assert.Equal(t, "Go engineer, 8 years.", *resp.ResumeText)
	require.NotNil(t, resp.ResumeAnalysis)
	assert.Equal(t, "Solid resume.", *resp.ResumeAnalysis)
	assert.Equal(t, []string{"resume.txt"}, storage.uploads)
}

func TestUploadResume_UnsupportedFormat(t *testing.T) {
	svc, user := newUserFixture(&resumeAIStub{}, &stubStorage{})

	_, err := svc.UploadResume(context.Background(), user.ID, "resume.exe", []byte("binary"), "application/octet-stream")
	assert.ErrorIs(t, err, ErrUnsupportedDocument)
}

func TestUploadResume_EmptyDocument(t *testing.T) {
	svc, user := newUserFixture(&resumeAIStub{}, &stubStorage{})

	_, err := svc.UploadResume(context.Background(), user.ID, "resume.txt", []byte("   "), "text/plain")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestUploadResume_AnalysisFailureFallsBack(t *testing.T) {
	svc, user := newUserFixture(&resumeAIStub{err: errors.New("model unavailable")}, &stubStorage{})

	resp, err := svc.UploadResume(context.Background(), user.ID, "resume.txt", []byte("Go engineer."), "text/plain")
	require.NoError(t, err, "a failing analyzer must not fail the upload")

	require.NotNil(t, resp.ResumeAnalysis)
	assert.Equal(t, resumeFallbackAnalysis, *resp.ResumeAnalysis)
	require.NotNil(t, resp.ResumeText)
	assert.Equal(t, "Go engineer.", *resp.ResumeText)
}

func TestUploadResume_ArchivalFailureIgnored(t *testing.T) {
	svc, user := newUserFixture(&resumeAIStub{analysis: "Solid."}, &stubStorage{err: errors.New("bucket gone")})

	resp, err := svc.UploadResume(context.Background(), user.ID, "resume.txt", []byte("Go engineer."), "text/plain")
	require.NoError(t, err, "archival failure must not fail the upload")
	require.NotNil(t, resp.ResumeText)
}

func TestProfile_ReturnsUser(t *testing.T) {
	svc, user := newUserFixture(&resumeAIStub{}, &stubStorage{})

	resp, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestProfile_UnknownUser(t *testing.T) {
	svc, _ := newUserFixture(&resumeAIStub{}, &stubStorage{})

	_, err := svc.Profile(999)
	assert.Error(t, err)
}
