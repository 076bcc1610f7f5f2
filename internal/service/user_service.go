package service

import (
	"context"
	"errors"
	"fmt"

	"careerworld/internal/dto"
	"careerworld/internal/extract"
	"careerworld/internal/model"
	"careerworld/internal/repository"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

const resumeFallbackAnalysis = "We encountered an error analyzing your resume. The AI service may be temporarily unavailable."

// ErrUnsupportedDocument and ErrEmptyDocument are validation failures the
// client is told about directly; they carry no security sensitivity.
var (
	ErrUnsupportedDocument = extract.ErrUnsupportedFormat
	ErrEmptyDocument       = extract.ErrEmptyDocument
)

type UserService interface {
	Profile(userID uint) (*dto.UserResponseDTO, error)
	// UploadResume extracts text from the document, analyzes it, archives the
	// original, and stores text plus analysis on the user. Archival failure is
	// ignored; analysis failure degrades to a fixed fallback text.
	UploadResume(ctx context.Context, userID uint, filename string, contents []byte, mimeType string) (*dto.UserResponseDTO, error)
}

type userService struct {
	users      repository.UserRepository
	extractors *extract.Registry
	ai         AIService
	storage    StorageService
}

func NewUserService(
	users repository.UserRepository,
	extractors *extract.Registry,
	ai AIService,
	storage StorageService,
) UserService {
	return &userService{
		users:      users,
		extractors: extractors,
		ai:         ai,
		storage:    storage,
	}
}

func (s *userService) Profile(userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return toUserDTO(user)
}

func (s *userService) UploadResume(ctx context.Context, userID uint, filename string, contents []byte, mimeType string) (*dto.UserResponseDTO, error) {
	text, err := s.extractors.ExtractFile(filename, contents)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) || errors.Is(err, extract.ErrEmptyDocument) {
			return nil, err
		}
		log.Warn().Err(err).Str("filename", filename).Msg("UploadResume: extraction failed")
		return nil, extract.ErrEmptyDocument
	}

	analysis, err := s.ai.AnalyzeResume(ctx, text)
	if err != nil {
		log.Warn().Err(err).Msg("UploadResume: resume analysis failed, using fallback text")
		analysis = resumeFallbackAnalysis
	}

	// Archival is independent of analysis succeeding; a storage failure is
	// logged and dropped.
	if _, err := s.storage.UploadDocument(ctx, filename, contents, mimeType); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("UploadResume: document archival failed")
	}

	user, err := s.users.UpdateResume(userID, sanitizeText(text), sanitizeText(analysis))
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("UploadResume: failed to store resume data")
		return nil, fmt.Errorf("failed to store resume data: %w", err)
	}
	return toUserDTO(user)
}

func toUserDTO(user *model.User) (*dto.UserResponseDTO, error) {
	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
