package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"careerworld/config"
	"careerworld/internal/model"
	"careerworld/internal/repository"

	"github.com/rs/zerolog/log"
)

// ErrInvalidMagicLink covers every redemption failure: unknown token, already
// consumed, expired, malformed input. A single generic error prevents the
// endpoint from being used to enumerate tokens or accounts.
var ErrInvalidMagicLink = errors.New("invalid or expired magic link")

const tokenByteLen = 32 // 256 bits of entropy, base64url encoded

// MagicLinkService issues single-use login tokens and exchanges them for
// session credentials.
type MagicLinkService interface {
	// Issue creates a pending token for the email, mails the plaintext to the
	// user, and returns. The plaintext is never persisted or logged. Repeated
	// requests for the same email coexist; each is independently redeemable.
	Issue(ctx context.Context, email string) error
	// Redeem exchanges a plaintext token for a session credential. A token
	// redeems at most once: the claim is an atomic conditional update, so a
	// concurrent redemption of the same token fails on whichever side loses.
	Redeem(ctx context.Context, plaintext string) (string, error)
}

type magicLinkService struct {
	users    repository.UserRepository
	tokens   repository.MagicTokenRepository
	hasher   TokenHasher
	sessions SessionService
	mailer   EmailService
	linkTTL  time.Duration
}

func NewMagicLinkService(
	users repository.UserRepository,
	tokens repository.MagicTokenRepository,
	hasher TokenHasher,
	sessions SessionService,
	mailer EmailService,
	cfg *config.Config,
) MagicLinkService {
	return &magicLinkService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		sessions: sessions,
		mailer:   mailer,
		linkTTL:  cfg.Auth.MagicLinkTTL,
	}
}

func (s *magicLinkService) Issue(ctx context.Context, email string) error {
	if _, err := s.users.GetOrCreate(email); err != nil {
		log.Error().Err(err).Msg("Issue: failed to get or create user")
		return fmt.Errorf("failed to prepare user record: %w", err)
	}

	plaintext, err := generateToken()
	if err != nil {
		return fmt.Errorf("failed to generate magic link token: %w", err)
	}

	token := model.MagicToken{
		Email:       email,
		Fingerprint: s.hasher.Fingerprint(plaintext),
		ExpiresAt:   time.Now().Add(s.linkTTL),
		Consumed:    false,
	}
	if err := s.tokens.Create(&token); err != nil {
		log.Error().Err(err).Msg("Issue: failed to persist magic token")
		return fmt.Errorf("failed to store magic link token: %w", err)
	}

	// Delivery is best effort and must not hold up the request; the mailer
	// logs and swallows its own failures.
	go s.mailer.SendMagicLink(context.WithoutCancel(ctx), email, plaintext)

	log.Info().Str("email", email).Time("expires_at", token.ExpiresAt).Msg("Magic link issued")
	return nil
}

func (s *magicLinkService) Redeem(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrInvalidMagicLink
	}

	token, err := s.tokens.Consume(s.hasher.Fingerprint(plaintext), time.Now())
	if err != nil {
		// Not found, consumed and expired all collapse into the same answer.
		log.Warn().Msg("Redeem: magic link rejected")
		return "", ErrInvalidMagicLink
	}

	// First redemption may be the first time we see this user at all.
	if _, err := s.users.GetOrCreate(token.Email); err != nil {
		log.Error().Err(err).Msg("Redeem: failed to get or create user")
		return "", fmt.Errorf("failed to prepare user record: %w", err)
	}

	credential, err := s.sessions.Mint(token.Email)
	if err != nil {
		log.Error().Err(err).Msg("Redeem: failed to mint session credential")
		return "", fmt.Errorf("failed to mint session credential: %w", err)
	}

	log.Info().Str("email", token.Email).Msg("Magic link redeemed")
	return credential, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
