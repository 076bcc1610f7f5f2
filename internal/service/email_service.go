package service

import (
	"context"
	"fmt"
	"strings"

	"careerworld/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// EmailService delivers the magic-link and report mails. Both sends are fire
// and forget: failures are logged, never returned to the business flow.
type EmailService interface {
	SendMagicLink(ctx context.Context, email string, plaintext string)
	SendAssessmentReport(ctx context.Context, email string, report string, score float64)
}

type emailService struct {
	cfg *config.Email
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{cfg: &cfg.Email}
}

func (s *emailService) configured() bool {
	return s.cfg.SMTPHost != "" && s.cfg.From != ""
}

func (s *emailService) SendMagicLink(ctx context.Context, email string, plaintext string) {
	if !s.configured() {
		log.Warn().Msg("Email config missing, skipping magic link delivery")
		return
	}
	if strings.TrimSpace(email) == "" {
		log.Warn().Msg("Empty recipient, skipping magic link delivery")
		return
	}

	link := fmt.Sprintf("%s?token=%s", s.cfg.LinkBase, plaintext)
	body := fmt.Sprintf(
		"<p>Click the link below to sign in. It is valid for a short time and works exactly once.</p><p><a href=%q>Sign in</a></p>",
		link,
	)

	if err := s.send(email, "Your sign-in link", body); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to send magic link email")
		return
	}
	log.Info().Str("email", email).Msg("Magic link email sent")
}

func (s *emailService) SendAssessmentReport(ctx context.Context, email string, report string, score float64) {
	if !s.configured() {
		log.Warn().Msg("Email config missing, skipping report delivery")
		return
	}
	if strings.TrimSpace(email) == "" {
		log.Warn().Msg("Empty recipient, skipping report delivery")
		return
	}

	body := fmt.Sprintf(
		"<p>Your assessment is complete. Total score: %.1f.</p><pre>%s</pre>",
		score, report,
	)

	if err := s.send(email, "Your assessment report", body); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to send assessment report email")
		return
	}
	log.Info().Str("email", email).Msg("Assessment report email sent")
}

func (s *emailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.SMTPUser, s.cfg.SMTPPass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
