package service

import (
	"errors"
	"time"

	"careerworld/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidSession is returned for every session verification failure.
// Expired, malformed and bad-signature credentials are deliberately not
// distinguished to the caller.
var ErrInvalidSession = errors.New("could not validate credentials")

// SessionService mints and verifies the short-lived signed credential that
// identifies a logged-in user. It is stateless: any process holding the
// signing secret can mint and verify independently.
type SessionService interface {
	Mint(email string) (string, error)
	Verify(credential string) (string, error)
}

type sessionService struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionService(cfg *config.Config) SessionService {
	return &sessionService{
		secret: []byte(cfg.Auth.Secret),
		ttl:    cfg.Auth.SessionTTL,
	}
}

func (s *sessionService) Mint(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *sessionService) Verify(credential string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
