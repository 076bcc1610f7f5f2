package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// TokenHasher derives the storable fingerprint of a plaintext magic-link
// token. The derivation must be deterministic so redemption can locate the
// stored record with a single indexed equality lookup; a per-token salted
// hash would force a linear scan over every outstanding token.
type TokenHasher interface {
	Fingerprint(plaintext string) string
}

type hmacTokenHasher struct {
	key []byte
}

// NewTokenHasher returns an HMAC-SHA256 hasher keyed with the server secret.
// Keying the hash means a leaked token table alone is not enough to forge a
// redeemable plaintext.
func NewTokenHasher(secret string) TokenHasher {
	return &hmacTokenHasher{key: []byte(secret)}
}

func (h *hmacTokenHasher) Fingerprint(plaintext string) string {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}
