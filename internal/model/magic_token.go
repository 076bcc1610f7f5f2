package model

import "time"

// MagicToken is one magic-link issuance. Only the HMAC fingerprint of the
// plaintext token is stored; the plaintext itself is never persisted.
// A record authorizes exactly one login: Consumed flips false->true once,
// and expired or consumed rows are never matched again.
type MagicToken struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Email       string    `json:"email" gorm:"not null;index"`
	Fingerprint string    `json:"-" gorm:"not null;uniqueIndex"`
	ExpiresAt   time.Time `json:"expires_at" gorm:"not null"`
	Consumed    bool      `json:"consumed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
}
