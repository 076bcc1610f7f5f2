package repository

import (
	"time"

	"careerworld/internal/model"

	"gorm.io/gorm"
)

type MagicTokenRepository interface {
	Create(token *model.MagicToken) error
	// Consume atomically claims the unconsumed, unexpired token matching the
	// fingerprint and returns it. The check and the consumed flip are a single
	// conditional UPDATE, so of any number of concurrent redemption attempts
	// with the same token exactly one can succeed. Every failure mode (no such
	// fingerprint, already consumed, expired) returns gorm.ErrRecordNotFound.
	Consume(fingerprint string, now time.Time) (*model.MagicToken, error)
}

type magicTokenRepository struct {
	db *gorm.DB
}

func NewMagicTokenRepository(db *gorm.DB) MagicTokenRepository {
	return &magicTokenRepository{db: db}
}

func (r *magicTokenRepository) Create(token *model.MagicToken) error {
	return r.db.Create(token).Error
}

func (r *magicTokenRepository) Consume(fingerprint string, now time.Time) (*model.MagicToken, error) {
	res := r.db.Model(&model.MagicToken{}).
		Where("fingerprint = ? AND consumed = ? AND expires_at > ?", fingerprint, false, now).
		Update("consumed", true)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var token model.MagicToken
	if err := r.db.Where("fingerprint = ?", fingerprint).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
