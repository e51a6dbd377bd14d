package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel is one row per active refresh token. Deleting the row
// invalidates the token immediately; there is no cap on concurrent
// sessions per user.
type SessionModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	// HMAC-SHA256 of the issued refresh token, never the plaintext.
	TokenHash []byte `gorm:"column:token_hash;type:bytea;not null;uniqueIndex" json:"-"`

	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null" json:"expires_at"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry.
func (s *SessionModel) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
