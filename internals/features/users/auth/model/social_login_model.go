package model

import (
	"time"

	"github.com/google/uuid"

	"quizprep_backend/internals/constants"
)

// SocialLoginModel links an external identity (provider + provider id)
// to a local account. A LOCAL row is created alongside every
// password-based registration, using the email as provider id, to keep
// identity resolution uniform.
type SocialLoginModel struct {
	ID         uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Provider   constants.Provider `gorm:"column:provider;type:varchar(20);not null;uniqueIndex:idx_provider_provider_id" json:"provider"`
	ProviderID string             `gorm:"column:provider_id;size:255;not null;uniqueIndex:idx_provider_provider_id" json:"provider_id"`

	// Provider-issued OAuth tokens, refreshed on every social login.
	AccessToken  *string `gorm:"column:access_token" json:"-"`
	RefreshToken *string `gorm:"column:refresh_token" json:"-"`

	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (SocialLoginModel) TableName() string {
	return "social_logins"
}
