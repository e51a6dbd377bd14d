package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"quizprep_backend/internals/constants"
	authModel "quizprep_backend/internals/features/users/auth/model"
)

// Validator instance
var validate = validator.New()

// UserModel represents the users table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email          string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	UserName       *string   `gorm:"size:50;unique" json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Password       *string   `gorm:"size:255" json:"-"`
	FullName       *string   `gorm:"size:100" json:"name,omitempty" validate:"omitempty,max=100"`
	ProfilePicture *string   `gorm:"size:512" json:"profile_picture,omitempty" validate:"omitempty,url"`

	Role   constants.UserRole   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Status constants.UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`

	SocialLogins []authModel.SocialLoginModel `gorm:"foreignKey:UserID" json:"social_logins,omitempty"`
	Sessions     []authModel.SessionModel     `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
	if u.Status == "" {
		u.Status = constants.StatusActive
	}
}

// Validate checks the model against its tags plus the closed enums.
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if !u.Role.Valid() {
		return errors.New("role must be one of ADMIN, USER")
	}
	if !u.Status.Valid() {
		return errors.New("status must be one of ACTIVE, INACTIVE, BANNED")
	}
	return validate.Struct(u)
}

// HasPassword reports whether this is a password-capable account; pure
// social accounts carry no hash at all.
func (u *UserModel) HasPassword() bool {
	return u.Password != nil && *u.Password != ""
}
