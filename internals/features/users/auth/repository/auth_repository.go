package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "quizprep_backend/internals/features/users/auth/model"
	userModel "quizprep_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Save(user).Error
}

func CreateSession(db *gorm.DB, session *authModel.SessionModel) error {
	return db.Create(session).Error
}

func FindSessionByTokenHash(db *gorm.DB, tokenHash []byte) (*authModel.SessionModel, error) {
	var session authModel.SessionModel
	if err := db.Where("token_hash = ?", tokenHash).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// RotateSession replaces a session's token hash and expiry in place.
func RotateSession(db *gorm.DB, session *authModel.SessionModel, newHash []byte, expiresAt time.Time) error {
	return db.Model(session).Updates(map[string]interface{}{
		"token_hash": newHash,
		"expires_at": expiresAt,
	}).Error
}

// DeleteSessionByTokenHash removes one session row. Returns gorm.ErrRecordNotFound
// when no session matched, so logout of an unknown token can be reported.
func DeleteSessionByTokenHash(db *gorm.DB, tokenHash []byte) error {
	res := db.Where("token_hash = ?", tokenHash).Delete(&authModel.SessionModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteSessionsByUserID(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.SessionModel{}).Error
}

// DeleteExpiredSessions prunes sessions whose expiry has passed.
func DeleteExpiredSessions(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("expires_at < ?", now).Delete(&authModel.SessionModel{})
	return res.RowsAffected, res.Error
}

func FindSocialLogin(db *gorm.DB, provider, providerID string) (*authModel.SocialLoginModel, error) {
	var social authModel.SocialLoginModel
	if err := db.Where("provider = ? AND provider_id = ?", provider, providerID).
		First(&social).Error; err != nil {
		return nil, err
	}
	return &social, nil
}

func CreateSocialLogin(db *gorm.DB, social *authModel.SocialLoginModel) error {
	return db.Create(social).Error
}

func UpdateSocialLogin(db *gorm.DB, social *authModel.SocialLoginModel) error {
	return db.Save(social).Error
}
