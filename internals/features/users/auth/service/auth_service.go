package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	authHelper "quizprep_backend/internals/features/users/auth/helper"
	authModel "quizprep_backend/internals/features/users/auth/model"
	authRepo "quizprep_backend/internals/features/users/auth/repository"
	userDTO "quizprep_backend/internals/features/users/user/dto"
	userModel "quizprep_backend/internals/features/users/user/model"
)

// Session lookups behind RefreshToken go through these indirections so the
// rotation flow can be exercised against an in-memory store.
var (
	findSessionByTokenHash = authRepo.FindSessionByTokenHash
	findUserByID           = authRepo.FindUserByID
	rotateSession          = authRepo.RotateSession
)

// AuthResult is what every credential flow hands back to the controller.
type AuthResult struct {
	User         userDTO.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// RegisterInput is the local-credential signup payload.
type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	UserName *string `json:"user_name"`
	FullName *string `json:"full_name"`
}

func issueTokens(db *gorm.DB, user *userModel.UserModel) (*AuthResult, error) {
	pair, err := GenerateTokenPair(TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	session := &authModel.SessionModel{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(pair.RefreshToken),
		ExpiresAt: pair.ExpiresAt,
	}
	if err := authRepo.CreateSession(db, session); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	return &AuthResult{
		User:         userDTO.FromModel(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Register creates a local user, its LOCAL social-login row, and a first session.
func Register(db *gorm.DB, input RegisterInput) (*AuthResult, error) {
	if err := authHelper.ValidateRegisterInput(input.Email, input.Password); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := authRepo.FindUserByEmail(db, input.Email); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := &userModel.UserModel{
		Email:    input.Email,
		Password: &hashed,
		UserName: input.UserName,
		FullName: input.FullName,
	}
	user.SetDefaultValues()
	if err := user.Validate(); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var result *AuthResult
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, user); err != nil {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		// Local credentials are tracked alongside social providers so one
		// account can carry both.
		social := &authModel.SocialLoginModel{
			Provider:   constants.ProviderLocal,
			ProviderID: user.Email,
			UserID:     user.ID,
		}
		if err := authRepo.CreateSocialLogin(tx, social); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
		}
		res, err := issueTokens(tx, user)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
	}
	return result, nil
}

// Login verifies local credentials and opens a new session. Lookup and
// password failures share one message so emails cannot be probed.
func Login(db *gorm.DB, email, password string) (*AuthResult, error) {
	if err := authHelper.ValidateLoginInput(email, password); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to log in")
	}
	if !user.HasPassword() || !authHelper.CheckPasswordHash(password, *user.Password) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}
	if user.Status != constants.StatusActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is not active")
	}

	return issueTokens(db, user)
}

// RefreshToken rotates a refresh token: the session row keyed by the old
// token's hash is re-keyed to the new token in place.
func RefreshToken(db *gorm.DB, rawToken string) (*AuthResult, error) {
	payload, err := VerifyRefreshToken(rawToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	session, err := findSessionByTokenHash(db, ComputeRefreshHash(rawToken))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}
	if session.Expired(time.Now()) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}

	user, err := findUserByID(db, payload.UserID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired refresh token")
	}
	if user.Status != constants.StatusActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Account is not active")
	}

	pair, err := GenerateTokenPair(TokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	if err := rotateSession(db, session, ComputeRefreshHash(pair.RefreshToken), pair.ExpiresAt); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to rotate session")
	}

	return &AuthResult{
		User:         userDTO.FromModel(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// Logout revokes the session behind the given refresh token.
func Logout(db *gorm.DB, rawToken string) error {
	err := authRepo.DeleteSessionByTokenHash(db, ComputeRefreshHash(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to log out")
	}
	return nil
}

// ChangePassword swaps a local password and revokes every other session.
func ChangePassword(db *gorm.DB, userID uuid.UUID, oldPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fiber.NewError(fiber.StatusBadRequest, "Password must be at least 8 characters long")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if !user.HasPassword() || !authHelper.CheckPasswordHash(oldPassword, *user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	hashed, err := authHelper.HashPassword(newPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user.Password = &hashed
		if err := authRepo.UpdateUser(tx, user); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to change password")
		}
		if err := authRepo.DeleteSessionsByUserID(tx, userID); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to revoke sessions")
		}
		return nil
	})
}
