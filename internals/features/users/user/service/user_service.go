package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	authModel "quizprep_backend/internals/features/users/auth/model"
	userDTO "quizprep_backend/internals/features/users/user/dto"
	"quizprep_backend/internals/features/users/user/model"
)

// ListFilter narrows the admin user listing.
type ListFilter struct {
	Role   string
	Status string
	Search string
}

func GetUserByID(db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return &user, nil
}

func GetUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return &user, nil
}

// ListUsers returns a page of users, newest first, optionally filtered by
// role, status, or a search term against email and username.
func ListUsers(db *gorm.DB, filter ListFilter, limit, offset int) ([]model.UserModel, int64, error) {
	q := db.Model(&model.UserModel{})

	if filter.Role != "" {
		role := constants.UserRole(strings.ToUpper(filter.Role))
		if !role.Valid() {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid role filter")
		}
		q = q.Where("role = ?", role)
	}
	if filter.Status != "" {
		status := constants.UserStatus(strings.ToUpper(filter.Status))
		if !status.Valid() {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("status = ?", status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + s + "%"
		q = q.Where("email ILIKE ? OR user_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "Failed to list users")
	}
	return users, total, nil
}

// UpdateUser applies the self-service fields only. Email, role, and status
// are never touched here.
func UpdateUser(db *gorm.DB, id uuid.UUID, input userDTO.UpdateUserRequest) (*model.UserModel, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.UserName != nil {
		name := strings.TrimSpace(*input.UserName)
		if len(name) < 3 || len(name) > 50 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Username must be between 3 and 50 characters")
		}
		var taken int64
		db.Model(&model.UserModel{}).
			Where("user_name = ? AND id <> ?", name, id).
			Count(&taken)
		if taken > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Username already taken")
		}
		updates["user_name"] = name
	}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.ProfilePicture != nil {
		updates["profile_picture"] = *input.ProfilePicture
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := db.Model(user).Updates(updates).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	return user, nil
}

// UpdateUserRole changes a user's role (admin only).
func UpdateUserRole(db *gorm.DB, id uuid.UUID, rawRole string) (*model.UserModel, error) {
	role := constants.UserRole(strings.ToUpper(strings.TrimSpace(rawRole)))
	if !role.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid role")
	}

	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Model(user).Update("role", role).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update role")
	}
	return user, nil
}

// UpdateUserStatus changes a user's status (admin only). Moving a user off
// ACTIVE also revokes their sessions.
func UpdateUserStatus(db *gorm.DB, id uuid.UUID, rawStatus string) (*model.UserModel, error) {
	status := constants.UserStatus(strings.ToUpper(strings.TrimSpace(rawStatus)))
	if !status.Valid() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("status", status).Error; err != nil {
			return err
		}
		if status != constants.StatusActive {
			if err := tx.Where("user_id = ?", id).Delete(&authModel.SessionModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to update status")
	}
	return user, nil
}

// DeleteUser removes a user and everything hanging off it.
func DeleteUser(db *gorm.DB, id uuid.UUID) error {
	user, err := GetUserByID(db, id)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&authModel.SessionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&authModel.SocialLoginModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return nil
}
