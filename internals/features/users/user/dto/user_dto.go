package dto

import (
	"time"

	"github.com/google/uuid"

	"quizprep_backend/internals/constants"
	"quizprep_backend/internals/features/users/user/model"
)

// UserResponse is the public shape of a user. Password hashes and provider
// tokens never leave the service layer.
type UserResponse struct {
	ID             uuid.UUID            `json:"id"`
	Email          string               `json:"email"`
	UserName       *string              `json:"user_name,omitempty"`
	FullName       *string              `json:"full_name,omitempty"`
	ProfilePicture *string              `json:"profile_picture,omitempty"`
	Role           constants.UserRole   `json:"role"`
	Status         constants.UserStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		UserName:       u.UserName,
		FullName:       u.FullName,
		ProfilePicture: u.ProfilePicture,
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func FromModels(users []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModel(&users[i]))
	}
	return out
}

// UpdateUserRequest carries the self-service editable fields.
type UpdateUserRequest struct {
	UserName       *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName       *string `json:"full_name" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
}

// UpdateRoleRequest is the admin-only role change payload.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateStatusRequest is the admin-only status change payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
