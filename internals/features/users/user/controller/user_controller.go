package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "quizprep_backend/internals/features/users/user/dto"
	userService "quizprep_backend/internals/features/users/user/service"
	helper "quizprep_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func parseUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	return id, nil
}

// GET /api/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := userService.GetUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "User fetched", userDTO.FromModel(user))
}

// GET /api/users/:id (owner or admin)
func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	requester, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if requester != id && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own profile")
	}

	user, err := userService.GetUserByID(ctrl.DB, id)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "User fetched", userDTO.FromModel(user))
}

// PATCH /api/users/:id (owner or admin)
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	requester, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if requester != id && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only update your own profile")
	}

	var input userDTO.UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := userService.UpdateUser(ctrl.DB, id, input)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", userDTO.FromModel(user))
}

// GET /api/users/email/:email (admin)
func (ctrl *UserController) GetByEmail(c *fiber.Ctx) error {
	user, err := userService.GetUserByEmail(ctrl.DB, c.Params("email"))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonOK(c, "User fetched", userDTO.FromModel(user))
}

// GET /api/users (admin)
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	filter := userService.ListFilter{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	users, total, err := userService.ListUsers(ctrl.DB, filter, paging.Limit, paging.Offset)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, "Users fetched", userDTO.FromModels(users),
		helper.BuildPagination(total, paging.Page, paging.Limit))
}

// PATCH /api/users/:id/role (admin)
func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	var body userDTO.UpdateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := userService.UpdateUserRole(ctrl.DB, id, body.Role)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Role updated", userDTO.FromModel(user))
}

// PATCH /api/users/:id/status (admin)
func (ctrl *UserController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	var body userDTO.UpdateStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := userService.UpdateUserStatus(ctrl.DB, id, body.Status)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Status updated", userDTO.FromModel(user))
}

// DELETE /api/users/:id (admin)
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := parseUserID(c)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}

	if err := userService.DeleteUser(ctrl.DB, id); err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}
