// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursepay_backend/internals/features/users/user/dto"
	userModel "coursepay_backend/internals/features/users/user/model"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

type UserHandler struct {
	DB *gorm.DB
}

// =======================================================
// LIST
// =======================================================
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := h.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching users")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponses(users))
}

// =======================================================
// DETAIL
// =======================================================
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}
	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching user")
	}
	return helper.JsonOK(c, "ok", dto.ToUserResponse(user))
}

// =======================================================
// CREATE — password always stored hashed
// =======================================================
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var body dto.UserCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Username = strings.TrimSpace(body.Username)
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating user")
	}

	role := body.Role
	if role == "" {
		role = "user"
	}

	user := userModel.UserModel{
		Username: body.Username,
		Password: string(hashed),
		Role:     role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating user")
	}
	return helper.JsonCreated(c, "User created successfully", dto.ToUserResponse(user))
}

// =======================================================
// UPDATE (partial)
// =======================================================
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var body dto.UserUpdateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.Username != nil && strings.TrimSpace(*body.Username) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username must not be empty")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching user")
	}

	if body.Username != nil {
		user.Username = strings.TrimSpace(*body.Username)
	}
	if body.Role != nil {
		user.Role = *body.Role
	}
	if body.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating user")
		}
		user.Password = string(hashed)
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating user")
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.ToUserResponse(user))
}

// =======================================================
// DELETE (soft delete)
// =======================================================
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "userId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	res := h.DB.Where("id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}
