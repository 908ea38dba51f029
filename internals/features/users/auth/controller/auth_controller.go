// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursepay_backend/internals/configs"
	"coursepay_backend/internals/features/users/auth/service"
	userDTO "coursepay_backend/internals/features/users/user/dto"
	userModel "coursepay_backend/internals/features/users/user/model"
	helper "coursepay_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 24 * time.Hour

type AuthHandler struct {
	DB *gorm.DB
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// =======================================================
// LOGIN — bcrypt compare, httpOnly cookie + token in body
// =======================================================
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	body.Username = strings.TrimSpace(body.Username)
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "username = ?", body.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error logging in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.IssueAccessToken(configs.JWTSecret, user, accessTokenTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error logging in")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"user":         userDTO.ToUserResponse(user),
	})
}

// =======================================================
// LOGOUT — clears the cookie, nothing server side to revoke
// =======================================================
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Logout successful", nil)
}

// =======================================================
// ME — current identity from the verified token
// =======================================================
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", raw).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching profile")
	}
	return helper.JsonOK(c, "ok", userDTO.ToUserResponse(user))
}
