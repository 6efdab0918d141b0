// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	uDTO "kantinku_backend/internals/features/users/user/dto"
	uModel "kantinku_backend/internals/features/users/user/model"
	helper "kantinku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/user/profile
func (h *UserController) Profile(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, uDTO.NewProfileResponse(user))
}

// PUT /api/v1/user/profile
func (h *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req uDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := h.currentUser(c)
	if err != nil {
		return helper.RenderError(c, err)
	}

	updates := map[string]interface{}{}
	if req.NutritionistName != nil {
		updates["user_nutritionist_name"] = strings.TrimSpace(*req.NutritionistName)
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.RenderError(c, helper.ErrInternal)
		}
		updates["user_password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&uModel.UserModel{}).
			Where("user_id = ?", user.UserID).
			Updates(updates).Error; err != nil {
			return helper.RenderError(c, helper.ErrInternal)
		}
		if v, ok := updates["user_nutritionist_name"].(string); ok {
			user.UserNutritionistName = v
		}
	}

	return helper.Success(c, uDTO.NewProfileResponse(user))
}

/* ===================== HELPERS ===================== */

// currentUser ambil user dari Locals("user_id") yang diset auth middleware.
func (h *UserController) currentUser(c *fiber.Ctx) (*uModel.UserModel, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return nil, helper.ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, helper.ErrUnauthorized
	}

	var user uModel.UserModel
	if err := h.DB.Preload("School").Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrUserNotFound
		}
		return nil, helper.ErrInternal
	}
	return &user, nil
}
