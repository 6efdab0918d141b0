// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "kantinku_backend/internals/features/users/auth/dto"
	authSvc "kantinku_backend/internals/features/users/auth/service"
	helper "kantinku_backend/internals/helpers"
	authHelper "kantinku_backend/internals/helpers/auth"
)

var validate = validator.New()

type AuthController struct {
	Service *authSvc.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: authSvc.NewAuthService(db)}
}

/* ===================== HANDLERS ===================== */

// POST /api/v1/user/signup
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req authDTO.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.Signup(&req)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, resp)
}

// POST /api/v1/user/login
// Access token dikirim lewat header Authorization, refresh token lewat
// cookie HttpOnly.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, access, refresh, err := h.Service.Login(&req)
	if err != nil {
		return helper.RenderError(c, err)
	}

	c.Set("Authorization", "Bearer "+access)
	setRefreshCookie(c, refresh)

	return helper.Success(c, authDTO.NewUserSummaryResponse(user))
}

// POST /api/v1/user/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	access, err := h.Service.Refresh(helper.GetRefreshTokenFromCookie(c))
	if err != nil {
		return helper.RenderError(c, err)
	}

	c.Set("Authorization", "Bearer "+access)
	return helper.Success(c, authDTO.MessageResponse{Message: "Token diperbarui."})
}

// DELETE /api/v1/user/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	clearRefreshCookie(c)
	return helper.Success(c, authDTO.MessageResponse{Message: "Logout berhasil."})
}

// POST /api/v1/user/validate-id
func (h *AuthController) ValidateID(c *fiber.Ctx) error {
	var req authDTO.ValidateIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	available, err := h.Service.ValidateID(req.LoginID)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, authDTO.ValidateIDResponse{Available: available})
}

// POST /api/v1/user/find-id
func (h *AuthController) FindID(c *fiber.Ctx) error {
	var req authDTO.FindIDRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	loginID, err := h.Service.FindID(&req)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, authDTO.FindIDResponse{LoginID: loginID})
}

// POST /api/v1/user/new-password
func (h *AuthController) NewPassword(c *fiber.Ctx) error {
	var req authDTO.NewPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Service.NewPassword(&req); err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, authDTO.MessageResponse{Message: "Password berhasil diganti."})
}

// GET /api/v1/user/validate-token
func (h *AuthController) ValidateToken(c *fiber.Ctx) error {
	valid := authHelper.ValidateToken(helper.GetRawAccessToken(c))
	return helper.Success(c, authDTO.ValidateTokenResponse{Valid: valid})
}

/* ===================== HELPERS ===================== */

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Path:     "/",
		MaxAge:   int(authHelper.RefreshTTLDefault / time.Second),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}
