// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	uModel "kantinku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type SignupRequest struct {
	LoginID          string  `json:"loginId" validate:"required,min=4,max=50"`
	Password         string  `json:"password" validate:"required,min=8"`
	NutritionistName string  `json:"nutritionistName" validate:"required,min=2,max=60"`
	SchoolName       string  `json:"schoolName" validate:"required,min=2,max=100"`
	SchoolCity       string  `json:"city" validate:"required,min=2,max=60"`
	SchoolType       *string `json:"schoolType" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ValidateIDRequest struct {
	LoginID string `json:"loginId" validate:"required,min=4,max=50"`
}

type FindIDRequest struct {
	NutritionistName string `json:"nutritionistName" validate:"required,min=2,max=60"`
	SchoolName       string `json:"schoolName" validate:"required,min=2,max=100"`
	SchoolCity       string `json:"city" validate:"required,min=2,max=60"`
}

type NewPasswordRequest struct {
	LoginID     string `json:"loginId" validate:"required,min=4,max=50"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

/* ===================== RESPONSES ===================== */

type UserSummaryResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	LoginID          string    `json:"loginId"`
	NutritionistName string    `json:"nutritionistName"`
	SchoolName       string    `json:"schoolName"`
	SchoolCity       string    `json:"city"`
}

func NewUserSummaryResponse(u *uModel.UserModel) *UserSummaryResponse {
	resp := &UserSummaryResponse{
		UserID:           u.UserID,
		LoginID:          u.UserLoginID,
		NutritionistName: u.UserNutritionistName,
	}
	if u.School != nil {
		resp.SchoolName = u.School.SchoolName
		resp.SchoolCity = u.School.SchoolCity
	}
	return resp
}

type ValidateIDResponse struct {
	Available bool `json:"available"`
}

type FindIDResponse struct {
	LoginID string `json:"loginId"`
}

type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
