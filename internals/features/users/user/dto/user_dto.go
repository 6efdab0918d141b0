// internals/features/users/user/dto/user_dto.go
package dto

import (
	"github.com/google/uuid"

	uModel "kantinku_backend/internals/features/users/user/model"
)

/* ===================== REQUESTS ===================== */

type UpdateProfileRequest struct {
	NutritionistName *string `json:"nutritionistName" validate:"omitempty,min=2,max=60"`
	Password         *string `json:"password" validate:"omitempty,min=8"`
}

/* ===================== RESPONSES ===================== */

type ProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	LoginID          string    `json:"loginId"`
	NutritionistName string    `json:"nutritionistName"`
	SchoolName       string    `json:"schoolName"`
	SchoolCity       string    `json:"city"`
	SchoolType       *string   `json:"schoolType,omitempty"`
}

func NewProfileResponse(u *uModel.UserModel) *ProfileResponse {
	resp := &ProfileResponse{
		UserID:           u.UserID,
		LoginID:          u.UserLoginID,
		NutritionistName: u.UserNutritionistName,
	}
	if u.School != nil {
		resp.SchoolName = u.School.SchoolName
		resp.SchoolCity = u.School.SchoolCity
		resp.SchoolType = u.School.SchoolType
	}
	return resp
}
