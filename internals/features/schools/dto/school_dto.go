// internals/features/schools/dto/school_dto.go
package dto

import (
	"github.com/google/uuid"

	sModel "kantinku_backend/internals/features/schools/model"
)

/* ===================== RESPONSES ===================== */

type SchoolResponse struct {
	SchoolID   uuid.UUID `json:"school_id"`
	SchoolName string    `json:"school_name"`
	SchoolCity string    `json:"school_city"`
	SchoolType *string   `json:"school_type,omitempty"`
}

func NewSchoolResponse(m *sModel.SchoolModel) *SchoolResponse {
	return &SchoolResponse{
		SchoolID:   m.SchoolID,
		SchoolName: m.SchoolName,
		SchoolCity: m.SchoolCity,
		SchoolType: m.SchoolType,
	}
}

type CityListResponse struct {
	Cities []string `json:"cities"`
}

type SchoolListResponse struct {
	Schools []string `json:"schools"`
}
