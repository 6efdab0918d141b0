// internals/features/schools/controller/school_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sDTO "kantinku_backend/internals/features/schools/dto"
	sModel "kantinku_backend/internals/features/schools/model"
	helper "kantinku_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/school/cities
// Daftar kota unik dari semua sekolah terdaftar (untuk dropdown signup).
func (h *SchoolController) Cities(c *fiber.Ctx) error {
	var cities []string
	if err := h.DB.Model(&sModel.SchoolModel{}).
		Distinct("school_city").
		Order("school_city ASC").
		Pluck("school_city", &cities).Error; err != nil {
		return helper.RenderError(c, helper.ErrInternal)
	}

	return helper.Success(c, sDTO.CityListResponse{Cities: cities})
}

// GET /api/v1/school/schools?city=&schoolName=
// Cari sekolah dalam satu kota dengan prefix nama. Kota kosong → list kosong.
func (h *SchoolController) Schools(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	prefix := strings.TrimSpace(c.Query("schoolName"))

	names := make([]string, 0)
	if city != "" {
		q := h.DB.Model(&sModel.SchoolModel{}).Where("school_city = ?", city)
		if prefix != "" {
			q = q.Where("school_name LIKE ?", prefix+"%")
		}
		if err := q.Order("school_name ASC").
			Pluck("school_name", &names).Error; err != nil {
			return helper.RenderError(c, helper.ErrInternal)
		}
	}

	return helper.Success(c, sDTO.SchoolListResponse{Schools: names})
}
