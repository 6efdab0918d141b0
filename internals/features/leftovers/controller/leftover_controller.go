// internals/features/leftovers/controller/leftover_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lSvc "kantinku_backend/internals/features/leftovers/service"
	helper "kantinku_backend/internals/helpers"
)

type LeftoverController struct {
	DB      *gorm.DB
	Service *lSvc.LeftoverService
}

func NewLeftoverController(db *gorm.DB) *LeftoverController {
	return &LeftoverController{DB: db, Service: lSvc.NewLeftoverService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/leftover/date?date=YYYY-MM-DD
func (h *LeftoverController) ByDate(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.Date(schoolID, date)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// GET /api/v1/leftover/month?year=&month=
func (h *LeftoverController) ByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.Month(schoolID, year, month)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}
