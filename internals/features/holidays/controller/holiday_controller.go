// internals/features/holidays/controller/holiday_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hSvc "kantinku_backend/internals/features/holidays/service"
	helper "kantinku_backend/internals/helpers"
)

type HolidayController struct {
	Service *hSvc.HolidayService
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{Service: hSvc.NewHolidayService(db)}
}

/* ===================== HANDLERS ===================== */

// POST /api/v1/holidays/fetch?year=&month=
func (h *HolidayController) Fetch(c *fiber.Ctx) error {
	year, month, err := yearMonth(c)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.FetchMonth(year, month)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// GET /api/v1/holidays?year=&month=
func (h *HolidayController) Month(c *fiber.Ctx) error {
	year, month, err := yearMonth(c)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.Month(year, month)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

/* ===================== HELPERS ===================== */

func yearMonth(c *fiber.Ctx) (int, int, error) {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return 0, 0, helper.ErrInvalidInput
	}
	return year, month, nil
}
