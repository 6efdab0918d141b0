// internals/features/menus/controller/menu_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	menuDTO "kantinku_backend/internals/features/menus/dto"
	menuSvc "kantinku_backend/internals/features/menus/service"
	helper "kantinku_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type MenuController struct {
	DB      *gorm.DB
	Service *menuSvc.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db, Service: menuSvc.NewMenuService(db)}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/menu/calendar?year=&month=
func (h *MenuController) Calendar(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.Calendar(schoolID, year, month)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// GET /api/v1/menu/today
func (h *MenuController) Today(c *fiber.Ctx) error {
	return h.menusOn(c, today())
}

// GET /api/v1/menu/oneday?date=YYYY-MM-DD
func (h *MenuController) OneDay(c *fiber.Ctx) error {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	return h.menusOn(c, date)
}

/* ===================== HELPERS ===================== */

func (h *MenuController) menusOn(c *fiber.Ctx, date time.Time) error {
	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	names, err := h.Service.MenusOnDate(schoolID, date)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, menuDTO.DayMenuResponse{
		Date:  date.Format(dateLayout),
		Menus: names,
	})
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
