// internals/features/students/controller/student_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	stDTO "kantinku_backend/internals/features/students/dto"
	stSvc "kantinku_backend/internals/features/students/service"
	helper "kantinku_backend/internals/helpers"
)

var validate = validator.New()

// LeftoverNotifier menerima pemberitahuan bahwa data sisa makanan berubah,
// supaya dashboard live bisa di-update. Kegagalan push tidak pernah
// menggagalkan penyimpanan.
type LeftoverNotifier interface {
	PushLeftoverUpdate(schoolID uuid.UUID, date time.Time)
}

type StudentController struct {
	DB       *gorm.DB
	Service  *stSvc.StudentService
	Notifier LeftoverNotifier
}

func NewStudentController(db *gorm.DB, notifier LeftoverNotifier) *StudentController {
	return &StudentController{
		DB:       db,
		Service:  stSvc.NewStudentService(db),
		Notifier: notifier,
	}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/student
func (h *StudentController) Names(c *fiber.Ctx) error {
	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	list, err := h.Service.Names(schoolID)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, list)
}

// GET /api/v1/student/:id
func (h *StudentController) Detail(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.Detail(schoolID, studentID)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// POST /api/v1/student/leftover
func (h *StudentController) SaveLeftovers(c *fiber.Ctx) error {
	var req stDTO.SaveLeftoverRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	date, saved, err := h.Service.SaveLeftovers(schoolID, &req)
	if err != nil {
		return helper.RenderError(c, err)
	}

	if h.Notifier != nil {
		h.Notifier.PushLeftoverUpdate(schoolID, date)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, stDTO.SaveLeftoverResponse{Saved: saved})
}

// GET /api/v1/student/leftover?date=&grade=&classNum=&number=
func (h *StudentController) LeftoversByDate(c *fiber.Ctx) error {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	grade := c.QueryInt("grade")
	classNum := c.QueryInt("classNum")
	number := c.QueryInt("number")
	if grade < 1 || classNum < 1 || number < 1 {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.LeftoversByDate(schoolID, date, grade, classNum, number)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// POST /api/v1/student/:id/health-report
func (h *StudentController) HealthReport(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.HealthReport(schoolID, studentID)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}

// POST /api/v1/student/nfc
func (h *StudentController) NFCVerify(c *fiber.Ctx) error {
	var req stDTO.NFCVerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	schoolID, err := helper.CurrentSchoolID(c, h.DB)
	if err != nil {
		return helper.RenderError(c, err)
	}

	resp, err := h.Service.NFCVerify(schoolID, &req)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, resp)
}
