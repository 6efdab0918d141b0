// internals/features/inventories/controller/inventory_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	invDTO "kantinku_backend/internals/features/inventories/dto"
	invModel "kantinku_backend/internals/features/inventories/model"
	helper "kantinku_backend/internals/helpers"
)

var validate = validator.New()

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

/* ===================== HANDLERS ===================== */

// POST /api/v1/inventory
// Jumlah pakai tidak boleh melebihi jumlah pesan.
func (h *InventoryController) Create(c *fiber.Ctx) error {
	var req invDTO.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UseQuantity > req.OrderQuantity {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.RenderError(c, helper.ErrInternal)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, invDTO.NewInventoryResponse(m))
}

// GET /api/v1/inventory/month?year=&month=
func (h *InventoryController) Month(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 2000 || month < 1 || month > 12 {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []invModel.InventoryModel
	if err := h.DB.
		Where("inventory_date >= ? AND inventory_date < ?", start, end).
		Order("inventory_date ASC, inventory_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.RenderError(c, helper.ErrInternal)
	}

	items := make([]*invDTO.InventoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, invDTO.NewInventoryResponse(&rows[i]))
	}
	return helper.Success(c, items)
}

// GET /api/v1/inventory/:id
func (h *InventoryController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, invDTO.NewInventoryResponse(m))
}

// PUT /api/v1/inventory/:id
func (h *InventoryController) Update(c *fiber.Ctx) error {
	var req invDTO.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := h.findByID(c)
	if err != nil {
		return helper.RenderError(c, err)
	}

	req.ApplyToModel(m)
	if m.InventoryUseQuantity > m.InventoryOrderQuantity {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.RenderError(c, helper.ErrInternal)
	}
	return helper.Success(c, invDTO.NewInventoryResponse(m))
}

// DELETE /api/v1/inventory/:id
func (h *InventoryController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return helper.RenderError(c, err)
	}

	if err := h.DB.Delete(&invModel.InventoryModel{}, "inventory_id = ?", m.InventoryID).Error; err != nil {
		return helper.RenderError(c, helper.ErrInternal)
	}
	return helper.Success(c, fiber.Map{"message": "Data stok dihapus", "id": m.InventoryID})
}

/* ===================== HELPERS ===================== */

func (h *InventoryController) findByID(c *fiber.Ctx) (*invModel.InventoryModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.ErrInvalidInput
	}

	var m invModel.InventoryModel
	if err := h.DB.Where("inventory_id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrInventoryNotFound
		}
		return nil, helper.ErrInternal
	}
	return &m, nil
}
