// internals/features/inventories/dto/inventory_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	invModel "kantinku_backend/internals/features/inventories/model"
)

/* ===================== REQUESTS ===================== */

type CreateInventoryRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	ProductName   string  `json:"productName" validate:"required,min=1,max=100"`
	Vendor        string  `json:"vendor" validate:"required,min=1,max=100"`
	Price         int64   `json:"price" validate:"gte=0"`
	OrderQuantity float64 `json:"orderQuantity" validate:"required,gt=0"`
	OrderUnit     string  `json:"orderUnit" validate:"required,max=10"`
	UseQuantity   float64 `json:"useQuantity" validate:"gte=0"`
	UseUnit       string  `json:"useUnit" validate:"required,max=10"`
}

func (r *CreateInventoryRequest) ToModel() (*invModel.InventoryModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &invModel.InventoryModel{
		InventoryDate:          date,
		InventoryProductName:   r.ProductName,
		InventoryVendor:        r.Vendor,
		InventoryPrice:         r.Price,
		InventoryOrderQuantity: r.OrderQuantity,
		InventoryOrderUnit:     r.OrderUnit,
		InventoryUseQuantity:   r.UseQuantity,
		InventoryUseUnit:       r.UseUnit,
	}, nil
}

type UpdateInventoryRequest struct {
	ProductName   *string  `json:"productName" validate:"omitempty,min=1,max=100"`
	Vendor        *string  `json:"vendor" validate:"omitempty,min=1,max=100"`
	Price         *int64   `json:"price" validate:"omitempty,gte=0"`
	OrderQuantity *float64 `json:"orderQuantity" validate:"omitempty,gt=0"`
	OrderUnit     *string  `json:"orderUnit" validate:"omitempty,max=10"`
	UseQuantity   *float64 `json:"useQuantity" validate:"omitempty,gte=0"`
	UseUnit       *string  `json:"useUnit" validate:"omitempty,max=10"`
}

func (r *UpdateInventoryRequest) ApplyToModel(m *invModel.InventoryModel) {
	if r.ProductName != nil {
		m.InventoryProductName = *r.ProductName
	}
	if r.Vendor != nil {
		m.InventoryVendor = *r.Vendor
	}
	if r.Price != nil {
		m.InventoryPrice = *r.Price
	}
	if r.OrderQuantity != nil {
		m.InventoryOrderQuantity = *r.OrderQuantity
	}
	if r.OrderUnit != nil {
		m.InventoryOrderUnit = *r.OrderUnit
	}
	if r.UseQuantity != nil {
		m.InventoryUseQuantity = *r.UseQuantity
	}
	if r.UseUnit != nil {
		m.InventoryUseUnit = *r.UseUnit
	}
}

/* ===================== RESPONSES ===================== */

type InventoryResponse struct {
	InventoryID   uuid.UUID `json:"inventory_id"`
	Date          string    `json:"date"`
	ProductName   string    `json:"productName"`
	Vendor        string    `json:"vendor"`
	Price         int64     `json:"price"`
	OrderQuantity float64   `json:"orderQuantity"`
	OrderUnit     string    `json:"orderUnit"`
	UseQuantity   float64   `json:"useQuantity"`
	UseUnit       string    `json:"useUnit"`
}

func NewInventoryResponse(m *invModel.InventoryModel) *InventoryResponse {
	return &InventoryResponse{
		InventoryID:   m.InventoryID,
		Date:          m.InventoryDate.Format("2006-01-02"),
		ProductName:   m.InventoryProductName,
		Vendor:        m.InventoryVendor,
		Price:         m.InventoryPrice,
		OrderQuantity: m.InventoryOrderQuantity,
		OrderUnit:     m.InventoryOrderUnit,
		UseQuantity:   m.InventoryUseQuantity,
		UseUnit:       m.InventoryUseUnit,
	}
}
