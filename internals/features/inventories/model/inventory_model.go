// internals/features/inventories/model/inventory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryModel mencatat pergerakan stok bahan per tanggal.
type InventoryModel struct {
	InventoryID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:inventory_id" json:"inventory_id"`
	InventoryDate        time.Time `gorm:"type:date;not null;column:inventory_date" json:"inventory_date"`
	InventoryProductName string    `gorm:"type:varchar(100);not null;column:inventory_product_name" json:"inventory_product_name"`
	InventoryVendor      string    `gorm:"type:varchar(100);not null;column:inventory_vendor" json:"inventory_vendor"`
	InventoryPrice       int64     `gorm:"not null;default:0;column:inventory_price" json:"inventory_price"`

	InventoryOrderQuantity float64 `gorm:"not null;column:inventory_order_quantity" json:"inventory_order_quantity"`
	InventoryOrderUnit     string  `gorm:"type:varchar(10);not null;column:inventory_order_unit" json:"inventory_order_unit"`
	InventoryUseQuantity   float64 `gorm:"not null;default:0;column:inventory_use_quantity" json:"inventory_use_quantity"`
	InventoryUseUnit       string  `gorm:"type:varchar(10);not null;column:inventory_use_unit" json:"inventory_use_unit"`

	InventoryCreatedAt time.Time  `gorm:"column:inventory_created_at;autoCreateTime" json:"inventory_created_at"`
	InventoryUpdatedAt *time.Time `gorm:"column:inventory_updated_at;autoUpdateTime" json:"inventory_updated_at,omitempty"`
}

func (InventoryModel) TableName() string { return "inventories" }
