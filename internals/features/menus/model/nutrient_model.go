// internals/features/menus/model/nutrient_model.go
package model

import (
	"github.com/google/uuid"
)

// NutrientModel adalah tabel referensi global nutrisi (nama + satuan).
type NutrientModel struct {
	NutrientID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:nutrient_id" json:"nutrient_id"`
	NutrientName string    `gorm:"type:varchar(50);unique;not null;column:nutrient_name" json:"nutrient_name"`
	NutrientUnit string    `gorm:"type:varchar(10);not null;column:nutrient_unit" json:"nutrient_unit"`
}

func (NutrientModel) TableName() string { return "nutrients" }

// MenuNutrientModel adalah join row (menu, nutrisi) → jumlah.
// Composite PK (menu_nutrient_menu_id, menu_nutrient_nutrient_id).
type MenuNutrientModel struct {
	MenuNutrientMenuID     uuid.UUID `gorm:"type:uuid;primaryKey;column:menu_nutrient_menu_id" json:"menu_nutrient_menu_id"`
	MenuNutrientNutrientID uuid.UUID `gorm:"type:uuid;primaryKey;column:menu_nutrient_nutrient_id" json:"menu_nutrient_nutrient_id"`
	MenuNutrientAmount     float64   `gorm:"not null;default:0;column:menu_nutrient_amount" json:"menu_nutrient_amount"`

	Menu     *MenuModel     `gorm:"foreignKey:MenuNutrientMenuID;references:MenuID" json:"menu,omitempty"`
	Nutrient *NutrientModel `gorm:"foreignKey:MenuNutrientNutrientID;references:NutrientID" json:"nutrient,omitempty"`
}

func (MenuNutrientModel) TableName() string { return "menu_nutrients" }
