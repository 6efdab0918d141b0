// internals/features/menus/model/menu_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	schoolModel "kantinku_backend/internals/features/schools/model"
)

// MenuModel merepresentasikan tabel menus.
// Unik per (sekolah, tanggal, nama). vote_count dan total_score hanya
// bertambah (akumulasi monoton); rata-rata kepuasan TIDAK disimpan,
// selalu dihitung ulang saat dibaca (total_score / vote_count).
type MenuModel struct {
	MenuID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:menu_id" json:"menu_id"`
	MenuSchoolID uuid.UUID `gorm:"type:uuid;not null;column:menu_school_id;uniqueIndex:uq_menu_school_date_name" json:"menu_school_id"`
	MenuDate     time.Time `gorm:"type:date;not null;column:menu_date;uniqueIndex:uq_menu_school_date_name" json:"menu_date"`
	MenuName     string    `gorm:"type:text;not null;column:menu_name;uniqueIndex:uq_menu_school_date_name" json:"menu_name"`
	MenuCategory string    `gorm:"type:varchar(10);not null;default:'side';column:menu_category" json:"menu_category"`

	MenuVoteCount  int `gorm:"not null;default:0;column:menu_vote_count" json:"menu_vote_count"`
	MenuTotalScore int `gorm:"not null;default:0;column:menu_total_score" json:"menu_total_score"`

	School *schoolModel.SchoolModel `gorm:"foreignKey:MenuSchoolID;references:SchoolID" json:"school,omitempty"`

	MenuCreatedAt time.Time  `gorm:"column:menu_created_at;autoCreateTime" json:"menu_created_at"`
	MenuUpdatedAt *time.Time `gorm:"column:menu_updated_at;autoUpdateTime" json:"menu_updated_at,omitempty"`
}

func (MenuModel) TableName() string { return "menus" }
