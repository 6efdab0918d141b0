// internals/features/leftovers/model/leftover_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	menuModel "kantinku_backend/internals/features/menus/model"
	studentModel "kantinku_backend/internals/features/students/model"
)

// LeftoverModel menyimpan persentase sisa makanan per (siswa, menu, tanggal).
// Rate dalam persen [0,100]; tingkat konsumsi = 1 - rate/100.
type LeftoverModel struct {
	LeftoverID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:leftover_id" json:"leftover_id"`
	LeftoverStudentID uuid.UUID `gorm:"type:uuid;not null;column:leftover_student_id;uniqueIndex:uq_leftover_student_menu_date" json:"leftover_student_id"`
	LeftoverMenuID    uuid.UUID `gorm:"type:uuid;not null;column:leftover_menu_id;uniqueIndex:uq_leftover_student_menu_date" json:"leftover_menu_id"`
	LeftoverDate      time.Time `gorm:"type:date;not null;column:leftover_date;uniqueIndex:uq_leftover_student_menu_date" json:"leftover_date"`

	// Nama menu disalin saat insert supaya agregasi per-nama tidak perlu join.
	LeftoverMenuName string  `gorm:"type:text;not null;column:leftover_menu_name" json:"leftover_menu_name"`
	LeftoverRate     float64 `gorm:"not null;column:leftover_rate" json:"leftover_rate"`

	Student *studentModel.StudentModel `gorm:"foreignKey:LeftoverStudentID;references:StudentID" json:"student,omitempty"`
	Menu    *menuModel.MenuModel       `gorm:"foreignKey:LeftoverMenuID;references:MenuID" json:"menu,omitempty"`

	LeftoverCreatedAt time.Time `gorm:"column:leftover_created_at;autoCreateTime" json:"leftover_created_at"`
}

func (LeftoverModel) TableName() string { return "leftovers" }
