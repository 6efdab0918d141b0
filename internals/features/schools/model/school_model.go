// internals/features/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel merepresentasikan tabel schools.
// Identitas sekolah adalah pasangan (nama, kota), nama saja TIDAK unik;
// sekolah dengan nama sama bisa ada di kota berbeda.
type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolName string    `gorm:"type:varchar(100);not null;column:school_name;uniqueIndex:uq_school_name_city" json:"school_name"`
	SchoolCity string    `gorm:"type:varchar(60);not null;column:school_city;uniqueIndex:uq_school_name_city" json:"school_city"`
	SchoolType *string   `gorm:"type:varchar(30);column:school_type" json:"school_type,omitempty"`

	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
