// internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	schoolModel "kantinku_backend/internals/features/schools/model"
)

// StudentModel merepresentasikan tabel students.
// (grade, class_num, number) adalah kunci alami komposit di dalam satu sekolah.
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:student_school_id;uniqueIndex:uq_student_identity" json:"student_school_id"`
	StudentName     string    `gorm:"type:varchar(60);not null;column:student_name" json:"student_name"`
	StudentGender   string    `gorm:"type:varchar(10);not null;column:student_gender" json:"student_gender"`
	StudentGrade    int       `gorm:"not null;column:student_grade;uniqueIndex:uq_student_identity" json:"student_grade"`
	StudentClassNum int       `gorm:"not null;column:student_class_num;uniqueIndex:uq_student_identity" json:"student_class_num"`
	StudentNumber   int       `gorm:"not null;column:student_number;uniqueIndex:uq_student_identity" json:"student_number"`

	StudentHeight float64 `gorm:"not null;default:0;column:student_height" json:"student_height"` // cm
	StudentWeight float64 `gorm:"not null;default:0;column:student_weight" json:"student_weight"` // kg

	// Cache laporan kesehatan terakhir (JSON hasil AI) + tanggal pembuatan.
	// Laporan hanya dibuat sekali per hari per siswa.
	StudentContent     datatypes.JSON `gorm:"column:student_content" json:"student_content,omitempty"`
	StudentContentDate *time.Time     `gorm:"type:date;column:student_content_date" json:"student_content_date,omitempty"`

	School *schoolModel.SchoolModel `gorm:"foreignKey:StudentSchoolID;references:SchoolID" json:"school,omitempty"`

	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
