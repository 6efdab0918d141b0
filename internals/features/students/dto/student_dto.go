// internals/features/students/dto/student_dto.go
package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	stModel "kantinku_backend/internals/features/students/model"
)

/* ===================== REQUESTS ===================== */

// LeftoverEntry adalah satu pasangan menu → persen sisa.
type LeftoverEntry struct {
	MenuName string  `json:"menuName" validate:"required,min=1"`
	Rate     float64 `json:"rate" validate:"gte=0,lte=100"`
}

// SaveLeftoverRequest menyimpan sisa makanan satu siswa untuk satu tanggal.
type SaveLeftoverRequest struct {
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Grade     int             `json:"grade" validate:"required,gte=1"`
	ClassNum  int             `json:"classNum" validate:"required,gte=1"`
	Number    int             `json:"number" validate:"required,gte=1"`
	Leftovers []LeftoverEntry `json:"leftovers" validate:"required,min=1,dive"`
}

// NFCVerifyRequest memverifikasi identitas siswa di stasiun baki.
type NFCVerifyRequest struct {
	Grade    int `json:"grade" validate:"required,gte=1"`
	ClassNum int `json:"classNum" validate:"required,gte=1"`
	Number   int `json:"number" validate:"required,gte=1"`
}

/* ===================== RESPONSES ===================== */

type StudentNameResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	ClassNum  int       `json:"classNum"`
	Number    int       `json:"number"`
}

type StudentDetailResponse struct {
	StudentID uuid.UUID `json:"student_id"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender"`
	Grade     int       `json:"grade"`
	ClassNum  int       `json:"classNum"`
	Number    int       `json:"number"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	BMI       float64   `json:"bmi"`
}

func NewStudentDetailResponse(m *stModel.StudentModel, bmi float64) *StudentDetailResponse {
	return &StudentDetailResponse{
		StudentID: m.StudentID,
		Name:      m.StudentName,
		Gender:    m.StudentGender,
		Grade:     m.StudentGrade,
		ClassNum:  m.StudentClassNum,
		Number:    m.StudentNumber,
		Height:    m.StudentHeight,
		Weight:    m.StudentWeight,
		BMI:       bmi,
	}
}

type StudentLeftoverResponse struct {
	Date      string          `json:"date"`
	StudentID uuid.UUID       `json:"student_id"`
	Name      string          `json:"name"`
	Leftovers []LeftoverEntry `json:"leftovers"`
}

type SaveLeftoverResponse struct {
	Saved int `json:"saved"`
}

// HealthReportResponse membungkus dokumen laporan dari server AI
// (disimpan mentah sebagai JSON).
type HealthReportResponse struct {
	StudentID uuid.UUID      `json:"student_id"`
	Date      string         `json:"date"`
	Cached    bool           `json:"cached"`
	Report    datatypes.JSON `json:"report"`
}

type NFCVerifyResponse struct {
	Verified  bool      `json:"verified"`
	StudentID uuid.UUID `json:"student_id,omitempty"`
	Name      string    `json:"name,omitempty"`
}
