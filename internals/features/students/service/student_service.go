// internals/features/students/service/student_service.go
package service

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	leftoverModel "kantinku_backend/internals/features/leftovers/model"
	lSvc "kantinku_backend/internals/features/leftovers/service"
	menuModel "kantinku_backend/internals/features/menus/model"
	stDTO "kantinku_backend/internals/features/students/dto"
	stModel "kantinku_backend/internals/features/students/model"
	helper "kantinku_backend/internals/helpers"
)

type StudentService struct {
	DB        *gorm.DB
	Leftovers *lSvc.LeftoverService
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db, Leftovers: lSvc.NewLeftoverService(db)}
}

// Names ambil daftar ringkas siswa satu sekolah, urut kelas lalu absen.
func (s *StudentService) Names(schoolID uuid.UUID) ([]stDTO.StudentNameResponse, error) {
	var rows []stModel.StudentModel
	if err := s.DB.
		Where("student_school_id = ?", schoolID).
		Order("student_grade ASC, student_class_num ASC, student_number ASC").
		Find(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	list := make([]stDTO.StudentNameResponse, 0, len(rows))
	for i := range rows {
		list = append(list, stDTO.StudentNameResponse{
			StudentID: rows[i].StudentID,
			Name:      rows[i].StudentName,
			Grade:     rows[i].StudentGrade,
			ClassNum:  rows[i].StudentClassNum,
			Number:    rows[i].StudentNumber,
		})
	}
	return list, nil
}

// Detail ambil satu siswa, discope ke sekolah user. Siswa sekolah lain
// diperlakukan sama dengan tidak ada.
func (s *StudentService) Detail(schoolID, studentID uuid.UUID) (*stDTO.StudentDetailResponse, error) {
	student, err := s.findByID(schoolID, studentID)
	if err != nil {
		return nil, err
	}
	return stDTO.NewStudentDetailResponse(student, BMI(student.StudentHeight, student.StudentWeight)), nil
}

// SaveLeftovers menyimpan sisa makanan satu siswa untuk satu tanggal.
// Menu yang belum ada di kalender dibuat on-the-fly (kategori default
// "side") supaya input stasiun baki tidak pernah hilang.
// Return schoolID + tanggal untuk pemicu broadcast live.
func (s *StudentService) SaveLeftovers(schoolID uuid.UUID, req *stDTO.SaveLeftoverRequest) (time.Time, int, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return time.Time{}, 0, helper.ErrInvalidInput
	}

	student, err := s.findByIdentity(schoolID, req.Grade, req.ClassNum, req.Number)
	if err != nil {
		return time.Time{}, 0, err
	}

	saved := 0
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Leftovers {
			menu := menuModel.MenuModel{
				MenuSchoolID: schoolID,
				MenuDate:     date,
				MenuName:     entry.MenuName,
			}
			if err := tx.
				Where("menu_school_id = ? AND menu_date = ? AND menu_name = ?", schoolID, date, entry.MenuName).
				FirstOrCreate(&menu).Error; err != nil {
				return helper.ErrInternal
			}

			row := leftoverModel.LeftoverModel{
				LeftoverStudentID: student.StudentID,
				LeftoverMenuID:    menu.MenuID,
				LeftoverDate:      date,
				LeftoverMenuName:  entry.MenuName,
				LeftoverRate:      entry.Rate,
			}
			// input ulang untuk (siswa, menu, tanggal) menimpa rate lama
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "leftover_student_id"},
					{Name: "leftover_menu_id"},
					{Name: "leftover_date"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"leftover_rate"}),
			}).Create(&row).Error; err != nil {
				return helper.ErrInternal
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return time.Time{}, 0, err
	}

	log.Printf("[INFO] Sisa makanan tersimpan: siswa=%s tanggal=%s (%d menu)",
		student.StudentID, req.Date, saved)
	return date, saved, nil
}

// LeftoversByDate ambil sisa makanan satu siswa di satu tanggal,
// siswa dicari dengan identitas (kelas, absen).
func (s *StudentService) LeftoversByDate(schoolID uuid.UUID, date time.Time, grade, classNum, number int) (*stDTO.StudentLeftoverResponse, error) {
	student, err := s.findByIdentity(schoolID, grade, classNum, number)
	if err != nil {
		return nil, err
	}

	var rows []leftoverModel.LeftoverModel
	if err := s.DB.
		Where("leftover_student_id = ? AND leftover_date = ?", student.StudentID, date).
		Order("leftover_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	entries := make([]stDTO.LeftoverEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, stDTO.LeftoverEntry{MenuName: r.LeftoverMenuName, Rate: r.LeftoverRate})
	}

	return &stDTO.StudentLeftoverResponse{
		Date:      date.Format("2006-01-02"),
		StudentID: student.StudentID,
		Name:      student.StudentName,
		Leftovers: entries,
	}, nil
}

// NFCVerify memverifikasi identitas siswa dari tag di stasiun baki.
// Tidak ketemu bukan error, stasiun butuh jawaban verified=false.
func (s *StudentService) NFCVerify(schoolID uuid.UUID, req *stDTO.NFCVerifyRequest) (*stDTO.NFCVerifyResponse, error) {
	student, err := s.findByIdentity(schoolID, req.Grade, req.ClassNum, req.Number)
	if err != nil {
		if errors.Is(err, helper.ErrStudentNotFound) {
			return &stDTO.NFCVerifyResponse{Verified: false}, nil
		}
		return nil, err
	}
	return &stDTO.NFCVerifyResponse{
		Verified:  true,
		StudentID: student.StudentID,
		Name:      student.StudentName,
	}, nil
}

/* ===================== HELPERS ===================== */

// BMI dari tinggi (cm) dan berat (kg), dibulatkan 2 desimal.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*100) / 100
}

func (s *StudentService) findByID(schoolID, studentID uuid.UUID) (*stModel.StudentModel, error) {
	var student stModel.StudentModel
	if err := s.DB.
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrStudentNotFound
		}
		return nil, helper.ErrInternal
	}
	return &student, nil
}

func (s *StudentService) findByIdentity(schoolID uuid.UUID, grade, classNum, number int) (*stModel.StudentModel, error) {
	var student stModel.StudentModel
	if err := s.DB.
		Where("student_school_id = ? AND student_grade = ? AND student_class_num = ? AND student_number = ?",
			schoolID, grade, classNum, number).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrStudentNotFound
		}
		return nil, helper.ErrInternal
	}
	return &student, nil
}
