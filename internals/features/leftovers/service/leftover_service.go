// internals/features/leftovers/service/leftover_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lDTO "kantinku_backend/internals/features/leftovers/dto"
	stats "kantinku_backend/internals/features/statistics/service"
	helper "kantinku_backend/internals/helpers"
)

type LeftoverService struct {
	DB *gorm.DB
}

func NewLeftoverService(db *gorm.DB) *LeftoverService {
	return &LeftoverService{DB: db}
}

// DailyItems menghitung rata-rata sisa per menu di satu tanggal,
// tersusun sesuai prioritas kategori. Tanpa data → list kosong.
func (s *LeftoverService) DailyItems(schoolID uuid.UUID, date time.Time) ([]stats.LeftoverItem, error) {
	type row struct {
		MenuName string
		Category string
		AvgRate  float64
	}
	var rows []row
	if err := s.DB.Table("leftovers").
		Select("leftovers.leftover_menu_name AS menu_name, menus.menu_category AS category, AVG(leftovers.leftover_rate) AS avg_rate").
		Joins("JOIN menus ON menus.menu_id = leftovers.leftover_menu_id").
		Where("menus.menu_school_id = ? AND leftovers.leftover_date = ?", schoolID, date).
		Group("leftovers.leftover_menu_name, menus.menu_category, menus.menu_created_at").
		Order("menus.menu_created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	items := make([]stats.LeftoverItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, stats.LeftoverItem{
			MenuName:     r.MenuName,
			Category:     r.Category,
			LeftoverRate: stats.Round2(r.AvgRate),
		})
	}
	return stats.FilterLeftoversByPriority(items), nil
}

// Date adalah response endpoint /leftover/date.
func (s *LeftoverService) Date(schoolID uuid.UUID, date time.Time) (*lDTO.DateLeftoverResponse, error) {
	items, err := s.DailyItems(schoolID, date)
	if err != nil {
		return nil, err
	}
	return &lDTO.DateLeftoverResponse{
		Date:  date.Format("2006-01-02"),
		Items: items,
	}, nil
}

// Month menghitung rata-rata sisa per hari dalam satu bulan. Hari tanpa
// data diisi 0 supaya grafik klien selalu penuh; rata-rata bulanan hanya
// dari hari yang punya data.
func (s *LeftoverService) Month(schoolID uuid.UUID, year, month int) (*lDTO.MonthLeftoverResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	type row struct {
		Date    time.Time
		AvgRate float64
	}
	var rows []row
	if err := s.DB.Table("leftovers").
		Select("leftovers.leftover_date AS date, AVG(leftovers.leftover_rate) AS avg_rate").
		Joins("JOIN menus ON menus.menu_id = leftovers.leftover_menu_id").
		Where("menus.menu_school_id = ? AND leftovers.leftover_date >= ? AND leftovers.leftover_date < ?",
			schoolID, start, end).
		Group("leftovers.leftover_date").
		Order("leftovers.leftover_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	byDay := make(map[int]float64, len(rows))
	sum := 0.0
	for _, r := range rows {
		byDay[r.Date.Day()] = stats.Round2(r.AvgRate)
		sum += r.AvgRate
	}

	lastDay := end.AddDate(0, 0, -1).Day()
	days := make([]lDTO.DayAverageResponse, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		days = append(days, lDTO.DayAverageResponse{Day: d, Average: byDay[d]})
	}

	monthly := 0.0
	if len(rows) > 0 {
		monthly = stats.Round2(sum / float64(len(rows)))
	}

	return &lDTO.MonthLeftoverResponse{
		Year:           year,
		Month:          month,
		Days:           days,
		MonthlyAverage: monthly,
	}, nil
}

// WeekSamples ambil baris sisa makanan mentah 7 hari ke belakang untuk
// satu siswa (dipakai laporan kesehatan dan ranking menu).
func (s *LeftoverService) WeekSamples(studentID uuid.UUID, until time.Time) ([]stats.RateSample, error) {
	from := until.AddDate(0, 0, -6)

	type row struct {
		MenuName string
		Category string
		Rate     float64
	}
	var rows []row
	if err := s.DB.Table("leftovers").
		Select("leftovers.leftover_menu_name AS menu_name, menus.menu_category AS category, leftovers.leftover_rate AS rate").
		Joins("JOIN menus ON menus.menu_id = leftovers.leftover_menu_id").
		Where("leftovers.leftover_student_id = ? AND leftovers.leftover_date >= ? AND leftovers.leftover_date <= ?",
			studentID, from, until).
		Order("leftovers.leftover_date ASC, leftovers.leftover_created_at ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	samples := make([]stats.RateSample, 0, len(rows))
	for _, r := range rows {
		samples = append(samples, stats.RateSample{
			MenuName: r.MenuName,
			Category: r.Category,
			Rate:     r.Rate,
		})
	}
	return samples, nil
}
