// internals/features/menus/service/menu_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	holidayModel "kantinku_backend/internals/features/holidays/model"
	menuDTO "kantinku_backend/internals/features/menus/dto"
	menuModel "kantinku_backend/internals/features/menus/model"
	helper "kantinku_backend/internals/helpers"
)

// Nama hari dalam Bahasa Indonesia, index time.Weekday (Minggu=0).
var weekdayNames = [7]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// Calendar menyusun kalender satu bulan penuh: setiap tanggal membawa
// daftar menu sekolah atau penanda libur beserta nama liburnya.
func (s *MenuService) Calendar(schoolID uuid.UUID, year, month int) (*menuDTO.CalendarResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	type menuRow struct {
		MenuDate time.Time
		MenuName string
	}
	var menuRows []menuRow
	if err := s.DB.Model(&menuModel.MenuModel{}).
		Select("menu_date, menu_name").
		Where("menu_school_id = ? AND menu_date >= ? AND menu_date < ?", schoolID, start, end).
		Order("menu_date ASC, menu_created_at ASC").
		Scan(&menuRows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	var holidayRows []holidayModel.HolidayModel
	if err := s.DB.
		Where("holiday_date >= ? AND holiday_date < ?", start, end).
		Order("holiday_date ASC").
		Find(&holidayRows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	menusByDay := make(map[int][]string)
	for _, r := range menuRows {
		d := r.MenuDate.Day()
		menusByDay[d] = append(menusByDay[d], r.MenuName)
	}
	holidaysByDay := make(map[int][]string)
	for _, r := range holidayRows {
		d := r.HolidayDate.Day()
		holidaysByDay[d] = append(holidaysByDay[d], r.HolidayName)
	}

	lastDay := end.AddDate(0, 0, -1).Day()
	days := make([]menuDTO.CalendarDayResponse, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		menus := menusByDay[d]
		if menus == nil {
			menus = []string{}
		}
		days = append(days, menuDTO.CalendarDayResponse{
			Day:      d,
			Weekday:  weekdayNames[int(date.Weekday())],
			Holiday:  len(holidaysByDay[d]) > 0,
			Holidays: holidaysByDay[d],
			Menus:    menus,
		})
	}

	return &menuDTO.CalendarResponse{Year: year, Month: month, Days: days}, nil
}

// MenusOnDate ambil daftar nama menu (distinct) satu sekolah di satu tanggal.
func (s *MenuService) MenusOnDate(schoolID uuid.UUID, date time.Time) ([]string, error) {
	names := make([]string, 0)
	if err := s.DB.Model(&menuModel.MenuModel{}).
		Distinct("menu_name").
		Where("menu_school_id = ? AND menu_date = ?", schoolID, date).
		Order("menu_name ASC").
		Pluck("menu_name", &names).Error; err != nil {
		return nil, helper.ErrInternal
	}
	return names, nil
}

// MenuRowsOnDate ambil baris menu lengkap (untuk agregasi kepuasan).
func (s *MenuService) MenuRowsOnDate(schoolID uuid.UUID, date time.Time) ([]menuModel.MenuModel, error) {
	var rows []menuModel.MenuModel
	if err := s.DB.
		Where("menu_school_id = ? AND menu_date = ?", schoolID, date).
		Order("menu_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}
	return rows, nil
}
