// internals/features/holidays/dto/holiday_dto.go
package dto

import (
	"time"

	hModel "kantinku_backend/internals/features/holidays/model"
)

/* ===================== RESPONSES ===================== */

type HolidayResponse struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

func NewHolidayResponse(m *hModel.HolidayModel) HolidayResponse {
	return HolidayResponse{Date: m.HolidayDate, Name: m.HolidayName}
}

type HolidayListResponse struct {
	Year     int               `json:"year"`
	Month    int               `json:"month"`
	Holidays []HolidayResponse `json:"holidays"`
}

type FetchResultResponse struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
}
