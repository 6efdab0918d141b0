// internals/features/leftovers/dto/leftover_dto.go
package dto

import (
	stats "kantinku_backend/internals/features/statistics/service"
)

/* ===================== RESPONSES ===================== */

type DateLeftoverResponse struct {
	Date  string               `json:"date"`
	Items []stats.LeftoverItem `json:"items"`
}

type DayAverageResponse struct {
	Day     int     `json:"day"`
	Average float64 `json:"average"`
}

type MonthLeftoverResponse struct {
	Year           int                  `json:"year"`
	Month          int                  `json:"month"`
	Days           []DayAverageResponse `json:"days"`
	MonthlyAverage float64              `json:"monthlyAverage"`
}
