// internals/features/live/dto/live_dto.go
package dto

import (
	stats "kantinku_backend/internals/features/statistics/service"
)

/* ===================== REQUESTS ===================== */

// VoteRequest adalah suara kepuasan dari kios siswa (tanpa login,
// identitas sekolah dikirim sebagai nama).
type VoteRequest struct {
	SchoolName        string `json:"schoolName" validate:"required,min=2"`
	MenuName          string `json:"menuname" validate:"required,min=1"`
	SatisfactionScore int    `json:"satisfactionScore" validate:"required,gte=1,lte=5"`
}

/* ===================== RESPONSES / EVENT PAYLOADS ===================== */

type VoteResponse struct {
	Satisfactions []stats.SatisfactionItem `json:"satisfactions"`
}

type ConnectPayload struct {
	ConnID     string `json:"connId"`
	SchoolName string `json:"schoolName"`
}
