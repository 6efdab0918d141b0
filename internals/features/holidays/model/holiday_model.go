// internals/features/holidays/model/holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// HolidayModel menyimpan hari libur nasional dari API kalender publik.
// Kunci dedup: (tanggal, nama), dua libur berbeda boleh jatuh di tanggal sama.
// Baris tidak pernah dihapus oleh logika aplikasi.
type HolidayModel struct {
	HolidayID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:holiday_id" json:"holiday_id"`
	HolidayDate time.Time `gorm:"type:date;not null;column:holiday_date;uniqueIndex:uq_holiday_date_name" json:"holiday_date"`
	HolidayName string    `gorm:"type:varchar(60);not null;column:holiday_name;uniqueIndex:uq_holiday_date_name" json:"holiday_name"`

	HolidayCreatedAt time.Time `gorm:"column:holiday_created_at;autoCreateTime" json:"holiday_created_at"`
}

func (HolidayModel) TableName() string { return "holidays" }
