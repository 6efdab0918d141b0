// internals/features/holidays/service/holiday_scheduler.go
package service

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// StartHolidayCron menjadwalkan refresh kalender libur:
// sekali saat startup (tahun berjalan), lalu tiap 1 Januari 00:30 untuk
// tahun baru. Return cron supaya bisa di-Stop saat shutdown.
func StartHolidayCron(svc *HolidayService) *cron.Cron {
	go svc.RefreshYear(time.Now().Year())

	c := cron.New()
	_, err := c.AddFunc("30 0 1 1 *", func() {
		year := time.Now().Year()
		log.Printf("[INFO] Cron tahunan: refresh kalender libur %d", year)
		svc.RefreshYear(year)
	})
	if err != nil {
		log.Printf("[ERROR] Gagal mendaftar cron libur: %v", err)
		return c
	}

	c.Start()
	log.Println("⏰ Cron refresh kalender libur aktif")
	return c
}
