// internals/features/holidays/route/holiday_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	hCtrl "kantinku_backend/internals/features/holidays/controller"
)

// HolidayRoutes adalah endpoint kalender libur (butuh auth middleware).
func HolidayRoutes(r fiber.Router, db *gorm.DB) {
	h := hCtrl.NewHolidayController(db)

	g := r.Group("/holidays")
	g.Get("/", h.Month)
	g.Post("/fetch", h.Fetch)
}
