// internals/features/leftovers/route/leftover_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lCtrl "kantinku_backend/internals/features/leftovers/controller"
)

// LeftoverRoutes adalah endpoint statistik sisa makanan (butuh auth middleware).
func LeftoverRoutes(r fiber.Router, db *gorm.DB) {
	h := lCtrl.NewLeftoverController(db)

	g := r.Group("/leftover")
	g.Get("/date", h.ByDate)
	g.Get("/month", h.ByMonth)
}
