// internals/features/menus/route/menu_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	menuCtrl "kantinku_backend/internals/features/menus/controller"
)

// MenuRoutes adalah endpoint kalender menu (butuh auth middleware).
func MenuRoutes(r fiber.Router, db *gorm.DB) {
	h := menuCtrl.NewMenuController(db)

	g := r.Group("/menu")
	g.Get("/calendar", h.Calendar)
	g.Get("/today", h.Today)
	g.Get("/oneday", h.OneDay)
}
