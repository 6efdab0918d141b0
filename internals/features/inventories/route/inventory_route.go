// internals/features/inventories/route/inventory_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invCtrl "kantinku_backend/internals/features/inventories/controller"
)

// InventoryRoutes adalah endpoint stok bahan (butuh auth middleware).
func InventoryRoutes(r fiber.Router, db *gorm.DB) {
	h := invCtrl.NewInventoryController(db)

	g := r.Group("/inventory")
	g.Post("/", h.Create)
	g.Get("/month", h.Month)
	g.Get("/:id", h.Detail)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}
