// internals/features/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "kantinku_backend/internals/features/schools/controller"
)

// SchoolRoutes adalah endpoint publik (dipakai form signup sebelum login).
func SchoolRoutes(r fiber.Router, db *gorm.DB) {
	h := sCtrl.NewSchoolController(db)

	g := r.Group("/school")
	g.Get("/cities", h.Cities)
	g.Get("/schools", h.Schools)
}
