// internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kantinku_backend/internals/features/live/hub"
	liveRoute "kantinku_backend/internals/features/live/route"
	schoolRoute "kantinku_backend/internals/features/schools/route"
	authRoute "kantinku_backend/internals/features/users/auth/route"
)

// PublicRoutes adalah endpoint tanpa auth middleware: autentikasi,
// referensi sekolah untuk signup, dan jalur SSE (validasi token sendiri).
func PublicRoutes(r fiber.Router, db *gorm.DB, registry hub.Registry) {
	authRoute.AuthRoutes(r, db)
	schoolRoute.SchoolRoutes(r, db)
	liveRoute.LiveRoutes(r, db, registry)
}
