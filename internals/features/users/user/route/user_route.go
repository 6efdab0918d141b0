// internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	uCtrl "kantinku_backend/internals/features/users/user/controller"
)

// UserRoutes adalah endpoint profil (butuh auth middleware di group induk).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	h := uCtrl.NewUserController(db)

	g := r.Group("/user")
	g.Get("/profile", h.Profile)
	g.Put("/profile", h.UpdateProfile)
}
