// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "kantinku_backend/internals/features/users/auth/controller"
	"kantinku_backend/internals/middlewares"
)

// AuthRoutes adalah endpoint autentikasi publik (tanpa auth middleware).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	h := authCtrl.NewAuthController(db)

	g := r.Group("/user")
	g.Post("/signup", middlewares.SignupRateLimiter(), h.Signup)
	g.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	g.Post("/refresh", h.Refresh)
	g.Delete("/logout", h.Logout)
	g.Post("/validate-id", h.ValidateID)
	g.Post("/find-id", h.FindID)
	g.Post("/new-password", h.NewPassword)
	g.Get("/validate-token", h.ValidateToken)
}
