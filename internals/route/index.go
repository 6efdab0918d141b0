// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kantinku_backend/internals/features/live/hub"
	routeDetails "kantinku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan seluruh endpoint /api/v1.
func SetupRoutes(app *fiber.App, db *gorm.DB, registry hub.Registry) {
	api := app.Group("/api/v1")

	log.Println("[INFO] Setting up PUBLIC routes...")
	routeDetails.PublicRoutes(api, db, registry)

	log.Println("[INFO] Setting up PRIVATE routes...")
	routeDetails.PrivateRoutes(api, db, registry)
}
