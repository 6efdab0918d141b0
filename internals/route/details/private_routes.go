// internals/route/details/private_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayRoute "kantinku_backend/internals/features/holidays/route"
	invRoute "kantinku_backend/internals/features/inventories/route"
	leftoverRoute "kantinku_backend/internals/features/leftovers/route"
	"kantinku_backend/internals/features/live/hub"
	liveSvc "kantinku_backend/internals/features/live/service"
	menuRoute "kantinku_backend/internals/features/menus/route"
	studentRoute "kantinku_backend/internals/features/students/route"
	userRoute "kantinku_backend/internals/features/users/user/route"
	authMiddleware "kantinku_backend/internals/middlewares/auth"
)

// PrivateRoutes adalah endpoint di belakang auth middleware (JWT wajib).
func PrivateRoutes(r fiber.Router, db *gorm.DB, registry hub.Registry) {
	private := r.Group("", authMiddleware.AuthMiddleware())

	userRoute.UserRoutes(private, db)
	menuRoute.MenuRoutes(private, db)
	holidayRoute.HolidayRoutes(private, db)
	invRoute.InventoryRoutes(private, db)
	leftoverRoute.LeftoverRoutes(private, db)

	// simpan sisa makanan memicu broadcast dashboard live
	notifier := liveSvc.NewLiveService(db, registry)
	studentRoute.StudentRoutes(private, db, notifier)
}
