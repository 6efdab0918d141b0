// internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stCtrl "kantinku_backend/internals/features/students/controller"
)

// StudentRoutes adalah endpoint siswa (butuh auth middleware).
// notifier boleh nil bila hub live belum aktif.
func StudentRoutes(r fiber.Router, db *gorm.DB, notifier stCtrl.LeftoverNotifier) {
	h := stCtrl.NewStudentController(db, notifier)

	g := r.Group("/student")
	g.Get("/", h.Names)
	g.Post("/leftover", h.SaveLeftovers)
	g.Get("/leftover", h.LeftoversByDate)
	g.Post("/nfc", h.NFCVerify)
	g.Get("/:id", h.Detail)
	g.Post("/:id/health-report", h.HealthReport)
}
