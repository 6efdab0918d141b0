// internals/features/live/route/live_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	liveCtrl "kantinku_backend/internals/features/live/controller"
	"kantinku_backend/internals/features/live/hub"
)

// LiveRoutes adalah endpoint dashboard live. Keduanya memvalidasi token
// sendiri di service (bukan lewat auth middleware): EventSource browser
// tidak bisa mengirim header Authorization (fallback cookie), dan vote
// harus gagal 401 sebelum ada mutasi apapun.
func LiveRoutes(r fiber.Router, db *gorm.DB, registry hub.Registry) {
	h := liveCtrl.NewLiveController(db, registry)

	g := r.Group("/sse")
	g.Get("/subscribe", h.Subscribe)
	g.Post("/vote", h.Vote)
}
