// internals/features/live/controller/live_controller.go
package controller

import (
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"gorm.io/gorm"

	liveDTO "kantinku_backend/internals/features/live/dto"
	"kantinku_backend/internals/features/live/hub"
	liveSvc "kantinku_backend/internals/features/live/service"
	helper "kantinku_backend/internals/helpers"
)

var validate = validator.New()

type LiveController struct {
	Service  *liveSvc.LiveService
	Registry hub.Registry
}

func NewLiveController(db *gorm.DB, registry hub.Registry) *LiveController {
	return &LiveController{
		Service:  liveSvc.NewLiveService(db, registry),
		Registry: registry,
	}
}

/* ===================== HANDLERS ===================== */

// GET /api/v1/sse/subscribe?schoolName=
// Stream text/event-stream; koneksi hidup sampai klien putus, gagal
// kirim, atau timeout server.
func (h *LiveController) Subscribe(c *fiber.Ctx) error {
	schoolName := c.Query("schoolName")
	if schoolName == "" {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}

	conn, err := h.Service.Subscribe(helper.GetRawAccessToken(c), schoolName)
	if err != nil {
		return helper.RenderError(c, err)
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	registry := h.Registry
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer registry.Remove(conn)

		for {
			select {
			case ev := <-conn.Events():
				if err := writeSSE(w, ev); err != nil {
					log.Printf("[INFO] SSE klien putus: conn=%s", conn.ID)
					return
				}
			case <-conn.Done():
				return
			}
		}
	}))

	return nil
}

// POST /api/v1/sse/vote
func (h *LiveController) Vote(c *fiber.Ctx) error {
	var req liveDTO.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.RenderError(c, helper.ErrInvalidInput)
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	items, err := h.Service.ProcessVote(helper.GetRawAccessToken(c), &req)
	if err != nil {
		return helper.RenderError(c, err)
	}
	return helper.Success(c, liveDTO.VoteResponse{Satisfactions: items})
}

/* ===================== HELPERS ===================== */

// writeSSE tulis satu event dengan framing "event:"/"data:" lalu flush.
func writeSSE(w *bufio.Writer, ev hub.Event) error {
	payload, err := sonic.Marshal(ev.Data)
	if err != nil {
		payload = []byte(fmt.Sprintf("%q", time.Now().Format(time.RFC3339)))
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, payload); err != nil {
		return err
	}
	return w.Flush()
}
