package helper

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderVia(t *testing.T, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return RenderError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(body)
}

func TestRenderError_AppError(t *testing.T) {
	status, body := renderVia(t, ErrMenuNotFound)

	assert.Equal(t, 404, status)
	assert.Contains(t, body, `"M001"`)
	assert.Contains(t, body, "Menu tidak ditemukan")
}

func TestRenderError_FiberError(t *testing.T) {
	status, body := renderVia(t, fiber.NewError(fiber.StatusTeapot, "teko"))

	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Contains(t, body, "teko")
}

func TestRenderError_UnknownError(t *testing.T) {
	status, body := renderVia(t, errors.New("rahasia internal"))

	assert.Equal(t, 500, status)
	assert.Contains(t, body, `"S001"`)
	// detail internal tidak boleh bocor ke klien
	assert.NotContains(t, body, "rahasia")
}

func TestAppErrorTable(t *testing.T) {
	assert.Equal(t, 409, ErrDuplicateUser.Status)
	assert.Equal(t, "C004", ErrDuplicateUser.Code)
	assert.Equal(t, 401, ErrTokenExpired.Status)
	assert.Equal(t, 503, ErrHolidayAPI.Status)
}
