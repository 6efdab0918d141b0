package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError adalah error terstruktur untuk response API:
// {status:int, code:string, message:string}
type AppError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Tabel kode error, satu tempat, dipakai semua service.
var (
	// Auth (400-499)
	ErrInvalidLogin  = NewAppError(400, "C001", "Informasi login salah.")
	ErrUserNotFound  = NewAppError(404, "C002", "Pengguna tidak ditemukan.")
	ErrDuplicateUser = NewAppError(409, "C004", "Login ID sudah terdaftar.")
	ErrUnauthorized  = NewAppError(401, "C005", "Akses tidak terautentikasi.")

	// Token (400-499)
	ErrRefreshTokenNotFound = NewAppError(401, "T001", "Refresh token tidak ada.")
	ErrInvalidRefreshToken  = NewAppError(401, "T002", "Refresh token tidak valid.")
	ErrTokenExpired         = NewAppError(401, "T003", "Token sudah kadaluarsa.")
	ErrInvalidToken         = NewAppError(401, "T004", "Token tidak valid.")

	// Validasi
	ErrInvalidInput = NewAppError(400, "V001", "Input tidak valid.")

	// Akses
	ErrForbidden = NewAppError(403, "A001", "Tidak punya hak akses.")

	// Domain
	ErrSchoolNotFound    = NewAppError(404, "SC001", "Sekolah tidak ditemukan.")
	ErrStudentNotFound   = NewAppError(404, "ST001", "Siswa tidak ditemukan.")
	ErrMenuNotFound      = NewAppError(404, "M001", "Menu tidak ditemukan.")
	ErrInventoryNotFound = NewAppError(404, "IV001", "Data stok tidak ditemukan.")

	// Upstream
	ErrHolidayAPI = NewAppError(503, "H001", "Gagal memanggil API kalender libur.")
	ErrAIServer   = NewAppError(500, "AI001", "Gagal berkomunikasi dengan server AI.")

	// Server
	ErrInternal = NewAppError(500, "S001", "Terjadi kesalahan internal server.")
)

// RenderError menulis error apapun sebagai body {status, code, message}.
// *AppError dipakai apa adanya; *fiber.Error dipetakan ke kode generik;
// sisanya jatuh ke 500 tanpa membocorkan detail internal.
func RenderError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(appErr)
	}
	var fibErr *fiber.Error
	if errors.As(err, &fibErr) {
		return c.Status(fibErr.Code).JSON(&AppError{
			Status:  fibErr.Code,
			Code:    "S001",
			Message: fibErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(ErrInternal)
}
