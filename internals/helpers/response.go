package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ✅ Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, data)
}

// ✅ Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// ✅ Khusus error validasi (validator.v10), dipetakan ke V001
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return RenderError(c, ErrInvalidInput)
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  fiber.StatusBadRequest,
		"code":    ErrInvalidInput.Code,
		"message": ErrInvalidInput.Message,
		"errors":  errorsMap,
	})
}
