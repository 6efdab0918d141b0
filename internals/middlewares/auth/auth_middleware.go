// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "kantinku_backend/internals/helpers"
	helpersAuth "kantinku_backend/internals/helpers/auth"
)

// AuthMiddleware memverifikasi bearer token (header atau cookie) dan
// menyimpan user_id + raw token ke Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.RenderError(c, helper.ErrUnauthorized)
		}

		claims, err := helpersAuth.ParseAccessToken(tokenString)
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.RenderError(c, err)
		}

		userID, err := helpersAuth.UserIDFromClaims(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return helper.RenderError(c, err)
		}

		c.Locals("user_id", userID.String())
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
