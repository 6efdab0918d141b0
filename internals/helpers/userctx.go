package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurrentUserID ambil user_id dari Locals (diset auth middleware).
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

// SchoolIDOfUser resolve sekolah milik user login. Semua data domain
// (menu, siswa, stok) selalu discope ke sekolah ini.
func SchoolIDOfUser(db *gorm.DB, userID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		UserSchoolID uuid.UUID
	}
	err := db.Table("users").
		Select("user_school_id").
		Where("user_id = ?", userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, ErrInternal
	}
	return row.UserSchoolID, nil
}

// CurrentSchoolID gabungan CurrentUserID + SchoolIDOfUser.
func CurrentSchoolID(c *fiber.Ctx, db *gorm.DB) (uuid.UUID, error) {
	userID, err := CurrentUserID(c)
	if err != nil {
		return uuid.Nil, err
	}
	return SchoolIDOfUser(db, userID)
}
