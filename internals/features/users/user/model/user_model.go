// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	schoolModel "kantinku_backend/internals/features/schools/model"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users (akun ahli gizi sekolah).
type UserModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserLoginID          string    `gorm:"type:varchar(50);unique;not null;column:user_login_id" json:"user_login_id" validate:"required,min=4,max=50"`
	UserPassword         string    `gorm:"not null;column:user_password" json:"-" validate:"required,min=8"`
	UserNutritionistName string    `gorm:"type:varchar(60);not null;column:user_nutritionist_name" json:"user_nutritionist_name" validate:"required,min=2,max=60"`

	UserSchoolID uuid.UUID               `gorm:"type:uuid;not null;column:user_school_id" json:"user_school_id"`
	School       *schoolModel.SchoolModel `gorm:"foreignKey:UserSchoolID;references:SchoolID" json:"school,omitempty"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	return validate.Struct(u)
}
