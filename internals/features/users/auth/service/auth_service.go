// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	sModel "kantinku_backend/internals/features/schools/model"
	authDTO "kantinku_backend/internals/features/users/auth/dto"
	uModel "kantinku_backend/internals/features/users/user/model"
	helper "kantinku_backend/internals/helpers"
	authHelper "kantinku_backend/internals/helpers/auth"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Signup mendaftarkan akun ahli gizi. Sekolah dibuat lazy saat pasangan
// (nama, kota) belum ada. Login ID duplikat → 409.
func (s *AuthService) Signup(req *authDTO.SignupRequest) (*authDTO.UserSummaryResponse, error) {
	loginID := strings.TrimSpace(req.LoginID)

	var count int64
	if err := s.DB.Model(&uModel.UserModel{}).
		Where("user_login_id = ?", loginID).
		Count(&count).Error; err != nil {
		return nil, helper.ErrInternal
	}
	if count > 0 {
		return nil, helper.ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, helper.ErrInternal
	}

	var user uModel.UserModel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		school, err := s.findOrCreateSchool(tx, req.SchoolName, req.SchoolCity, req.SchoolType)
		if err != nil {
			return err
		}

		user = uModel.UserModel{
			UserLoginID:          loginID,
			UserPassword:         string(hashed),
			UserNutritionistName: strings.TrimSpace(req.NutritionistName),
			UserSchoolID:         school.SchoolID,
		}
		if err := tx.Create(&user).Error; err != nil {
			return helper.ErrInternal
		}
		user.School = school
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Signup berhasil: %s (%s)", user.UserLoginID, user.UserNutritionistName)
	return authDTO.NewUserSummaryResponse(&user), nil
}

// Login memverifikasi kredensial dan menerbitkan pasangan token.
// Kredensial salah selalu dijawab error yang sama (tidak membedakan
// login id salah vs password salah).
func (s *AuthService) Login(req *authDTO.LoginRequest) (*uModel.UserModel, string, string, error) {
	var user uModel.UserModel
	if err := s.DB.Preload("School").
		Where("user_login_id = ?", strings.TrimSpace(req.LoginID)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", helper.ErrInvalidLogin
		}
		return nil, "", "", helper.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return nil, "", "", helper.ErrInvalidLogin
	}

	access, err := authHelper.CreateAccessToken(user.UserID, user.UserLoginID)
	if err != nil {
		return nil, "", "", err
	}
	refresh, err := authHelper.CreateRefreshToken(user.UserID, user.UserLoginID)
	if err != nil {
		return nil, "", "", err
	}

	return &user, access, refresh, nil
}

// Refresh menukar refresh token yang masih valid dengan access token baru.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", helper.ErrRefreshTokenNotFound
	}

	claims, err := authHelper.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", helper.ErrInvalidRefreshToken
	}
	userID, err := authHelper.UserIDFromClaims(claims)
	if err != nil {
		return "", helper.ErrInvalidRefreshToken
	}

	// pastikan user masih ada
	var user uModel.UserModel
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", helper.ErrUserNotFound
		}
		return "", helper.ErrInternal
	}

	return authHelper.CreateAccessToken(user.UserID, user.UserLoginID)
}

// ValidateID cek ketersediaan login id untuk form signup.
func (s *AuthService) ValidateID(loginID string) (bool, error) {
	var count int64
	if err := s.DB.Model(&uModel.UserModel{}).
		Where("user_login_id = ?", strings.TrimSpace(loginID)).
		Count(&count).Error; err != nil {
		return false, helper.ErrInternal
	}
	return count == 0, nil
}

// FindID mencari login id dari nama ahli gizi + identitas sekolahnya,
// untuk form lupa-ID. Tidak ketemu → 404.
func (s *AuthService) FindID(req *authDTO.FindIDRequest) (string, error) {
	var user uModel.UserModel
	err := s.DB.
		Joins("JOIN schools ON schools.school_id = users.user_school_id").
		Where("users.user_nutritionist_name = ? AND schools.school_name = ? AND schools.school_city = ?",
			strings.TrimSpace(req.NutritionistName),
			strings.TrimSpace(req.SchoolName),
			strings.TrimSpace(req.SchoolCity)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", helper.ErrUserNotFound
		}
		return "", helper.ErrInternal
	}
	return user.UserLoginID, nil
}

// NewPassword mengganti password akun; hash lama langsung ditimpa.
func (s *AuthService) NewPassword(req *authDTO.NewPasswordRequest) error {
	var user uModel.UserModel
	if err := s.DB.
		Where("user_login_id = ?", strings.TrimSpace(req.LoginID)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.ErrUserNotFound
		}
		return helper.ErrInternal
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.ErrInternal
	}

	if err := s.DB.Model(&uModel.UserModel{}).
		Where("user_id = ?", user.UserID).
		Update("user_password", string(hashed)).Error; err != nil {
		return helper.ErrInternal
	}

	log.Printf("[INFO] Password diganti: %s", user.UserLoginID)
	return nil
}

func (s *AuthService) findOrCreateSchool(tx *gorm.DB, name, city string, schoolType *string) (*sModel.SchoolModel, error) {
	name = strings.TrimSpace(name)
	city = strings.TrimSpace(city)

	var school sModel.SchoolModel
	err := tx.Where("school_name = ? AND school_city = ?", name, city).First(&school).Error
	if err == nil {
		return &school, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInternal
	}

	school = sModel.SchoolModel{
		SchoolName: name,
		SchoolCity: city,
		SchoolType: schoolType,
	}
	if err := tx.Create(&school).Error; err != nil {
		return nil, helper.ErrInternal
	}
	log.Printf("[INFO] Sekolah baru dibuat: %s (%s)", name, city)
	return &school, nil
}
