// internals/features/users/auth/service/auth_service_test.go
package service

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authDTO "kantinku_backend/internals/features/users/auth/dto"
	helper "kantinku_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestFindID(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT .* FROM "users" JOIN schools`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_login_id", "user_nutritionist_name", "user_school_id"}).
			AddRow(uuid.NewString(), "gizi01", "Bu Sari", uuid.NewString()))

	loginID, err := svc.FindID(&authDTO.FindIDRequest{
		NutritionistName: "Bu Sari",
		SchoolName:       "SDN 1 Menteng",
		SchoolCity:       "Jakarta",
	})
	require.NoError(t, err)
	assert.Equal(t, "gizi01", loginID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT .* FROM "users" JOIN schools`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := svc.FindID(&authDTO.FindIDRequest{
		NutritionistName: "Bu Sari",
		SchoolName:       "SDN 99 Antah",
		SchoolCity:       "Berantah",
	})
	assert.ErrorIs(t, err, helper.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPassword(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	userID := uuid.NewString()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_login_id", "user_password"}).
			AddRow(userID, "gizi01", "hash-lama"))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.NewPassword(&authDTO.NewPasswordRequest{
		LoginID:     "gizi01",
		NewPassword: "rahasia-baru",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewPassword_UnknownLogin(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	err := svc.NewPassword(&authDTO.NewPasswordRequest{
		LoginID:     "tidak-ada",
		NewPassword: "rahasia-baru",
	})
	assert.ErrorIs(t, err, helper.ErrUserNotFound)

	// tidak ada ekspektasi UPDATE: password tidak boleh tersentuh
	assert.NoError(t, mock.ExpectationsWereMet())
}
