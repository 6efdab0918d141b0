// internals/features/live/service/live_service_test.go
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

	"kantinku_backend/internals/configs"
	liveDTO "kantinku_backend/internals/features/live/dto"
	"kantinku_backend/internals/features/live/hub"
	helper "kantinku_backend/internals/helpers"
	authHelper "kantinku_backend/internals/helpers/auth"
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

func validToken(t *testing.T) string {
	t.Helper()
	configs.JWTSecret = "unit-test-secret"
	token, err := authHelper.CreateAccessToken(uuid.New(), "gizi01")
	require.NoError(t, err)
	return token
}

func voteReq(score int) *liveDTO.VoteRequest {
	return &liveDTO.VoteRequest{
		SchoolName:        "SDN 1 Menteng",
		MenuName:          "nasi putih",
		SatisfactionScore: score,
	}
}

// Vote tanpa token valid harus gagal 401 sebelum query apapun berjalan.
func TestProcessVote_RejectsWithoutToken(t *testing.T) {
	db, mock := newMockDB(t)
	configs.JWTSecret = "unit-test-secret"
	svc := NewLiveService(db, hub.NewSchoolHub())

	_, err := svc.ProcessVote("", voteReq(5))
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	_, err = svc.ProcessVote("bukan.token.valid", voteReq(5))
	assert.ErrorIs(t, err, helper.ErrUnauthorized)

	// tidak ada ekspektasi query: DB tidak boleh tersentuh sama sekali
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessVote_TodayMenu(t *testing.T) {
	db, mock := newMockDB(t)
	registry := hub.NewSchoolHub()
	svc := NewLiveService(db, registry)
	token := validToken(t)

	schoolID := uuid.New()
	menuID := uuid.New()

	menuCols := []string{
		"menu_id", "menu_school_id", "menu_name",
		"menu_category", "menu_vote_count", "menu_total_score",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "schools"`)).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name", "school_city"}).
			AddRow(schoolID.String(), "SDN 1 Menteng", "Jakarta"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menus"`)).
		WillReturnRows(sqlmock.NewRows(menuCols).
			AddRow(menuID.String(), schoolID.String(), "nasi putih", "rice", 0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "menus"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menus"`)).
		WillReturnRows(sqlmock.NewRows(menuCols).
			AddRow(menuID.String(), schoolID.String(), "nasi putih", "rice", 1, 5))

	// dashboard sekolah yang sama harus ikut menerima hasilnya
	conn := hub.NewConn("c1", schoolID)
	registry.Register(conn)

	items, err := svc.ProcessVote(token, voteReq(5))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "nasi putih", items[0].MenuName)
	assert.Equal(t, 1, items[0].VoteCount)
	assert.Equal(t, "5", items[0].AverageSatisfaction)

	select {
	case ev := <-conn.Events():
		assert.Equal(t, "satisfaction-update", ev.Name)
	default:
		t.Fatal("event satisfaction-update tidak terkirim ke dashboard")
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Menu yang tidak ada di daftar hari ini → 404, tidak ada baris berubah.
func TestProcessVote_MenuNotToday(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLiveService(db, hub.NewSchoolHub())
	token := validToken(t)

	schoolID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "schools"`)).
		WillReturnRows(sqlmock.NewRows([]string{"school_id", "school_name", "school_city"}).
			AddRow(schoolID.String(), "SDN 1 Menteng", "Jakarta"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "menus"`)).
		WillReturnRows(sqlmock.NewRows([]string{"menu_id"}))

	_, err := svc.ProcessVote(token, voteReq(4))
	assert.ErrorIs(t, err, helper.ErrMenuNotFound)

	// tidak ada ekspektasi UPDATE: mutasi tidak boleh terjadi
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessVote_UnknownSchool(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewLiveService(db, hub.NewSchoolHub())
	token := validToken(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "schools"`)).
		WillReturnRows(sqlmock.NewRows([]string{"school_id"}))

	_, err := svc.ProcessVote(token, voteReq(3))
	assert.ErrorIs(t, err, helper.ErrSchoolNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
