// internals/features/live/service/live_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kantinku_backend/internals/constants"
	lSvc "kantinku_backend/internals/features/leftovers/service"
	liveDTO "kantinku_backend/internals/features/live/dto"
	"kantinku_backend/internals/features/live/hub"
	menuModel "kantinku_backend/internals/features/menus/model"
	menuSvc "kantinku_backend/internals/features/menus/service"
	sModel "kantinku_backend/internals/features/schools/model"
	stats "kantinku_backend/internals/features/statistics/service"
	helper "kantinku_backend/internals/helpers"
	authHelper "kantinku_backend/internals/helpers/auth"
)

// ConnTimeout menutup koneksi SSE yang hidup terlalu lama; klien
// diharapkan subscribe ulang.
const ConnTimeout = time.Hour

type LiveService struct {
	DB        *gorm.DB
	Hub       hub.Registry
	Menus     *menuSvc.MenuService
	Leftovers *lSvc.LeftoverService
}

func NewLiveService(db *gorm.DB, registry hub.Registry) *LiveService {
	return &LiveService{
		DB:        db,
		Hub:       registry,
		Menus:     menuSvc.NewMenuService(db),
		Leftovers: lSvc.NewLeftoverService(db),
	}
}

// Subscribe mendaftarkan satu koneksi dashboard untuk sekolah tertentu.
// Token tidak valid → gagal 401 sebelum apapun terdaftar. Setelah
// terdaftar, event "connect" dikirim, lalu snapshot awal best-effort:
// gagalnya satu snapshot tidak membatalkan sisanya.
func (s *LiveService) Subscribe(token, schoolName string) (*hub.Conn, error) {
	if !authHelper.ValidateToken(token) {
		return nil, helper.ErrUnauthorized
	}

	school, err := s.schoolByName(schoolName)
	if err != nil {
		return nil, err
	}

	connID := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
	conn := hub.NewConn(connID, school.SchoolID)
	s.Hub.Register(conn)

	conn.SetExpiry(time.AfterFunc(ConnTimeout, func() {
		s.Hub.Remove(conn)
	}))

	conn.Push(hub.Event{Name: "connect", Data: liveDTO.ConnectPayload{
		ConnID:     connID,
		SchoolName: school.SchoolName,
	}})

	today := dateOnly(time.Now())
	if items, err := s.satisfactionItems(school.SchoolID, today); err == nil {
		conn.Push(hub.Event{Name: "initial-satisfaction", Data: items})
	} else {
		log.Printf("[ERROR] Snapshot kepuasan awal gagal: %v", err)
	}
	if items, err := s.Leftovers.DailyItems(school.SchoolID, today); err == nil {
		conn.Push(hub.Event{Name: "initial-leftover", Data: items})
		conn.Push(hub.Event{Name: "initial-completion-rate", Data: stats.ToCompletionItems(items)})
	} else {
		log.Printf("[ERROR] Snapshot sisa makanan awal gagal: %v", err)
	}

	return conn, nil
}

// ProcessVote memproses suara kepuasan dari kios. Token tidak valid →
// 401 sebelum query apapun. Menu harus ada di daftar hari ini (kalau
// tidak → 404, tidak ada yang berubah), lalu akumulasi dinaikkan atomik
// satu baris, daftar kepuasan dihitung ulang, dan di-broadcast ke
// dashboard sekolah itu saja.
func (s *LiveService) ProcessVote(token string, req *liveDTO.VoteRequest) ([]stats.SatisfactionItem, error) {
	if !authHelper.ValidateToken(token) {
		return nil, helper.ErrUnauthorized
	}

	school, err := s.schoolByName(req.SchoolName)
	if err != nil {
		return nil, err
	}

	today := dateOnly(time.Now())
	var menu menuModel.MenuModel
	if err := s.DB.
		Where("menu_school_id = ? AND menu_date = ? AND menu_name = ?",
			school.SchoolID, today, req.MenuName).
		First(&menu).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrMenuNotFound
		}
		return nil, helper.ErrInternal
	}

	if err := s.DB.Model(&menuModel.MenuModel{}).
		Where("menu_id = ?", menu.MenuID).
		Updates(map[string]interface{}{
			"menu_vote_count":  gorm.Expr("menu_vote_count + 1"),
			"menu_total_score": gorm.Expr("menu_total_score + ?", req.SatisfactionScore),
		}).Error; err != nil {
		return nil, helper.ErrInternal
	}

	items, err := s.satisfactionItems(school.SchoolID, today)
	if err != nil {
		return nil, err
	}

	s.Hub.Broadcast(school.SchoolID, hub.Event{Name: "satisfaction-update", Data: items})
	return items, nil
}

// PushLeftoverUpdate broadcast statistik sisa makanan terbaru setelah
// input stasiun baki. Kegagalan hanya dicatat, operasi penyimpanan
// sudah selesai dan tidak boleh ikut gagal.
func (s *LiveService) PushLeftoverUpdate(schoolID uuid.UUID, date time.Time) {
	items, err := s.Leftovers.DailyItems(schoolID, date)
	if err != nil {
		log.Printf("[ERROR] Hitung ulang sisa makanan untuk broadcast gagal: %v", err)
		return
	}

	s.Hub.Broadcast(schoolID, hub.Event{Name: "leftover-update", Data: items})
	s.Hub.Broadcast(schoolID, hub.Event{Name: "completion-rate-update", Data: stats.ToCompletionItems(items)})
}

/* ===================== HELPERS ===================== */

// schoolByName resolve sekolah dari nama yang dikirim kios.
// Nama sekolah bisa kembar antar kota; baris pertama (terlama) yang
// dipakai.
func (s *LiveService) schoolByName(name string) (*sModel.SchoolModel, error) {
	var school sModel.SchoolModel
	if err := s.DB.
		Where("school_name = ?", strings.TrimSpace(name)).
		Order("school_created_at ASC").
		First(&school).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrSchoolNotFound
		}
		return nil, helper.ErrInternal
	}
	return &school, nil
}

func (s *LiveService) satisfactionItems(schoolID uuid.UUID, date time.Time) ([]stats.SatisfactionItem, error) {
	rows, err := s.Menus.MenuRowsOnDate(schoolID, date)
	if err != nil {
		return nil, err
	}

	menus := make([]stats.MenuStat, 0, len(rows))
	for _, r := range rows {
		menus = append(menus, stats.MenuStat{
			MenuName:   r.MenuName,
			Category:   constants.MenuCategory(r.MenuCategory),
			VoteCount:  r.MenuVoteCount,
			TotalScore: r.MenuTotalScore,
		})
	}
	return stats.FilterByPriority(menus), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
