// internals/features/holidays/service/holiday_service.go
package service

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"gorm.io/gorm"

	"kantinku_backend/internals/configs"
	hDTO "kantinku_backend/internals/features/holidays/dto"
	hModel "kantinku_backend/internals/features/holidays/model"
	helper "kantinku_backend/internals/helpers"
)

// holidayFeed memetakan body XML API kalender publik.
type holidayFeed struct {
	XMLName xml.Name      `xml:"response"`
	Items   []holidayItem `xml:"body>items>item"`
}

type holidayItem struct {
	Name    string `xml:"dateName"`
	LocDate string `xml:"locdate"` // yyyyMMdd
	Kind    string `xml:"dateKind"`
}

type HolidayService struct {
	DB     *gorm.DB
	Client *http.Client
}

func NewHolidayService(db *gorm.DB) *HolidayService {
	return &HolidayService{
		DB:     db,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchMonth menarik daftar libur satu bulan dari API publik lalu upsert
// per (tanggal, nama). Baris lama tidak pernah dihapus.
func (s *HolidayService) FetchMonth(year, month int) (*hDTO.FetchResultResponse, error) {
	items, err := s.callAPI(year, month)
	if err != nil {
		return nil, err
	}

	inserted := 0
	for _, it := range items {
		date, err := time.Parse("20060102", it.LocDate)
		if err != nil {
			log.Printf("[ERROR] Format tanggal libur tidak dikenal: %q", it.LocDate)
			continue
		}

		row := hModel.HolidayModel{HolidayDate: date, HolidayName: it.Name}
		res := s.DB.Where("holiday_date = ? AND holiday_name = ?", date, it.Name).
			FirstOrCreate(&row)
		if res.Error != nil {
			return nil, helper.ErrInternal
		}
		if res.RowsAffected > 0 {
			inserted++
		}
	}

	log.Printf("[INFO] Libur %d-%02d: %d dari API, %d baru", year, month, len(items), inserted)
	return &hDTO.FetchResultResponse{Fetched: len(items), Inserted: inserted}, nil
}

// Month ambil daftar libur satu bulan dari DB, urut tanggal naik.
func (s *HolidayService) Month(year, month int) (*hDTO.HolidayListResponse, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []hModel.HolidayModel
	if err := s.DB.
		Where("holiday_date >= ? AND holiday_date < ?", start, end).
		Order("holiday_date ASC").
		Find(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	list := make([]hDTO.HolidayResponse, 0, len(rows))
	for i := range rows {
		list = append(list, hDTO.NewHolidayResponse(&rows[i]))
	}
	return &hDTO.HolidayListResponse{Year: year, Month: month, Holidays: list}, nil
}

// RefreshYear tarik 12 bulan sekaligus (dipakai cron tahunan + startup).
func (s *HolidayService) RefreshYear(year int) {
	for m := 1; m <= 12; m++ {
		if _, err := s.FetchMonth(year, m); err != nil {
			log.Printf("[ERROR] Refresh libur %d-%02d gagal: %v", year, m, err)
		}
	}
}

func (s *HolidayService) callAPI(year, month int) ([]holidayItem, error) {
	if configs.HolidayAPIKey == "" {
		return nil, helper.ErrHolidayAPI
	}

	q := url.Values{}
	q.Set("serviceKey", configs.HolidayAPIKey)
	q.Set("solYear", fmt.Sprintf("%d", year))
	q.Set("solMonth", fmt.Sprintf("%02d", month))
	q.Set("numOfRows", "100")

	resp, err := s.Client.Get(configs.HolidayAPIURL + "?" + q.Encode())
	if err != nil {
		log.Printf("[ERROR] API libur tidak terjangkau: %v", err)
		return nil, helper.ErrHolidayAPI
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] API libur status %d", resp.StatusCode)
		return nil, helper.ErrHolidayAPI
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, helper.ErrHolidayAPI
	}

	items, err := ParseHolidayFeed(body)
	if err != nil {
		log.Printf("[ERROR] Body XML libur tidak valid: %v", err)
		return nil, helper.ErrHolidayAPI
	}
	return items, nil
}

// ParseHolidayFeed decode XML feed menjadi daftar item libur.
func ParseHolidayFeed(body []byte) ([]holidayItem, error) {
	var feed holidayFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, err
	}
	if feed.XMLName.Local != "response" {
		return nil, errors.New("root element bukan <response>")
	}
	return feed.Items, nil
}
