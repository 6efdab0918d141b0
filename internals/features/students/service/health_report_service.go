// internals/features/students/service/health_report_service.go
package service

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kantinku_backend/internals/configs"
	stats "kantinku_backend/internals/features/statistics/service"
	stDTO "kantinku_backend/internals/features/students/dto"
	stModel "kantinku_backend/internals/features/students/model"
	helper "kantinku_backend/internals/helpers"
)

var aiClient = &http.Client{Timeout: 30 * time.Second}

// aiReportRequest adalah payload agregat 7 hari yang dikirim ke server AI.
type aiReportRequest struct {
	StudentName       string             `json:"studentName"`
	Gender            string             `json:"gender"`
	Grade             int                `json:"grade"`
	Height            float64            `json:"height"`
	Weight            float64            `json:"weight"`
	BMI               float64            `json:"bmi"`
	CategoryLeftovers map[string]float64 `json:"categoryLeftovers"`
	MostLeftoverMenus map[string]string  `json:"mostLeftoverMenus"`
	BestEatenMenus    map[string]string  `json:"bestEatenMenus"`
	DailyNutrients    []dailyNutrientSum `json:"dailyNutrients"`
}

type dailyNutrientSum struct {
	Date      string         `json:"date"`
	Nutrients map[string]int `json:"nutrients"`
}

// HealthReport membuat laporan kesehatan siswa dari agregasi 7 hari
// terakhir lalu meminta narasi ke server AI. Laporan di-cache per hari
// di baris siswa; request kedua di hari yang sama mengembalikan cache.
func (s *StudentService) HealthReport(schoolID, studentID uuid.UUID) (*stDTO.HealthReportResponse, error) {
	student, err := s.findByID(schoolID, studentID)
	if err != nil {
		return nil, err
	}

	today := dateOnly(time.Now())
	if student.StudentContent != nil && student.StudentContentDate != nil &&
		dateOnly(*student.StudentContentDate).Equal(today) {
		return &stDTO.HealthReportResponse{
			StudentID: student.StudentID,
			Date:      today.Format("2006-01-02"),
			Cached:    true,
			Report:    student.StudentContent,
		}, nil
	}

	samples, err := s.Leftovers.WeekSamples(student.StudentID, today)
	if err != nil {
		return nil, err
	}
	most, least := stats.Rankings(samples)

	daily, err := s.weekNutrients(student.StudentID, today)
	if err != nil {
		return nil, err
	}

	payload := aiReportRequest{
		StudentName:       student.StudentName,
		Gender:            student.StudentGender,
		Grade:             student.StudentGrade,
		Height:            student.StudentHeight,
		Weight:            student.StudentWeight,
		BMI:               BMI(student.StudentHeight, student.StudentWeight),
		CategoryLeftovers: stats.AverageByCategory(samples),
		MostLeftoverMenus: most,
		BestEatenMenus:    least,
		DailyNutrients:    daily,
	}

	report, err := callAIServer(&payload)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&stModel.StudentModel{}).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"student_content":      report,
			"student_content_date": today,
		}).Error; err != nil {
		return nil, helper.ErrInternal
	}

	return &stDTO.HealthReportResponse{
		StudentID: student.StudentID,
		Date:      today.Format("2006-01-02"),
		Cached:    false,
		Report:    report,
	}, nil
}

// weekNutrients menjumlahkan kontribusi nutrisi per hari: jumlah nutrisi
// menu dikali tingkat konsumsi siswa (1 - sisa/100).
func (s *StudentService) weekNutrients(studentID uuid.UUID, until time.Time) ([]dailyNutrientSum, error) {
	from := until.AddDate(0, 0, -6)

	type row struct {
		Date     time.Time
		Nutrient string
		Amount   float64
		Rate     float64
	}
	var rows []row
	if err := s.DB.Table("leftovers").
		Select("leftovers.leftover_date AS date, nutrients.nutrient_name AS nutrient, menu_nutrients.menu_nutrient_amount AS amount, leftovers.leftover_rate AS rate").
		Joins("JOIN menu_nutrients ON menu_nutrients.menu_nutrient_menu_id = leftovers.leftover_menu_id").
		Joins("JOIN nutrients ON nutrients.nutrient_id = menu_nutrients.menu_nutrient_nutrient_id").
		Where("leftovers.leftover_student_id = ? AND leftovers.leftover_date >= ? AND leftovers.leftover_date <= ?",
			studentID, from, until).
		Order("leftovers.leftover_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, helper.ErrInternal
	}

	byDate := make(map[string]map[string]int)
	order := make([]string, 0, 7)
	for _, r := range rows {
		key := r.Date.Format("2006-01-02")
		if _, ok := byDate[key]; !ok {
			byDate[key] = make(map[string]int)
			order = append(order, key)
		}
		byDate[key][r.Nutrient] += stats.NutrientContribution(r.Amount, r.Rate)
	}

	out := make([]dailyNutrientSum, 0, len(order))
	for _, key := range order {
		out = append(out, dailyNutrientSum{Date: key, Nutrients: byDate[key]})
	}
	return out, nil
}

func callAIServer(payload *aiReportRequest) (datatypes.JSON, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, helper.ErrInternal
	}

	resp, err := aiClient.Post(
		configs.AIServerBaseURL+"/api/v1/report",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Printf("[ERROR] Server AI tidak terjangkau: %v", err)
		return nil, helper.ErrAIServer
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Server AI status %d", resp.StatusCode)
		return nil, helper.ErrAIServer
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, helper.ErrAIServer
	}
	if !sonic.Valid(raw) {
		log.Printf("[ERROR] Body server AI bukan JSON valid")
		return nil, helper.ErrAIServer
	}
	return datatypes.JSON(raw), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
