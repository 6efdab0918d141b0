// internals/features/statistics/service/aggregator.go
package service

import (
	"math"
	"sort"
	"strconv"

	"kantinku_backend/internals/constants"
)

/* ==========================
   Format angka
========================== */

// Round2 membulatkan ke 2 desimal (half up).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatRate memformat float ke string maksimal 2 desimal,
// trailing zero dibuang ("5.00" → "5", "4.50" → "4.5").
func FormatRate(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}

// AverageSatisfaction menghitung rata-rata kepuasan sebuah menu.
// vote_count == 0 → 0 (bukan error, bukan NaN).
func AverageSatisfaction(totalScore, voteCount int) float64 {
	if voteCount <= 0 {
		return 0
	}
	return float64(totalScore) / float64(voteCount)
}

/* ==========================
   Ringkasan kepuasan menu
========================== */

// MenuStat adalah baris mentah menu (hasil query) untuk agregasi.
type MenuStat struct {
	MenuName   string
	Category   constants.MenuCategory
	VoteCount  int
	TotalScore int
}

// SatisfactionItem adalah item ringkasan kepuasan yang dikirim ke klien
// (response vote + event SSE).
type SatisfactionItem struct {
	MenuName            string `json:"menuName"`
	VoteCount           int    `json:"voteCount"`
	AverageSatisfaction string `json:"averageSatisfaction"`
}

// FilterByPriority menyusun ringkasan kepuasan sesuai prioritas kategori
// (rice → soup → main → side). Urutan relatif di dalam kategori
// dipertahankan. Kategori prioritas tidak pernah dipotong; hanya "side"
// yang mengisi sisa slot sampai MaxMenuDisplay.
func FilterByPriority(menus []MenuStat) []SatisfactionItem {
	sorted := make([]SatisfactionItem, 0, constants.MaxMenuDisplay)

	for _, cat := range constants.CategoryPriority {
		if constants.IsCapped(cat) {
			remaining := constants.MaxMenuDisplay - len(sorted)
			if remaining <= 0 {
				break
			}
			for _, m := range menus {
				if m.Category != cat || remaining == 0 {
					continue
				}
				sorted = append(sorted, toSatisfactionItem(m))
				remaining--
			}
			continue
		}
		for _, m := range menus {
			if m.Category == cat {
				sorted = append(sorted, toSatisfactionItem(m))
			}
		}
	}

	return sorted
}

func toSatisfactionItem(m MenuStat) SatisfactionItem {
	return SatisfactionItem{
		MenuName:            m.MenuName,
		VoteCount:           m.VoteCount,
		AverageSatisfaction: FormatRate(AverageSatisfaction(m.TotalScore, m.VoteCount)),
	}
}

/* ==========================
   Ringkasan sisa makanan
========================== */

// LeftoverItem adalah item ringkasan sisa makanan per menu.
type LeftoverItem struct {
	MenuName     string  `json:"menuName"`
	Category     string  `json:"category"`
	LeftoverRate float64 `json:"leftoverRate"`
}

// FilterLeftoversByPriority menyusun daftar sisa makanan dengan aturan
// prioritas kategori yang sama dengan FilterByPriority.
func FilterLeftoversByPriority(items []LeftoverItem) []LeftoverItem {
	sorted := make([]LeftoverItem, 0, constants.MaxMenuDisplay)

	for _, cat := range constants.CategoryPriority {
		if constants.IsCapped(cat) {
			remaining := constants.MaxMenuDisplay - len(sorted)
			if remaining <= 0 {
				break
			}
			for _, it := range items {
				if constants.MenuCategory(it.Category) != cat || remaining == 0 {
					continue
				}
				sorted = append(sorted, it)
				remaining--
			}
			continue
		}
		for _, it := range items {
			if constants.MenuCategory(it.Category) == cat {
				sorted = append(sorted, it)
			}
		}
	}

	return sorted
}

// CompletionItem adalah item ringkasan tingkat penyelesaian makan
// (100 - rata-rata sisa) per menu.
type CompletionItem struct {
	MenuName       string  `json:"menuName"`
	Category       string  `json:"category"`
	CompletionRate float64 `json:"completionRate"`
}

// ToCompletionItems mengubah daftar sisa makanan menjadi tingkat
// penyelesaian: sisa 0% → selesai 100%, sisa 100% → selesai 0%.
func ToCompletionItems(items []LeftoverItem) []CompletionItem {
	out := make([]CompletionItem, 0, len(items))
	for _, it := range items {
		out = append(out, CompletionItem{
			MenuName:       it.MenuName,
			Category:       it.Category,
			CompletionRate: Round2(100 - it.LeftoverRate),
		})
	}
	return out
}

// ConsumptionRate menghitung tingkat konsumsi dari persentase sisa.
func ConsumptionRate(leftoverRate float64) float64 {
	return 1 - leftoverRate/100
}

// NutrientContribution menghitung nutrisi yang benar-benar dikonsumsi:
// round(jumlah × tingkat konsumsi).
func NutrientContribution(amount, leftoverRate float64) int {
	return int(math.Round(amount * ConsumptionRate(leftoverRate)))
}

/* ==========================
   Rata-rata & ranking
========================== */

// RateSample adalah satu baris sisa makanan mentah untuk agregasi.
type RateSample struct {
	MenuName string
	Category string
	Rate     float64
}

// AverageByMenu menghitung rata-rata rate per nama menu.
// Urutan hasil mengikuti kemunculan pertama nama menu di input
// (insertion order, dipakai juga sebagai tie-break ranking).
func AverageByMenu(samples []RateSample) ([]string, map[string]float64) {
	order := make([]string, 0)
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, s := range samples {
		if _, ok := sums[s.MenuName]; !ok {
			order = append(order, s.MenuName)
		}
		sums[s.MenuName] += s.Rate
		counts[s.MenuName]++
	}

	avgs := make(map[string]float64, len(sums))
	for _, name := range order {
		avgs[name] = Round2(sums[name] / float64(counts[name]))
	}
	return order, avgs
}

// Rankings menghasilkan TOP3 (paling banyak sisa) dan BOTTOM3 (paling
// sedikit sisa) dari sampel mentah. Kunci map adalah peringkat "1".."3".
// Tie-break: urutan kemunculan pertama di input (sort stabil).
// Input kosong → dua map kosong, tidak pernah error.
func Rankings(samples []RateSample) (most map[string]string, least map[string]string) {
	order, avgs := AverageByMenu(samples)

	desc := make([]string, len(order))
	copy(desc, order)
	sort.SliceStable(desc, func(i, j int) bool { return avgs[desc[i]] > avgs[desc[j]] })

	asc := make([]string, len(order))
	copy(asc, order)
	sort.SliceStable(asc, func(i, j int) bool { return avgs[asc[i]] < avgs[asc[j]] })

	most = make(map[string]string)
	least = make(map[string]string)
	for i := 0; i < len(order) && i < 3; i++ {
		most[strconv.Itoa(i+1)] = desc[i]
		least[strconv.Itoa(i+1)] = asc[i]
	}
	return most, least
}

// AverageByCategory menghitung rata-rata rate per kategori. Kategori
// tanpa data diisi 0 supaya bentuk response selalu lengkap.
func AverageByCategory(samples []RateSample) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range samples {
		sums[s.Category] += s.Rate
		counts[s.Category]++
	}

	result := make(map[string]float64, len(constants.CategoryPriority))
	for _, cat := range constants.CategoryPriority {
		key := string(cat)
		if counts[key] > 0 {
			result[key] = Round2(sums[key] / float64(counts[key]))
		} else {
			result[key] = 0
		}
	}
	return result
}
