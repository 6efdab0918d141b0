// internals/features/statistics/service/aggregator_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kantinku_backend/internals/constants"
)

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "5", FormatRate(5.0))
	assert.Equal(t, "4.5", FormatRate(4.5))
	assert.Equal(t, "2.33", FormatRate(7.0/3.0))
	assert.Equal(t, "0", FormatRate(0))
}

func TestAverageSatisfaction(t *testing.T) {
	assert.Equal(t, 0.0, AverageSatisfaction(0, 0))
	assert.Equal(t, 5.0, AverageSatisfaction(5, 1))
	assert.InDelta(t, 4.333, AverageSatisfaction(13, 3), 0.001)
}

func TestFilterByPriority_OrderAndCap(t *testing.T) {
	menus := []MenuStat{
		{MenuName: "kimchi", Category: constants.CategorySide, VoteCount: 1, TotalScore: 3},
		{MenuName: "nasi putih", Category: constants.CategoryRice, VoteCount: 2, TotalScore: 10},
		{MenuName: "tumis buncis", Category: constants.CategorySide, VoteCount: 1, TotalScore: 4},
		{MenuName: "sup ayam", Category: constants.CategorySoup, VoteCount: 1, TotalScore: 5},
		{MenuName: "ayam goreng", Category: constants.CategoryMain, VoteCount: 3, TotalScore: 12},
		{MenuName: "acar", Category: constants.CategorySide, VoteCount: 0, TotalScore: 0},
	}

	got := FilterByPriority(menus)

	require.Len(t, got, 5)
	assert.Equal(t, "nasi putih", got[0].MenuName)
	assert.Equal(t, "sup ayam", got[1].MenuName)
	assert.Equal(t, "ayam goreng", got[2].MenuName)
	// side mengisi 2 slot sisa, urutan input dipertahankan
	assert.Equal(t, "kimchi", got[3].MenuName)
	assert.Equal(t, "tumis buncis", got[4].MenuName)

	assert.Equal(t, "5", got[0].AverageSatisfaction)
	assert.Equal(t, 2, got[0].VoteCount)
	assert.Equal(t, "3", got[3].AverageSatisfaction)
}

func TestFilterByPriority_PriorityNeverDropped(t *testing.T) {
	menus := []MenuStat{
		{MenuName: "nasi 1", Category: constants.CategoryRice},
		{MenuName: "nasi 2", Category: constants.CategoryRice},
		{MenuName: "sup 1", Category: constants.CategorySoup},
		{MenuName: "sup 2", Category: constants.CategorySoup},
		{MenuName: "lauk 1", Category: constants.CategoryMain},
		{MenuName: "lauk 2", Category: constants.CategoryMain},
		{MenuName: "side 1", Category: constants.CategorySide},
	}

	got := FilterByPriority(menus)

	// 6 item prioritas semua tampil, side tidak kebagian slot
	require.Len(t, got, 6)
	for _, item := range got {
		assert.NotEqual(t, "side 1", item.MenuName)
	}
}

func TestFilterByPriority_Empty(t *testing.T) {
	got := FilterByPriority(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterLeftoversByPriority(t *testing.T) {
	items := []LeftoverItem{
		{MenuName: "side A", Category: "side", LeftoverRate: 10},
		{MenuName: "nasi", Category: "rice", LeftoverRate: 20},
		{MenuName: "sup", Category: "soup", LeftoverRate: 30},
	}

	got := FilterLeftoversByPriority(items)

	require.Len(t, got, 3)
	assert.Equal(t, "nasi", got[0].MenuName)
	assert.Equal(t, "sup", got[1].MenuName)
	assert.Equal(t, "side A", got[2].MenuName)
}

func TestToCompletionItems(t *testing.T) {
	got := ToCompletionItems([]LeftoverItem{
		{MenuName: "nasi", Category: "rice", LeftoverRate: 25},
		{MenuName: "sup", Category: "soup", LeftoverRate: 0},
	})

	require.Len(t, got, 2)
	assert.Equal(t, 75.0, got[0].CompletionRate)
	assert.Equal(t, 100.0, got[1].CompletionRate)
}

func TestConsumption(t *testing.T) {
	assert.Equal(t, 1.0, ConsumptionRate(0))
	assert.Equal(t, 0.0, ConsumptionRate(100))
	assert.Equal(t, 60, NutrientContribution(80, 25))
	assert.Equal(t, 0, NutrientContribution(80, 100))
}

func TestAverageByMenu(t *testing.T) {
	order, avgs := AverageByMenu([]RateSample{
		{MenuName: "nasi", Rate: 40},
		{MenuName: "sup", Rate: 10},
		{MenuName: "nasi", Rate: 60},
	})

	require.Equal(t, []string{"nasi", "sup"}, order)
	assert.Equal(t, 50.0, avgs["nasi"])
	assert.Equal(t, 10.0, avgs["sup"])
}

func TestRankings(t *testing.T) {
	most, least := Rankings([]RateSample{
		{MenuName: "A", Rate: 50},
		{MenuName: "B", Rate: 30},
		{MenuName: "C", Rate: 10},
		{MenuName: "D", Rate: 20},
	})

	assert.Equal(t, map[string]string{"1": "A", "2": "B", "3": "D"}, most)
	assert.Equal(t, map[string]string{"1": "C", "2": "D", "3": "B"}, least)
}

func TestRankings_TieBreakFirstSeen(t *testing.T) {
	most, _ := Rankings([]RateSample{
		{MenuName: "A", Rate: 50},
		{MenuName: "B", Rate: 50},
	})

	assert.Equal(t, "A", most["1"])
	assert.Equal(t, "B", most["2"])
}

func TestRankings_Empty(t *testing.T) {
	most, least := Rankings(nil)
	assert.Empty(t, most)
	assert.Empty(t, least)
}

func TestAverageByCategory_ZeroFilled(t *testing.T) {
	got := AverageByCategory([]RateSample{
		{MenuName: "nasi", Category: "rice", Rate: 30},
		{MenuName: "nasi", Category: "rice", Rate: 50},
	})

	require.Len(t, got, 4)
	assert.Equal(t, 40.0, got["rice"])
	assert.Equal(t, 0.0, got["soup"])
	assert.Equal(t, 0.0, got["main"])
	assert.Equal(t, 0.0, got["side"])
}
