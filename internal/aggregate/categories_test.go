package aggregate

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-analytics/crimelens/internal/model"
)

func TestRankCategories_ConcreteScenario(t *testing.T) {
	// Two HOMICIDE and one THEFT/OTHER -> [{HOMICIDE,2,66.7}, {THEFT/OTHER,1,33.3}].
	incidents := []model.Incident{
		inc("HOMICIDE", model.ShiftDay, at(1, 1)),
		inc("HOMICIDE", model.ShiftDay, at(1, 2)),
		inc("THEFT/OTHER", model.ShiftDay, at(1, 3)),
	}

	got := testEngine().RankCategories(incidents)
	require.Len(t, got, 2)
	assert.Equal(t, model.CategoryCount{Category: "HOMICIDE", Count: 2, Percentage: 66.7}, got[0])
	assert.Equal(t, model.CategoryCount{Category: "THEFT/OTHER", Count: 1, Percentage: 33.3}, got[1])
}

func TestRankCategories_TiesBreakAlphabetically(t *testing.T) {
	incidents := []model.Incident{
		inc("ROBBERY", model.ShiftDay, at(1, 1)),
		inc("ARSON", model.ShiftDay, at(1, 2)),
		inc("BURGLARY", model.ShiftDay, at(1, 3)),
	}

	got := testEngine().RankCategories(incidents)
	require.Len(t, got, 3)
	assert.Equal(t, "ARSON", got[0].Category)
	assert.Equal(t, "BURGLARY", got[1].Category)
	assert.Equal(t, "ROBBERY", got[2].Category)
}

func TestRankCategories_CappedAtTopN(t *testing.T) {
	var incidents []model.Incident
	for i := 0; i < 15; i++ {
		incidents = append(incidents, inc(fmt.Sprintf("CATEGORY %02d", i), model.ShiftDay, at(1, 1)))
	}

	got := testEngine().RankCategories(incidents)
	assert.Len(t, got, 10)

	// Counts never sum to more than the filtered total.
	var sum int
	for _, c := range got {
		sum += c.Count
	}
	assert.LessOrEqual(t, sum, len(incidents))
}

func TestRankCategories_SortedDescending(t *testing.T) {
	incidents := []model.Incident{
		inc("A", model.ShiftDay, at(1, 1)),
		inc("B", model.ShiftDay, at(1, 1)),
		inc("B", model.ShiftDay, at(1, 2)),
		inc("C", model.ShiftDay, at(1, 1)),
		inc("C", model.ShiftDay, at(1, 2)),
		inc("C", model.ShiftDay, at(1, 3)),
	}

	got := testEngine().RankCategories(incidents)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Count, got[i].Count)
	}
}

func TestRankCategories_Empty(t *testing.T) {
	assert.Empty(t, testEngine().RankCategories(nil))
}
