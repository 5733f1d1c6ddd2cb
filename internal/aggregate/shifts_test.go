package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-analytics/crimelens/internal/model"
)

func TestCountShifts_FixedOrder(t *testing.T) {
	// One EVENING and two DAY incidents yield [DAY:2, EVENING:1, MIDNIGHT:0].
	incidents := []model.Incident{
		inc("THEFT/OTHER", model.ShiftEvening, at(1, 1)),
		inc("THEFT/OTHER", model.ShiftDay, at(1, 2)),
		inc("HOMICIDE", model.ShiftDay, at(1, 3)),
	}

	got := CountShifts(incidents)
	require.Len(t, got, 3)
	assert.Equal(t, model.ShiftCount{Shift: model.ShiftDay, Count: 2}, got[0])
	assert.Equal(t, model.ShiftCount{Shift: model.ShiftEvening, Count: 1}, got[1])
	assert.Equal(t, model.ShiftCount{Shift: model.ShiftMidnight, Count: 0}, got[2])
}

func TestCountShifts_UnknownNotCounted(t *testing.T) {
	incidents := []model.Incident{
		inc("THEFT/OTHER", model.ShiftUnknown, at(1, 1)),
		inc("THEFT/OTHER", model.ShiftDay, at(1, 2)),
	}

	got := CountShifts(incidents)
	var total int
	for _, sc := range got {
		total += sc.Count
	}
	assert.Equal(t, 1, total)
}

func TestCountShifts_Empty(t *testing.T) {
	got := CountShifts(nil)
	require.Len(t, got, 3)
	for _, sc := range got {
		assert.Zero(t, sc.Count)
	}
}
