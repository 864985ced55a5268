package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSeconds(t *testing.T) {
	assert.Equal(t, int64(120), ToSeconds(2, UnitMinutes))
	assert.Equal(t, int64(604800), ToSeconds(1, UnitWeeks))
	assert.Equal(t, int64(0), ToSeconds(3, DurationUnit("fortnights")))
}

func TestMaxIntervalAmount(t *testing.T) {
	assert.Equal(t, int64(9223372036), MaxIntervalSeconds)
	assert.Equal(t, MaxIntervalSeconds, MaxIntervalAmount(UnitSeconds))
	assert.Equal(t, int64(15250), MaxIntervalAmount(UnitWeeks))
	assert.Equal(t, int64(0), MaxIntervalAmount(DurationUnit("fortnights")))

	for _, unit := range DurationUnits() {
		seconds := ToSeconds(MaxIntervalAmount(unit), unit)
		assert.Positive(t, seconds, unit)
		assert.LessOrEqual(t, seconds, MaxIntervalSeconds, unit)
		assert.True(t, Prescription{TimeBetweenDose: seconds}.Interval() > 0, unit)
	}
}

func TestSplitSeconds(t *testing.T) {
	tests := []struct {
		seconds    int64
		wantAmount int64
		wantUnit   DurationUnit
	}{
		{seconds: 60 * 60 * 24 * 7, wantAmount: 1, wantUnit: UnitWeeks},
		{seconds: 60 * 2, wantAmount: 2, wantUnit: UnitMinutes},
		{seconds: 60 * 60 * 36, wantAmount: 36, wantUnit: UnitHours},
		{seconds: 61, wantAmount: 61, wantUnit: UnitSeconds},
	}

	for _, tt := range tests {
		amount, unit := SplitSeconds(tt.seconds)
		assert.Equal(t, tt.wantAmount, amount)
		assert.Equal(t, tt.wantUnit, unit)
	}
}
