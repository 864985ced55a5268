package entity

import (
	"math"
	"time"
)

// DurationUnit is a unit the dose interval can be entered in.
type DurationUnit string

const (
	UnitSeconds DurationUnit = "seconds"
	UnitMinutes DurationUnit = "minutes"
	UnitHours   DurationUnit = "hours"
	UnitDays    DurationUnit = "days"
	UnitWeeks   DurationUnit = "weeks"
)

// DefaultDurationUnit is preselected on new prescription forms.
const DefaultDurationUnit = UnitDays

// durationUnits is ordered from smallest to largest.
var durationUnits = []struct {
	unit    DurationUnit
	seconds int64
}{
	{UnitSeconds, 1},
	{UnitMinutes, 60},
	{UnitHours, 60 * 60},
	{UnitDays, 60 * 60 * 24},
	{UnitWeeks, 60 * 60 * 24 * 7},
}

// DurationUnits lists the units from smallest to largest.
func DurationUnits() []DurationUnit {
	units := make([]DurationUnit, 0, len(durationUnits))
	for _, u := range durationUnits {
		units = append(units, u.unit)
	}

	return units
}

// Seconds returns how many seconds one unit is worth, or 0 if the unit is unknown.
func (u DurationUnit) Seconds() int64 {
	for _, known := range durationUnits {
		if known.unit == u {
			return known.seconds
		}
	}

	return 0
}

// IsValid reports whether u is a known unit.
func (u DurationUnit) IsValid() bool {
	return u.Seconds() != 0
}

// MaxIntervalSeconds is the longest interval a time.Duration can hold.
const MaxIntervalSeconds = math.MaxInt64 / int64(time.Second)

// MaxIntervalAmount is the largest amount of unit that stays within MaxIntervalSeconds,
// or 0 if the unit is unknown.
func MaxIntervalAmount(unit DurationUnit) int64 {
	seconds := unit.Seconds()
	if seconds == 0 {
		return 0
	}

	return MaxIntervalSeconds / seconds
}

// ToSeconds converts amount units into seconds.
func ToSeconds(amount int64, unit DurationUnit) int64 {
	return amount * unit.Seconds()
}

// SplitSeconds picks the largest unit that divides seconds cleanly.
func SplitSeconds(seconds int64) (int64, DurationUnit) {
	for i := len(durationUnits) - 1; i >= 0; i-- {
		if seconds%durationUnits[i].seconds == 0 {
			return seconds / durationUnits[i].seconds, durationUnits[i].unit
		}
	}

	return seconds, UnitSeconds
}
