package algorithms

import (
	"testing"
	"time"

	"lawlink_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var officeHours = &models.Availability{
	MorningStart: "08:00",
	MorningEnd:   "11:30",
	EveningStart: "13:00",
	EveningEnd:   "17:00",
}

// A fixed "now" keeps the cooldown arithmetic deterministic.
var now = time.Date(2026, time.March, 10, 15, 45, 0, 0, time.UTC)

func TestValidateReschedule(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		time    string
		wantErr error
	}{
		{"valid morning slot", "2026-03-16", "09:30", nil},
		{"valid evening slot", "2026-03-16", "17:00", nil},
		{"exactly three days out", "2026-03-13", "08:00", nil},
		{"two days out", "2026-03-12", "08:00", ErrDateTooSoon},
		{"same day", "2026-03-10", "08:00", ErrDateTooSoon},
		{"in the past", "2026-03-01", "08:00", ErrDateTooSoon},
		{"lunch break", "2026-03-16", "12:00", ErrOutsideOfficeHours},
		{"before opening", "2026-03-16", "07:30", ErrOutsideOfficeHours},
		{"after closing", "2026-03-16", "17:30", ErrOutsideOfficeHours},
		{"off the half-hour grid", "2026-03-16", "09:15", ErrOutsideOfficeHours},
		{"bad date format", "16/03/2026", "09:00", ErrMalformedDate},
		{"bad time format", "2026-03-16", "9am", ErrMalformedTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateReschedule(now, c.date, c.time, officeHours)
			if c.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, c.wantErr)
			}
		})
	}
}

func TestValidateRescheduleCooldownIgnoresTimeOfDay(t *testing.T) {
	// The cooldown compares calendar dates, not instants: late in the
	// evening the third day out is still allowed.
	late := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	require.NoError(t, ValidateReschedule(late, "2026-03-13", "08:00", officeHours))
}

func TestSlotsForWindow(t *testing.T) {
	t.Run("aligned window includes both ends", func(t *testing.T) {
		assert.Equal(t,
			[]string{"08:00", "08:30", "09:00", "09:30", "10:00"},
			SlotsForWindow("08:00", "10:00"))
	})

	t.Run("unaligned end is still bookable", func(t *testing.T) {
		assert.Equal(t,
			[]string{"13:00", "13:30", "14:00", "14:15"},
			SlotsForWindow("13:00", "14:15"))
	})

	t.Run("zero-width window is its single instant", func(t *testing.T) {
		assert.Equal(t, []string{"09:00"}, SlotsForWindow("09:00", "09:00"))
	})

	t.Run("inverted window yields nothing", func(t *testing.T) {
		assert.Nil(t, SlotsForWindow("17:00", "08:00"))
	})

	t.Run("malformed bounds yield nothing", func(t *testing.T) {
		assert.Nil(t, SlotsForWindow("8am", "10:00"))
		assert.Nil(t, SlotsForWindow("08:00", ""))
	})
}
