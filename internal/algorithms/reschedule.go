package algorithms

import (
	"errors"
	"time"

	"lawlink_backend/internal/models"
)

const (
	// DateLayout and TimeLayout are the wire formats for consultation
	// scheduling fields.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// SlotInterval is the booking granularity within an office-hour window.
	SlotInterval = 30 * time.Minute

	// CooldownDays is the minimum number of calendar days between today and
	// a rescheduled date.
	CooldownDays = 3
)

var (
	ErrDateTooSoon        = errors.New("proposed date is inside the reschedule cool-down")
	ErrOutsideOfficeHours = errors.New("proposed time is outside the lawyer's office hours")
	ErrMalformedDate      = errors.New("date must be formatted YYYY-MM-DD")
	ErrMalformedTime      = errors.New("time must be formatted HH:MM")
)

// ValidateReschedule checks a proposed date/time against the lawyer's
// declared availability. The date must be at least CooldownDays calendar
// days after now's date, and the time must be one of the 30-minute slots
// inside the morning or evening window. The two failure modes are distinct
// errors so callers can tell the client which rule was broken.
func ValidateReschedule(now time.Time, date, timeOfDay string, av *models.Availability) error {
	proposed, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return ErrMalformedDate
	}
	if _, err := time.Parse(TimeLayout, timeOfDay); err != nil {
		return ErrMalformedTime
	}

	earliest := models.DateOnly(now).AddDate(0, 0, CooldownDays)
	if proposed.Before(earliest) {
		return ErrDateTooSoon
	}

	slots := append(
		SlotsForWindow(av.MorningStart, av.MorningEnd),
		SlotsForWindow(av.EveningStart, av.EveningEnd)...,
	)
	for _, slot := range slots {
		if slot == timeOfDay {
			return nil
		}
	}

	return ErrOutsideOfficeHours
}

// SlotsForWindow enumerates the bookable HH:MM slots from start to end in
// 30-minute steps, inclusive of both bounds. A window whose span is not a
// multiple of 30 minutes still includes its end instant. Malformed or empty
// windows yield no slots.
func SlotsForWindow(start, end string) []string {
	startT, err := time.Parse(TimeLayout, start)
	if err != nil {
		return nil
	}
	endT, err := time.Parse(TimeLayout, end)
	if err != nil {
		return nil
	}
	if endT.Before(startT) {
		return nil
	}

	var slots []string
	for t := startT; !t.After(endT); t = t.Add(SlotInterval) {
		slots = append(slots, t.Format(TimeLayout))
	}
	if last := slots[len(slots)-1]; last != endT.Format(TimeLayout) {
		slots = append(slots, endT.Format(TimeLayout))
	}
	return slots
}
