// Package schedule owns the clinic's fixed daily slot catalog and the
// result types of the availability engine.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Slot is one half-hour label in 24h "HH:MM" form.
type Slot string

// Catalog is the clinic's booking grid: two half-day sessions of
// half-hour slots with a midday break.
var Catalog = []Slot{
	"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

var ErrInvalidSlot = errors.New("invalid time label, expected HH:MM")

// ParseSlot validates an "HH:MM" label. Any valid time of day is
// accepted; standalone availability checks are not restricted to the
// catalog.
func ParseSlot(s string) (Slot, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, s)
	}
	return Slot(t.Format("15:04")), nil
}

// At combines the slot with a calendar day into a single instant in the
// day's location.
func (s Slot) At(day time.Time) time.Time {
	t, _ := time.Parse("15:04", string(s))
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

func (s Slot) String() string {
	return string(s)
}

// DoctorAvailability lists one doctor's open slots for a day, in catalog
// order. Doctors with no open slot are omitted from engine results.
type DoctorAvailability struct {
	DoctorID      uint   `json:"doctor_id"`
	DoctorName    string `json:"doctor_name"`
	SpecialtyName string `json:"specialty_name"`
	Slots         []Slot `json:"available_slots"`
}
