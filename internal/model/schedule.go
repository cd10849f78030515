package model

import (
	"fmt"
	"strings"
)

// ScheduleEntry defines the bookable time-of-day slots for a zone. At most
// one entry exists per zone, so ZoneID doubles as the collection key. Slots
// are stored as entered ("HH:MM" or bare-hour strings) and normalized only
// when compared; they are treated as a set of valid start times, not a
// range.
//
// Fields:
//  ZoneID    – id of the zone the schedule applies to (unique key).
//  TimeSlots – ordered set of time-of-day strings.
type ScheduleEntry struct {
	ZoneID    string   `json:"zone_id"`    // schedules.zone_id
	TimeSlots []string `json:"time_slots"` // schedules.time_slots
}

// Validate checks the required fields of a schedule entry.
func (s ScheduleEntry) Validate() error {
	if strings.TrimSpace(s.ZoneID) == "" {
		return fmt.Errorf("%w: schedule zone_id is required", ErrInvalidRecord)
	}
	if len(s.TimeSlots) == 0 {
		return fmt.Errorf("%w: schedule needs at least one time slot", ErrInvalidRecord)
	}
	for _, slot := range s.TimeSlots {
		if strings.TrimSpace(slot) == "" {
			return fmt.Errorf("%w: schedule contains an empty time slot", ErrInvalidRecord)
		}
	}
	return nil
}
