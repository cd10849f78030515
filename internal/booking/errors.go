// Package booking implements the reservation allocation core: time slot
// normalization, availability resolution, best-fit table selection and the
// submission-time validation that guards every booking. All components are
// pure functions over values except the Service, which owns the
// resolve-select-append critical section.
package booking

import "errors"

// Validation failures returned by the booking service. Handlers translate
// these into user-facing responses; none of them is fatal. Errors are
// wrapped with detail text, so callers must compare with errors.Is.
var (
	// ErrIncompleteSubmission signals one or more missing required fields.
	ErrIncompleteSubmission = errors.New("incomplete submission")
	// ErrPastTimeSlot signals a same-day booking for a time that has
	// already elapsed.
	ErrPastTimeSlot = errors.New("time slot already passed")
	// ErrSlotNotOffered signals a requested time that is not part of the
	// zone's schedule.
	ErrSlotNotOffered = errors.New("time slot not offered for this zone")
	// ErrNoSuitableTable signals that no table in the zone can seat the
	// requested party size.
	ErrNoSuitableTable = errors.New("no table large enough")
	// ErrZoneFullyBooked signals that suitable tables exist but every one
	// of them is already reserved for the requested date and time.
	ErrZoneFullyBooked = errors.New("zone fully booked for this date and time")
	// ErrNoCandidateTables is returned by SelectTable on an empty
	// candidate list; the resolver reports the user-facing reason first.
	ErrNoCandidateTables = errors.New("no candidate tables")
)
