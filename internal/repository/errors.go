// Package repository defines error values that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a lookup
// that found nothing versus an invariant violation such as a duplicate
// table number inside a zone.
package repository

import "errors"

// ErrRestaurantNotFound is returned when a restaurant lookup fails.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrZoneNotFound is returned when a zone lookup fails.
var ErrZoneNotFound = errors.New("zone not found")

// ErrTableNotFound is returned when a table lookup fails.
var ErrTableNotFound = errors.New("table not found")

// ErrScheduleNotFound is returned when a zone has no schedule entry.
var ErrScheduleNotFound = errors.New("schedule not found")

// ErrReservationNotFound is returned when a reservation lookup fails.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrDuplicateTableNumber is returned when a create or update would give
// two tables in the same zone the same number under the case-insensitive,
// trimmed comparison. Handlers should translate this into an HTTP 409
// response.
var ErrDuplicateTableNumber = errors.New("table number already exists in this zone")
