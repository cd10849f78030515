package model

import (
	"fmt"
	"strings"
)

// Table is a seatable unit within a zone with a fixed capacity. The Number
// field is a string label ("1", "A1", "T-5") unique within its zone under a
// case-insensitive, trimmed comparison.
//
// Fields:
//  ID       – unique identifier.
//  Number   – string label, unique within the zone.
//  Capacity – number of seats, strictly positive.
//  ZoneID   – id of the owning zone.
type Table struct {
	ID       string `json:"id"`       // tables.id
	Number   string `json:"number"`   // tables.number
	Capacity int    `json:"capacity"` // tables.capacity
	ZoneID   string `json:"zone_id"`  // tables.zone_id
}

// NumberKey returns the table number in the canonical form used for the
// uniqueness comparison within a zone.
func (t Table) NumberKey() string {
	return strings.ToLower(strings.TrimSpace(t.Number))
}

// Validate checks the required fields of a table record.
func (t Table) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: table id is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(t.Number) == "" {
		return fmt.Errorf("%w: table number is required", ErrInvalidRecord)
	}
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: table capacity must be positive", ErrInvalidRecord)
	}
	if strings.TrimSpace(t.ZoneID) == "" {
		return fmt.Errorf("%w: table zone_id is required", ErrInvalidRecord)
	}
	return nil
}
