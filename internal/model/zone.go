package model

import (
	"fmt"
	"strings"
)

// Zone is a named seating area inside a restaurant (terrace, dining room,
// patio). Every zone belongs to exactly one restaurant. Tables and the
// zone's schedule entry reference the zone by id.
//
// Fields:
//  ID           – unique identifier.
//  Name         – human-friendly zone name.
//  RestaurantID – id of the owning restaurant.
type Zone struct {
	ID           string `json:"id"`            // zones.id
	Name         string `json:"name"`          // zones.name
	RestaurantID string `json:"restaurant_id"` // zones.restaurant_id
}

// Validate checks the required fields of a zone record.
func (z Zone) Validate() error {
	if strings.TrimSpace(z.ID) == "" {
		return fmt.Errorf("%w: zone id is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(z.Name) == "" {
		return fmt.Errorf("%w: zone name is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(z.RestaurantID) == "" {
		return fmt.Errorf("%w: zone restaurant_id is required", ErrInvalidRecord)
	}
	return nil
}
