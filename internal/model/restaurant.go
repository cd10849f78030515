// Package model defines the entity records persisted through the entity
// store. Records carry JSON tags matching the stored collection format and
// a Validate method enforcing the required-field invariants at construction
// time, so malformed records never reach a collection.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned by Validate when a record is missing a
// required field or carries an out-of-range value. Callers can match it
// with errors.Is regardless of the specific field message.
var ErrInvalidRecord = errors.New("invalid record")

// Restaurant is the root of the ownership hierarchy. Zones reference a
// restaurant by id; deleting a restaurant cascades through its zones.
//
// Fields:
//  ID   – unique identifier.
//  Name – human-friendly restaurant name.
type Restaurant struct {
	ID   string `json:"id"`   // restaurants.id
	Name string `json:"name"` // restaurants.name
}

// Validate checks the required fields of a restaurant record.
func (r Restaurant) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: restaurant id is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: restaurant name is required", ErrInvalidRecord)
	}
	return nil
}
