package model

import (
	"fmt"
	"strings"
)

// Reservation is the booking record produced by a successful allocation.
// Date and Time are wall-clock strings ("YYYY-MM-DD" and "HH:MM"); no time
// zone handling is applied anywhere in the system. The non-overlap
// invariant forbids two reservations sharing the same (TableID, Date, Time)
// triple.
//
// Fields:
//  ID        – unique identifier.
//  Date      – calendar date of the booking, "YYYY-MM-DD".
//  Time      – time-of-day slot, stored normalized as "HH:MM".
//  PartySize – number of guests, strictly positive.
//  TableID   – id of the assigned table.
//  Name      – customer first name.
//  Surname   – customer last name.
//  Phone     – customer contact phone.
type Reservation struct {
	ID        string `json:"id"`         // reservations.id
	Date      string `json:"date"`       // reservations.date
	Time      string `json:"time"`       // reservations.time
	PartySize int    `json:"party_size"` // reservations.party_size
	TableID   string `json:"table_id"`   // reservations.table_id
	Name      string `json:"name"`       // reservations.name
	Surname   string `json:"surname"`    // reservations.surname
	Phone     string `json:"phone"`      // reservations.phone
}

// Validate checks the required fields of a reservation record.
func (r Reservation) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("%w: reservation date is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Time) == "" {
		return fmt.Errorf("%w: reservation time is required", ErrInvalidRecord)
	}
	if r.PartySize <= 0 {
		return fmt.Errorf("%w: reservation party_size must be positive", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.TableID) == "" {
		return fmt.Errorf("%w: reservation table_id is required", ErrInvalidRecord)
	}
	for field, v := range map[string]string{"name": r.Name, "surname": r.Surname, "phone": r.Phone} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: reservation %s is required", ErrInvalidRecord, field)
		}
	}
	return nil
}
