package booking

import (
	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Availability is the result of resolving a zone against a requested
// (date, time, party size). Free holds the eligible-and-unoccupied tables
// in their original collection order. Suitable and Occupied count the
// capacity-eligible tables and how many of them are already reserved, for
// the "N of M tables taken" diagnostics.
type Availability struct {
	Free     []model.Table
	Suitable int
	Occupied int
}

// Resolve computes the set of tables in zoneID that can seat partySize and
// are not already reserved for the exact (date, timeSlot) pair. A slot is
// an atomic unit, so occupancy is decided by plain string equality on date
// and time, not by time comparison; callers are expected to pass the
// canonical normalized time they also store on reservations. Resolve is
// side-effect free. An empty Free with Suitable > 0 means fully booked;
// Suitable == 0 means no table is large enough.
func Resolve(zoneID, date, timeSlot string, partySize int, tables []model.Table, reservations []model.Reservation) Availability {
	var suitable []model.Table
	for _, t := range tables {
		if t.ZoneID == zoneID && t.Capacity >= partySize {
			suitable = append(suitable, t)
		}
	}

	occupied := make(map[string]struct{})
	for _, r := range reservations {
		if r.Date == date && r.Time == timeSlot {
			occupied[r.TableID] = struct{}{}
		}
	}

	av := Availability{Suitable: len(suitable)}
	for _, t := range suitable {
		if _, taken := occupied[t.ID]; taken {
			av.Occupied++
			continue
		}
		av.Free = append(av.Free, t)
	}
	return av
}
