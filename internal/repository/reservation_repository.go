package repository

import (
	"context"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// ReservationRepo encapsulates reservation collection access. Reservation
// creation happens in the booking service, inside the per-zone critical
// section; this repository covers listing, filtered listing and
// cancellation.
type ReservationRepo struct {
	store store.EntityStore
}

// NewReservationRepo constructs a ReservationRepo over the given store.
func NewReservationRepo(st store.EntityStore) *ReservationRepo {
	return &ReservationRepo{store: st}
}

// List returns all reservations in insertion order.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	var out []model.Reservation
	if err := r.store.Load(ctx, store.KindReservations, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single reservation. It returns ErrReservationNotFound
// when no record matches.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrReservationNotFound
}

// ListFiltered returns reservations narrowed by restaurant, zone and
// date; empty filter values match everything. The restaurant and zone of
// a reservation are resolved through its assigned table, and reservations
// whose table or zone no longer exists are dropped from the result.
func (r *ReservationRepo) ListFiltered(ctx context.Context, restaurantID, zoneID, date string) ([]model.Reservation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var tables []model.Table
	if err := r.store.Load(ctx, store.KindTables, &tables); err != nil {
		return nil, err
	}
	var zones []model.Zone
	if err := r.store.Load(ctx, store.KindZones, &zones); err != nil {
		return nil, err
	}
	tableByID := make(map[string]model.Table, len(tables))
	for _, t := range tables {
		tableByID[t.ID] = t
	}
	zoneByID := make(map[string]model.Zone, len(zones))
	for _, z := range zones {
		zoneByID[z.ID] = z
	}

	out := make([]model.Reservation, 0, len(all))
	for _, res := range all {
		table, ok := tableByID[res.TableID]
		if !ok {
			continue
		}
		zone, ok := zoneByID[table.ZoneID]
		if !ok {
			continue
		}
		if restaurantID != "" && zone.RestaurantID != restaurantID {
			continue
		}
		if zoneID != "" && table.ZoneID != zoneID {
			continue
		}
		if date != "" && res.Date != date {
			continue
		}
		out = append(out, res)
	}
	return out, nil
}

// Delete removes a single reservation. It returns ErrReservationNotFound
// when the id is unknown.
func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := make([]model.Reservation, 0, len(all))
	for _, res := range all {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	if len(kept) == len(all) {
		return ErrReservationNotFound
	}
	return r.store.Save(ctx, store.KindReservations, kept)
}
