package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// ZoneRepo encapsulates zone collection access.
type ZoneRepo struct {
	store store.EntityStore
}

// NewZoneRepo constructs a ZoneRepo over the given store.
func NewZoneRepo(st store.EntityStore) *ZoneRepo {
	return &ZoneRepo{store: st}
}

// List returns all zones in insertion order.
func (r *ZoneRepo) List(ctx context.Context) ([]model.Zone, error) {
	var out []model.Zone
	if err := r.store.Load(ctx, store.KindZones, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRestaurant returns the zones owned by a restaurant.
func (r *ZoneRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Zone, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Zone, 0, len(all))
	for _, z := range all {
		if z.RestaurantID == restaurantID {
			out = append(out, z)
		}
	}
	return out, nil
}

// GetByID fetches a single zone. It returns ErrZoneNotFound when no
// record matches.
func (r *ZoneRepo) GetByID(ctx context.Context, id string) (*model.Zone, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrZoneNotFound
}

// Create appends a new zone with a freshly generated id.
func (r *ZoneRepo) Create(ctx context.Context, name, restaurantID string) (*model.Zone, error) {
	rec := model.Zone{ID: uuid.NewString(), Name: strings.TrimSpace(name), RestaurantID: restaurantID}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	all = append(all, rec)
	if err := r.store.Save(ctx, store.KindZones, all); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update rewrites a zone in place, preserving its id. It returns
// ErrZoneNotFound when the id is unknown.
func (r *ZoneRepo) Update(ctx context.Context, id, name, restaurantID string) (*model.Zone, error) {
	rec := model.Zone{ID: id, Name: strings.TrimSpace(name), RestaurantID: restaurantID}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range all {
		if all[i].ID == id {
			all[i] = rec
			found = true
			break
		}
	}
	if !found {
		return nil, ErrZoneNotFound
	}
	if err := r.store.Save(ctx, store.KindZones, all); err != nil {
		return nil, err
	}
	return &rec, nil
}
