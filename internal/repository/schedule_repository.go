package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// ScheduleRepo encapsulates schedule collection access. The collection
// holds at most one entry per zone; Upsert replaces an existing entry in
// place instead of appending a second one.
type ScheduleRepo struct {
	store store.EntityStore
}

// NewScheduleRepo constructs a ScheduleRepo over the given store.
func NewScheduleRepo(st store.EntityStore) *ScheduleRepo {
	return &ScheduleRepo{store: st}
}

// List returns all schedule entries.
func (r *ScheduleRepo) List(ctx context.Context) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	if err := r.store.Load(ctx, store.KindSchedules, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByZone fetches the schedule entry for a zone. It returns
// ErrScheduleNotFound when the zone has none.
func (r *ScheduleRepo) GetByZone(ctx context.Context, zoneID string) (*model.ScheduleEntry, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ZoneID == zoneID {
			return &all[i], nil
		}
	}
	return nil, ErrScheduleNotFound
}

// Upsert sets the zone's bookable slots, creating the entry when the zone
// has none and replacing it otherwise. Slots are stored trimmed, as
// entered, with empties dropped.
func (r *ScheduleRepo) Upsert(ctx context.Context, zoneID string, slots []string) (*model.ScheduleEntry, error) {
	cleaned := make([]string, 0, len(slots))
	for _, s := range slots {
		if s = strings.TrimSpace(s); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	rec := model.ScheduleEntry{ZoneID: zoneID, TimeSlots: cleaned}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range all {
		if all[i].ZoneID == zoneID {
			all[i] = rec
			found = true
			break
		}
	}
	if !found {
		all = append(all, rec)
	}
	if err := r.store.Save(ctx, store.KindSchedules, all); err != nil {
		return nil, err
	}
	return &rec, nil
}
