package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// TableRepo encapsulates table collection access. Create and Update
// enforce the zone-scoped uniqueness of table numbers.
type TableRepo struct {
	store store.EntityStore
}

// NewTableRepo constructs a TableRepo over the given store.
func NewTableRepo(st store.EntityStore) *TableRepo {
	return &TableRepo{store: st}
}

// List returns all tables in insertion order.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	var out []model.Table
	if err := r.store.Load(ctx, store.KindTables, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByZone returns the tables inside a zone.
func (r *TableRepo) ListByZone(ctx context.Context, zoneID string) ([]model.Table, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Table, 0, len(all))
	for _, t := range all {
		if t.ZoneID == zoneID {
			out = append(out, t)
		}
	}
	return out, nil
}

// GetByID fetches a single table. It returns ErrTableNotFound when no
// record matches.
func (r *TableRepo) GetByID(ctx context.Context, id string) (*model.Table, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrTableNotFound
}

// Create appends a new table with a freshly generated id. It returns
// ErrDuplicateTableNumber when the zone already has a table with the same
// number under the case-insensitive, trimmed comparison.
func (r *TableRepo) Create(ctx context.Context, number string, capacity int, zoneID string) (*model.Table, error) {
	rec := model.Table{ID: uuid.NewString(), Number: strings.TrimSpace(number), Capacity: capacity, ZoneID: zoneID}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if hasDuplicateNumber(all, rec) {
		return nil, ErrDuplicateTableNumber
	}
	all = append(all, rec)
	if err := r.store.Save(ctx, store.KindTables, all); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update rewrites a table in place, preserving its id. The duplicate
// number check excludes the table itself so renumbering to the same value
// is allowed.
func (r *TableRepo) Update(ctx context.Context, id, number string, capacity int, zoneID string) (*model.Table, error) {
	rec := model.Table{ID: id, Number: strings.TrimSpace(number), Capacity: capacity, ZoneID: zoneID}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if hasDuplicateNumber(all, rec) {
		return nil, ErrDuplicateTableNumber
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
		return nil, ErrTableNotFound
	}
	if err := r.store.Save(ctx, store.KindTables, all); err != nil {
		return nil, err
	}
	return &rec, nil
}

// hasDuplicateNumber reports whether another table in the same zone
// already carries rec's number.
func hasDuplicateNumber(all []model.Table, rec model.Table) bool {
	key := rec.NumberKey()
	for _, t := range all {
		if t.ZoneID == rec.ZoneID && t.ID != rec.ID && t.NumberKey() == key {
			return true
		}
	}
	return false
}
