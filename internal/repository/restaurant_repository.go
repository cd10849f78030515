// Package repository contains data access logic separated from HTTP
// handlers. Repositories wrap the entity store's whole-collection
// load/save contract with per-entity operations: every mutation loads the
// collection, rewrites it in memory and saves it back in full. This file
// defines repository methods for restaurants, the root of the ownership
// hierarchy.
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// RestaurantRepo encapsulates restaurant collection access. It depends on
// an entity store configured elsewhere.
type RestaurantRepo struct {
	store store.EntityStore
}

// NewRestaurantRepo constructs a RestaurantRepo over the given store.
func NewRestaurantRepo(st store.EntityStore) *RestaurantRepo {
	return &RestaurantRepo{store: st}
}

// List returns all restaurants in insertion order.
func (r *RestaurantRepo) List(ctx context.Context) ([]model.Restaurant, error) {
	var out []model.Restaurant
	if err := r.store.Load(ctx, store.KindRestaurants, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single restaurant. It returns ErrRestaurantNotFound
// when no record matches.
func (r *RestaurantRepo) GetByID(ctx context.Context, id string) (*model.Restaurant, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrRestaurantNotFound
}

// Create appends a new restaurant with a freshly generated id.
func (r *RestaurantRepo) Create(ctx context.Context, name string) (*model.Restaurant, error) {
	rec := model.Restaurant{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	all = append(all, rec)
	if err := r.store.Save(ctx, store.KindRestaurants, all); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update renames a restaurant in place, preserving its id. It returns
// ErrRestaurantNotFound when the id is unknown.
func (r *RestaurantRepo) Update(ctx context.Context, id, name string) (*model.Restaurant, error) {
	rec := model.Restaurant{ID: id, Name: strings.TrimSpace(name)}
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
		return nil, ErrRestaurantNotFound
	}
	if err := r.store.Save(ctx, store.KindRestaurants, all); err != nil {
		return nil, err
	}
	return &rec, nil
}
