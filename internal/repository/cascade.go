package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// Cascader propagates entity deletion down the ownership chain:
// restaurant -> zones -> tables -> schedule entries -> reservations. All
// filtering happens in memory before any collection is saved, then each
// affected collection is rewritten once, parents first. The entity store
// offers no transaction across kinds, so a save that fails after an
// earlier one succeeded leaves the earlier kinds already persisted. The
// cascade does not stop there: remaining steps still run, and the failed
// ones are reported in a CascadeError for the host to log. At-least-once,
// no rollback.
type Cascader struct {
	store store.EntityStore
}

// NewCascader constructs a Cascader over the given store.
func NewCascader(st store.EntityStore) *Cascader {
	return &Cascader{store: st}
}

// CascadeError reports the save steps that failed during a cascade. The
// cascade itself ran to completion; the listed collections may still hold
// stale references and need operator attention.
type CascadeError struct {
	Op    string
	Steps []error
}

func (e *CascadeError) Error() string {
	msgs := make([]string, 0, len(e.Steps))
	for _, err := range e.Steps {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("cascade %s incomplete: %s", e.Op, strings.Join(msgs, "; "))
}

// Summary counts the records removed by a cascade.
type Summary struct {
	Zones        int `json:"zones"`
	Tables       int `json:"tables"`
	Schedules    int `json:"schedules"`
	Reservations int `json:"reservations"`
}

// DeleteRestaurant removes a restaurant, all of its zones and everything
// those zones own. It returns ErrRestaurantNotFound before mutating
// anything when the id is unknown; afterwards the error, if any, is a
// *CascadeError.
func (c *Cascader) DeleteRestaurant(ctx context.Context, id string) (Summary, error) {
	var restaurants []model.Restaurant
	if err := c.store.Load(ctx, store.KindRestaurants, &restaurants); err != nil {
		return Summary{}, err
	}
	kept := make([]model.Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(restaurants) {
		return Summary{}, ErrRestaurantNotFound
	}

	var zones []model.Zone
	if err := c.store.Load(ctx, store.KindZones, &zones); err != nil {
		return Summary{}, err
	}
	doomed := make(map[string]struct{})
	keptZones := make([]model.Zone, 0, len(zones))
	for _, z := range zones {
		if z.RestaurantID == id {
			doomed[z.ID] = struct{}{}
			continue
		}
		keptZones = append(keptZones, z)
	}

	sum := Summary{Zones: len(doomed)}
	var steps []error
	if err := c.store.Save(ctx, store.KindRestaurants, kept); err != nil {
		steps = append(steps, fmt.Errorf("save restaurants: %w", err))
	}
	if err := c.store.Save(ctx, store.KindZones, keptZones); err != nil {
		steps = append(steps, fmt.Errorf("save zones: %w", err))
	}
	steps = append(steps, c.zoneEffects(ctx, doomed, &sum)...)
	if len(steps) > 0 {
		return sum, &CascadeError{Op: "delete restaurant", Steps: steps}
	}
	return sum, nil
}

// DeleteZone removes a single zone together with its tables, its schedule
// entry and every reservation referencing those tables.
func (c *Cascader) DeleteZone(ctx context.Context, id string) (Summary, error) {
	var zones []model.Zone
	if err := c.store.Load(ctx, store.KindZones, &zones); err != nil {
		return Summary{}, err
	}
	kept := make([]model.Zone, 0, len(zones))
	for _, z := range zones {
		if z.ID != id {
			kept = append(kept, z)
		}
	}
	if len(kept) == len(zones) {
		return Summary{}, ErrZoneNotFound
	}

	sum := Summary{Zones: 1}
	var steps []error
	if err := c.store.Save(ctx, store.KindZones, kept); err != nil {
		steps = append(steps, fmt.Errorf("save zones: %w", err))
	}
	steps = append(steps, c.zoneEffects(ctx, map[string]struct{}{id: {}}, &sum)...)
	if len(steps) > 0 {
		return sum, &CascadeError{Op: "delete zone", Steps: steps}
	}
	return sum, nil
}

// DeleteTable removes a table and every reservation referencing it. The
// zone and its schedule are untouched.
func (c *Cascader) DeleteTable(ctx context.Context, id string) (Summary, error) {
	var tables []model.Table
	if err := c.store.Load(ctx, store.KindTables, &tables); err != nil {
		return Summary{}, err
	}
	kept := make([]model.Table, 0, len(tables))
	for _, t := range tables {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tables) {
		return Summary{}, ErrTableNotFound
	}

	sum := Summary{Tables: 1}
	var steps []error
	if err := c.store.Save(ctx, store.KindTables, kept); err != nil {
		steps = append(steps, fmt.Errorf("save tables: %w", err))
	}
	steps = append(steps, c.dropReservations(ctx, map[string]struct{}{id: {}}, &sum)...)
	if len(steps) > 0 {
		return sum, &CascadeError{Op: "delete table", Steps: steps}
	}
	return sum, nil
}

// zoneEffects removes everything owned by the doomed zones: their
// schedule entries, their tables, and the reservations referencing those
// tables. Each step that fails is collected; later steps still run.
func (c *Cascader) zoneEffects(ctx context.Context, doomedZones map[string]struct{}, sum *Summary) []error {
	var steps []error

	var schedules []model.ScheduleEntry
	if err := c.store.Load(ctx, store.KindSchedules, &schedules); err != nil {
		steps = append(steps, fmt.Errorf("load schedules: %w", err))
	} else {
		kept := make([]model.ScheduleEntry, 0, len(schedules))
		for _, s := range schedules {
			if _, gone := doomedZones[s.ZoneID]; gone {
				sum.Schedules++
				continue
			}
			kept = append(kept, s)
		}
		if err := c.store.Save(ctx, store.KindSchedules, kept); err != nil {
			steps = append(steps, fmt.Errorf("save schedules: %w", err))
		}
	}

	doomedTables := make(map[string]struct{})
	var tables []model.Table
	if err := c.store.Load(ctx, store.KindTables, &tables); err != nil {
		steps = append(steps, fmt.Errorf("load tables: %w", err))
	} else {
		kept := make([]model.Table, 0, len(tables))
		for _, t := range tables {
			if _, gone := doomedZones[t.ZoneID]; gone {
				doomedTables[t.ID] = struct{}{}
				sum.Tables++
				continue
			}
			kept = append(kept, t)
		}
		if err := c.store.Save(ctx, store.KindTables, kept); err != nil {
			steps = append(steps, fmt.Errorf("save tables: %w", err))
		}
	}

	steps = append(steps, c.dropReservations(ctx, doomedTables, sum)...)
	return steps
}

// dropReservations removes every reservation assigned to one of the
// doomed tables.
func (c *Cascader) dropReservations(ctx context.Context, doomedTables map[string]struct{}, sum *Summary) []error {
	var reservations []model.Reservation
	if err := c.store.Load(ctx, store.KindReservations, &reservations); err != nil {
		return []error{fmt.Errorf("load reservations: %w", err)}
	}
	kept := make([]model.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if _, gone := doomedTables[r.TableID]; gone {
			sum.Reservations++
			continue
		}
		kept = append(kept, r)
	}
	if err := c.store.Save(ctx, store.KindReservations, kept); err != nil {
		return []error{fmt.Errorf("save reservations: %w", err)}
	}
	return nil
}
