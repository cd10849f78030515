// Package store implements the entity store: whole collections of records
// loaded and saved by entity kind: one opaque collection per kind,
// replaced in full on every save, with no transactional guarantees across
// kinds. Three backends
// are provided: an in-memory store for tests, a Redis store keeping one
// JSON blob per kind, and a MySQL store keeping one row per record.
package store

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies an entity collection. The values double as storage keys
// (Redis key suffix, MySQL table name).
type Kind string

const (
	KindRestaurants  Kind = "restaurants"
	KindZones        Kind = "zones"
	KindTables       Kind = "tables"
	KindSchedules    Kind = "schedules"
	KindReservations Kind = "reservations"
)

// Kinds lists every known entity kind in cascade order (parents first).
var Kinds = []Kind{KindRestaurants, KindZones, KindTables, KindSchedules, KindReservations}

// ErrUnknownKind is returned when a load or save names a kind outside of
// the known set.
var ErrUnknownKind = errors.New("unknown entity kind")

// EntityStore loads and saves whole collections of records keyed by entity
// kind. Load fills dest (a pointer to a slice of the kind's record type)
// with the stored collection, leaving it empty when nothing has been saved
// yet. Save replaces the entire collection for the kind. Implementations
// make no atomicity promise across kinds; a multi-kind mutation that fails
// midway leaves earlier kinds already persisted.
type EntityStore interface {
	Load(ctx context.Context, kind Kind, dest any) error
	Save(ctx context.Context, kind Kind, records any) error
}

func checkKind(kind Kind) error {
	for _, k := range Kinds {
		if k == kind {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
