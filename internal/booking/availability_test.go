package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func zoneTables() []model.Table {
	return []model.Table{
		{ID: "t1", Number: "1", Capacity: 2, ZoneID: "z1"},
		{ID: "t2", Number: "2", Capacity: 4, ZoneID: "z1"},
		{ID: "t3", Number: "3", Capacity: 6, ZoneID: "z1"},
		{ID: "t9", Number: "1", Capacity: 8, ZoneID: "z2"},
	}
}

func TestResolveFiltersByZoneAndCapacity(t *testing.T) {
	av := Resolve("z1", "2026-09-01", "20:00", 4, zoneTables(), nil)

	assert.Equal(t, 2, av.Suitable)
	assert.Zero(t, av.Occupied)
	ids := make([]string, 0, len(av.Free))
	for _, tb := range av.Free {
		ids = append(ids, tb.ID)
	}
	// t1 is too small, t9 belongs to another zone.
	assert.Equal(t, []string{"t2", "t3"}, ids)
}

func TestResolveExcludesExactSlotReservations(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "r1", Date: "2026-09-01", Time: "20:00", TableID: "t2"},
		{ID: "r2", Date: "2026-09-01", Time: "21:00", TableID: "t3"},
		{ID: "r3", Date: "2026-09-02", Time: "20:00", TableID: "t3"},
	}
	av := Resolve("z1", "2026-09-01", "20:00", 3, zoneTables(), reservations)

	// Only the reservation on the same date and same slot blocks a table.
	assert.Equal(t, 2, av.Suitable)
	assert.Equal(t, 1, av.Occupied)
	assert.Len(t, av.Free, 1)
	assert.Equal(t, "t3", av.Free[0].ID)
}

func TestResolveNoSuitableTable(t *testing.T) {
	av := Resolve("z1", "2026-09-01", "20:00", 10, zoneTables(), nil)

	assert.Zero(t, av.Suitable)
	assert.Empty(t, av.Free)
}

func TestResolveFullyBooked(t *testing.T) {
	reservations := []model.Reservation{
		{ID: "r1", Date: "2026-09-01", Time: "20:00", TableID: "t2"},
		{ID: "r2", Date: "2026-09-01", Time: "20:00", TableID: "t3"},
	}
	av := Resolve("z1", "2026-09-01", "20:00", 4, zoneTables(), reservations)

	assert.Equal(t, 2, av.Suitable)
	assert.Equal(t, 2, av.Occupied)
	assert.Empty(t, av.Free)
}
