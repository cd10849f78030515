package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	in := []model.Restaurant{{ID: "r1", Name: "La Terraza"}}
	require.NoError(t, st.Save(ctx, KindRestaurants, in))

	var out []model.Restaurant
	require.NoError(t, st.Load(ctx, KindRestaurants, &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreMissingKindLoadsEmpty(t *testing.T) {
	st := NewMemoryStore()

	var out []model.Zone
	require.NoError(t, st.Load(context.Background(), KindZones, &out))
	assert.Empty(t, out)
}

func TestMemoryStoreRejectsUnknownKind(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	var out []model.Zone
	assert.ErrorIs(t, st.Load(ctx, Kind("moons"), &out), ErrUnknownKind)
	assert.ErrorIs(t, st.Save(ctx, Kind("moons"), out), ErrUnknownKind)
}

func TestMemoryStoreSnapshotsAreIndependent(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, KindZones, []model.Zone{{ID: "z1", Name: "Interior", RestaurantID: "r1"}}))

	var a []model.Zone
	require.NoError(t, st.Load(ctx, KindZones, &a))
	a[0].Name = "mutated"

	var b []model.Zone
	require.NoError(t, st.Load(ctx, KindZones, &b))
	assert.Equal(t, "Interior", b[0].Name)
}
