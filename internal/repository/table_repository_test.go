package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

func TestTableCreateGeneratesID(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())
	ctx := context.Background()

	rec, err := repo.Create(ctx, " 12 ", 4, "z1")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "12", rec.Number)

	got, err := repo.GetByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
}

func TestTableDuplicateNumberSameZone(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, "A1", 4, "z1")
	require.NoError(t, err)

	// Comparison is case-insensitive and ignores surrounding whitespace.
	_, err = repo.Create(ctx, "  a1 ", 2, "z1")
	assert.ErrorIs(t, err, ErrDuplicateTableNumber)

	// The same number in another zone is fine.
	_, err = repo.Create(ctx, "A1", 4, "z2")
	assert.NoError(t, err)
}

func TestTableUpdateKeepingOwnNumber(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())
	ctx := context.Background()

	rec, err := repo.Create(ctx, "A1", 4, "z1")
	require.NoError(t, err)
	other, err := repo.Create(ctx, "A2", 2, "z1")
	require.NoError(t, err)

	// Renumbering to its own current value only changes the capacity.
	got, err := repo.Update(ctx, rec.ID, "A1", 6, "z1")
	require.NoError(t, err)
	assert.Equal(t, 6, got.Capacity)

	// Colliding with a sibling is rejected.
	_, err = repo.Update(ctx, other.ID, "A1", 2, "z1")
	assert.ErrorIs(t, err, ErrDuplicateTableNumber)
}

func TestTableUpdateUnknownID(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())

	_, err := repo.Update(context.Background(), "nope", "A1", 4, "z1")
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableCreateInvalidCapacity(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())

	_, err := repo.Create(context.Background(), "A1", 0, "z1")
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
}

func TestTableListByZone(t *testing.T) {
	repo := NewTableRepo(store.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.Create(ctx, "A1", 4, "z1")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "B1", 4, "z2")
	require.NoError(t, err)

	got, err := repo.ListByZone(ctx, "z1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].Number)
}
