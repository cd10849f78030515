package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

// newTestService seeds a memory store with one zone holding a 2-top, a
// 4-top and a 6-top, offering the 19:00-21:00 evening slots, and pins the
// clock to 2026-09-01 20:15.
func newTestService(t *testing.T) (*Service, store.EntityStore) {
	t.Helper()
	st := store.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, store.KindTables, []model.Table{
		{ID: "t2", Number: "1", Capacity: 2, ZoneID: "z1"},
		{ID: "t4", Number: "2", Capacity: 4, ZoneID: "z1"},
		{ID: "t6", Number: "3", Capacity: 6, ZoneID: "z1"},
	}))
	require.NoError(t, st.Save(ctx, store.KindSchedules, []model.ScheduleEntry{
		{ZoneID: "z1", TimeSlots: []string{"19:00", "20:00", "21:00"}},
	}))

	svc := NewService(st)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 20, 15, 0, 0, time.UTC)
	}
	return svc, st
}

func validRequest() Request {
	return Request{
		RestaurantID: "r1",
		ZoneID:       "z1",
		Date:         "2026-09-02",
		Time:         "20:00",
		PartySize:    4,
		Name:         "Ana",
		Surname:      "Garcia",
		Phone:        "600123123",
	}
}

func TestBookAssignsBestFitTable(t *testing.T) {
	svc, _ := newTestService(t)

	res, table, err := svc.Book(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "t4", table.ID)
	assert.Equal(t, "t4", res.TableID)
	assert.Equal(t, "20:00", res.Time)
	assert.NotEmpty(t, res.ID)
}

func TestBookIncompleteSubmission(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Name = "  "
	req.PartySize = 0
	_, _, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "party_size")
}

func TestBookNormalizesBareHour(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Time = "20"
	res, _, err := svc.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "20:00", res.Time)
}

func TestBookRejectsSlotNotOffered(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Time = "17:30"
	_, _, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestBookRejectsZoneWithoutSchedule(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.ZoneID = "z9"
	_, _, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotOffered)
}

func TestBookSameDayPastSlot(t *testing.T) {
	svc, _ := newTestService(t)

	// Clock is pinned at 20:15, so 19:00 today has already passed while
	// 21:00 today is still bookable.
	req := validRequest()
	req.Date = "2026-09-01"
	req.Time = "19:00"
	_, _, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastTimeSlot)

	req.Time = "21:00"
	_, _, err = svc.Book(context.Background(), req)
	assert.NoError(t, err)
}

func TestBookFutureDateIgnoresClock(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.Date = "2026-09-02"
	req.Time = "19:00"
	_, _, err := svc.Book(context.Background(), req)
	assert.NoError(t, err)
}

func TestBookNoSuitableTable(t *testing.T) {
	svc, _ := newTestService(t)

	req := validRequest()
	req.PartySize = 9
	_, _, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrNoSuitableTable)
}

func TestBookZoneFullyBooked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Take both tables that can seat four.
	for i := 0; i < 2; i++ {
		_, _, err := svc.Book(ctx, validRequest())
		require.NoError(t, err)
	}
	_, _, err := svc.Book(ctx, validRequest())
	assert.ErrorIs(t, err, ErrZoneFullyBooked)
}

func TestBookNeverDoubleAssignsATable(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, _, err := svc.Book(ctx, validRequest())
		if i < 2 {
			require.NoError(t, err)
		}
	}

	var all []model.Reservation
	require.NoError(t, st.Load(ctx, store.KindReservations, &all))
	seen := make(map[string]bool)
	for _, r := range all {
		key := r.TableID + "|" + r.Date + "|" + r.Time
		assert.False(t, seen[key], "table %s double booked", r.TableID)
		seen[key] = true
	}
}

func TestBookConcurrentLastTable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Occupy the 4-top so only the 6-top remains for a party of four.
	_, _, err := svc.Book(ctx, validRequest())
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Book(ctx, validRequest())
		}(i)
	}
	wg.Wait()

	won := 0
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			assert.ErrorIs(t, err, ErrZoneFullyBooked)
		}
	}
	assert.Equal(t, 1, won)
}

func TestAvailableTimesDropsElapsedSlotsToday(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	slots, err := svc.AvailableTimes(ctx, "z1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"21:00"}, slots)

	slots, err = svc.AvailableTimes(ctx, "z1", "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"19:00", "20:00", "21:00"}, slots)
}

func TestAvailableTimesZoneWithoutSchedule(t *testing.T) {
	svc, _ := newTestService(t)

	slots, err := svc.AvailableTimes(context.Background(), "z9", "2026-09-02")
	require.NoError(t, err)
	assert.Empty(t, slots)
}
