package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
	"github.com/iliyamo/restaurant-table-reservation/internal/store"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// Request carries a booking submission. All fields are required; Time may
// be given in "HH:MM" or bare-hour form and is canonicalized before any
// comparison or storage.
type Request struct {
	RestaurantID string `json:"restaurant_id"`
	ZoneID       string `json:"zone_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Phone        string `json:"phone"`
}

// Service validates booking submissions and performs the allocation. The
// resolve-select-append sequence for a zone runs under that zone's mutex:
// two concurrent requests for the same zone serialize, so both can never
// observe the same table as free. Validation failures release the lock on
// every exit path. The entity store is the only shared resource; the
// clock is a field so tests can pin "now".
type Service struct {
	store store.EntityStore
	locks sync.Map // zone id -> *sync.Mutex
	now   func() time.Time
}

// NewService builds a booking service over the given entity store.
func NewService(st store.EntityStore) *Service {
	return &Service{store: st, now: time.Now}
}

// Book validates the request and, when it passes, assigns the best-fit
// table and appends the reservation. Checks run in order and short-circuit
// at the first failure: field completeness, schedule membership, same-day
// temporal validity, availability. The returned table is the one assigned
// to the reservation.
func (s *Service) Book(ctx context.Context, req Request) (model.Reservation, model.Table, error) {
	if err := checkComplete(req); err != nil {
		return model.Reservation{}, model.Table{}, err
	}
	req.Date = strings.TrimSpace(req.Date)
	slot := NormalizeTime(req.Time)

	if err := s.checkSlotOffered(ctx, req.ZoneID, slot); err != nil {
		return model.Reservation{}, model.Table{}, err
	}

	// Future dates are always valid; only a same-day booking is checked
	// against the current time-of-day. Past dates are the date picker's
	// problem, not re-verified here.
	now := s.now()
	if req.Date == now.Format(dateLayout) && CompareTimes(slot, now.Format(clockLayout)) <= 0 {
		return model.Reservation{}, model.Table{}, fmt.Errorf("%w: %s on %s", ErrPastTimeSlot, slot, req.Date)
	}

	mu := s.zoneLock(req.ZoneID)
	mu.Lock()
	defer mu.Unlock()

	var tables []model.Table
	if err := s.store.Load(ctx, store.KindTables, &tables); err != nil {
		return model.Reservation{}, model.Table{}, err
	}
	var reservations []model.Reservation
	if err := s.store.Load(ctx, store.KindReservations, &reservations); err != nil {
		return model.Reservation{}, model.Table{}, err
	}

	av := Resolve(req.ZoneID, req.Date, slot, req.PartySize, tables, reservations)
	if av.Suitable == 0 {
		return model.Reservation{}, model.Table{}, fmt.Errorf("%w for %d guests", ErrNoSuitableTable, req.PartySize)
	}
	if len(av.Free) == 0 {
		return model.Reservation{}, model.Table{},
			fmt.Errorf("%w: %d of %d suitable tables already reserved", ErrZoneFullyBooked, av.Occupied, av.Suitable)
	}

	table, err := SelectTable(av.Free, req.PartySize)
	if err != nil {
		return model.Reservation{}, model.Table{}, err
	}

	res := model.Reservation{
		ID:        uuid.NewString(),
		Date:      req.Date,
		Time:      slot,
		PartySize: req.PartySize,
		TableID:   table.ID,
		Name:      strings.TrimSpace(req.Name),
		Surname:   strings.TrimSpace(req.Surname),
		Phone:     strings.TrimSpace(req.Phone),
	}
	if err := res.Validate(); err != nil {
		return model.Reservation{}, model.Table{}, err
	}
	reservations = append(reservations, res)
	if err := s.store.Save(ctx, store.KindReservations, reservations); err != nil {
		return model.Reservation{}, model.Table{}, err
	}
	return res, table, nil
}

// AvailableTimes returns the zone's bookable slots for a date, dropping
// slots that have already elapsed when the date is today. Slots come back
// as stored in the schedule entry. A zone without a schedule has no
// bookable times.
func (s *Service) AvailableTimes(ctx context.Context, zoneID, date string) ([]string, error) {
	entry, err := s.scheduleFor(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return []string{}, nil
	}
	if strings.TrimSpace(date) != s.now().Format(dateLayout) {
		return entry.TimeSlots, nil
	}
	current := s.now().Format(clockLayout)
	out := make([]string, 0, len(entry.TimeSlots))
	for _, slot := range entry.TimeSlots {
		if CompareTimes(slot, current) > 0 {
			out = append(out, slot)
		}
	}
	return out, nil
}

func (s *Service) checkSlotOffered(ctx context.Context, zoneID, slot string) error {
	entry, err := s.scheduleFor(ctx, zoneID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("%w: zone has no schedule", ErrSlotNotOffered)
	}
	for _, offered := range entry.TimeSlots {
		if NormalizeTime(offered) == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotNotOffered, slot)
}

func (s *Service) scheduleFor(ctx context.Context, zoneID string) (*model.ScheduleEntry, error) {
	var schedules []model.ScheduleEntry
	if err := s.store.Load(ctx, store.KindSchedules, &schedules); err != nil {
		return nil, err
	}
	for i := range schedules {
		if schedules[i].ZoneID == zoneID {
			return &schedules[i], nil
		}
	}
	return nil, nil
}

func (s *Service) zoneLock(zoneID string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(zoneID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func checkComplete(req Request) error {
	fields := map[string]string{
		"restaurant_id": req.RestaurantID,
		"zone_id":       req.ZoneID,
		"date":          req.Date,
		"time":          req.Time,
		"name":          req.Name,
		"surname":       req.Surname,
		"phone":         req.Phone,
	}
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if req.PartySize <= 0 {
		missing = append(missing, "party_size")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrIncompleteSubmission, strings.Join(missing, ", "))
	}
	return nil
}
