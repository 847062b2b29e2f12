package queries

import (
	"context"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/config"
	"campo-agenda/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidQueryDate = errs.New("invalid query date")

// Schedule queries recompute occupancy from bookings on every call instead of
// materializing an agenda table. Volumes are small and this keeps recurring
// bookings from ever drifting out of sync with their expansions.
type BookingStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByField(ctx context.Context, fieldID uuid.UUID) ([]*booking.Booking, error)
}

type FieldStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
}

type HoursStore interface {
	OperatingHours(ctx context.Context) (*OperatingHoursView, error)
}

type ScheduleQueries interface {
	DaySchedule(ctx context.Context, fieldID uuid.UUID, date string) (*DayScheduleView, error)
	FreeSlots(ctx context.Context, fieldID uuid.UUID, date string, slotMinutes int) ([]FreeSlotView, error)
}

type scheduleQueriesImpl struct {
	bookings BookingStore
	fields   FieldStore
	hours    HoursStore
	cfg      config.ScheduleConfig
}

func NewScheduleQueries(bookings BookingStore, fields FieldStore, hours HoursStore, cfg config.ScheduleConfig) ScheduleQueries {
	return &scheduleQueriesImpl{bookings: bookings, fields: fields, hours: hours, cfg: cfg}
}

func (q *scheduleQueriesImpl) DaySchedule(ctx context.Context, fieldID uuid.UUID, date string) (*DayScheduleView, error) {
	day, all, occs, err := q.occupanciesOn(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*booking.Booking, len(all))
	for _, b := range all {
		byID[b.ID()] = b
	}

	entries := make([]ScheduleEntryView, 0, len(occs))
	for _, occ := range occs {
		owner := ""
		class := ""
		if b, ok := byID[occ.BookingID]; ok {
			owner = b.OwnerName()
			class = b.Class().String()
		}
		entries = append(entries, ScheduleEntryView{
			BookingID: occ.BookingID,
			OwnerName: owner,
			Class:     class,
			StartTime: occ.Slot.Start(),
			EndTime:   occ.Slot.End(),
		})
	}

	return &DayScheduleView{
		FieldID: fieldID,
		Date:    day.String(),
		Entries: entries,
	}, nil
}

// FreeSlots tiles the operating hours from the opening time. slotMinutes
// overrides the configured slot length when positive.
func (q *scheduleQueriesImpl) FreeSlots(ctx context.Context, fieldID uuid.UUID, date string, slotMinutes int) ([]FreeSlotView, error) {
	_, _, occs, err := q.occupanciesOn(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	hours, err := q.operatingHours(ctx)
	if err != nil {
		return nil, err
	}

	occupied := make([]schedule.Interval, len(occs))
	for i, occ := range occs {
		occupied[i] = occ.Slot
	}

	if slotMinutes <= 0 {
		slotMinutes = q.cfg.SlotMinutes
	}
	step := time.Duration(slotMinutes) * time.Minute
	free := schedule.FreeSlots(hours, occupied, step)

	views := make([]FreeSlotView, len(free))
	for i, slot := range free {
		views[i] = FreeSlotView{StartTime: slot.Start(), EndTime: slot.End()}
	}
	return views, nil
}

func (q *scheduleQueriesImpl) occupanciesOn(ctx context.Context, fieldID uuid.UUID, date string) (schedule.Date, []*booking.Booking, []schedule.Occupancy, error) {
	day, err := schedule.ParseDate(date)
	if err != nil {
		return schedule.Date{}, nil, nil, errs.Mark(err, ErrInvalidQueryDate)
	}

	if _, err := q.fields.FindByID(ctx, fieldID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return schedule.Date{}, nil, nil, errs.Mark(err, ErrFieldNotFound)
		}
		return schedule.Date{}, nil, nil, errs.Mark(err, ErrQueryFailed)
	}

	all, err := q.bookings.FindByField(ctx, fieldID)
	if err != nil {
		return schedule.Date{}, nil, nil, errs.Mark(err, ErrQueryFailed)
	}

	var occs []schedule.Occupancy
	for _, b := range all {
		occ, hit, err := b.OccupancyOn(day)
		if err != nil {
			return schedule.Date{}, nil, nil, errs.Mark(err, ErrQueryFailed)
		}
		if hit {
			occs = append(occs, occ)
		}
	}
	schedule.SortOccupancies(occs)
	return day, all, occs, nil
}

// operatingHours falls back to the configured defaults until the desk saves
// its own hours.
func (q *scheduleQueriesImpl) operatingHours(ctx context.Context) (schedule.Interval, error) {
	open, close := q.cfg.DefaultOpen, q.cfg.DefaultClose

	view, err := q.hours.OperatingHours(ctx)
	switch {
	case err == nil:
		open, close = view.Open, view.Close
	case infra.IsKind(err, infra.KindNotFound):
		// keep defaults
	default:
		return schedule.Interval{}, errs.Mark(err, ErrQueryFailed)
	}

	hours, err := schedule.NewInterval(open, close)
	if err != nil {
		return schedule.Interval{}, errs.Mark(err, ErrQueryFailed)
	}
	return hours, nil
}
