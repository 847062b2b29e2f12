//go:build unit

package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/config"
	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.DiscardHandler)

type stubBookingStore struct {
	bookings []*booking.Booking
}

func (s *stubBookingStore) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	for _, b := range s.bookings {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "booking not found", nil)
}

func (s *stubBookingStore) FindByField(_ context.Context, fieldID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.FieldID() == fieldID {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubFieldStore struct {
	fields map[uuid.UUID]*field.Field
}

func (s *stubFieldStore) FindByID(_ context.Context, id uuid.UUID) (*field.Field, error) {
	f, ok := s.fields[id]
	if !ok {
		return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "field not found", nil)
	}
	return f, nil
}

type stubHoursStore struct {
	view *queries.OperatingHoursView
}

func (s *stubHoursStore) OperatingHours(_ context.Context) (*queries.OperatingHoursView, error) {
	if s.view == nil {
		return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "operating hours not set", nil)
	}
	return s.view, nil
}

func scheduleCfg() config.ScheduleConfig {
	return config.NewTestConfig().Schedule
}

func newBooking(t *testing.T, f *field.Field, class schedule.Class, anchor, start, end, owner string) *booking.Booking {
	t.Helper()
	factory := booking.NewFactory(clock.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)))
	anchorDate, err := schedule.ParseDate(anchor)
	require.NoError(t, err)
	slot, err := schedule.NewInterval(start, end)
	require.NoError(t, err)
	b, err := factory.CreateBooking(f, class, anchorDate, slot, owner, "11 98888-0000")
	require.NoError(t, err)
	return b
}

func TestScheduleQueries_FreeSlots(t *testing.T) {
	ctx := context.Background()

	f, err := field.NewField("Quadra 1")
	require.NoError(t, err)
	fields := &stubFieldStore{fields: map[uuid.UUID]*field.Field{f.ID(): f}}

	t.Run("booked slot disappears from the default grid", func(t *testing.T) {
		bookings := &stubBookingStore{bookings: []*booking.Booking{
			newBooking(t, f, schedule.ClassSingle, "2025-03-11", "18:00", "19:30", "João"),
		}}
		q := queries.NewScheduleQueries(bookings, fields, &stubHoursStore{}, scheduleCfg())

		views, err := q.FreeSlots(ctx, f.ID(), "2025-03-11", 0)
		require.NoError(t, err)

		starts := make([]string, len(views))
		for i, v := range views {
			starts[i] = v.StartTime
		}
		assert.Equal(t, []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30", "19:30", "21:00"}, starts)
		assert.NotContains(t, starts, "18:00")
	})

	t.Run("recurring booking blocks its expanded dates", func(t *testing.T) {
		// monthly on Tuesdays anchored 2025-03-04
		bookings := &stubBookingStore{bookings: []*booking.Booking{
			newBooking(t, f, schedule.ClassMonthly, "2025-03-04", "18:00", "19:30", "Maria"),
		}}
		q := queries.NewScheduleQueries(bookings, fields, &stubHoursStore{}, scheduleCfg())

		views, err := q.FreeSlots(ctx, f.ID(), "2025-03-11", 0)
		require.NoError(t, err)
		require.Len(t, views, 8)

		// a Wednesday is untouched
		views, err = q.FreeSlots(ctx, f.ID(), "2025-03-12", 0)
		require.NoError(t, err)
		require.Len(t, views, 9)
	})

	t.Run("stored operating hours override the defaults", func(t *testing.T) {
		hours := &stubHoursStore{view: &queries.OperatingHoursView{Open: "08:00", Close: "12:00"}}
		q := queries.NewScheduleQueries(&stubBookingStore{}, fields, hours, scheduleCfg())

		views, err := q.FreeSlots(ctx, f.ID(), "2025-03-11", 0)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "08:00", views[0].StartTime)
		assert.Equal(t, "09:30", views[1].StartTime)
	})

	t.Run("slot length override", func(t *testing.T) {
		q := queries.NewScheduleQueries(&stubBookingStore{}, fields, &stubHoursStore{}, scheduleCfg())

		views, err := q.FreeSlots(ctx, f.ID(), "2025-03-11", 60)
		require.NoError(t, err)
		require.Len(t, views, 14)
		assert.Equal(t, "10:00", views[1].StartTime)
	})

	t.Run("invalid date", func(t *testing.T) {
		q := queries.NewScheduleQueries(&stubBookingStore{}, fields, &stubHoursStore{}, scheduleCfg())
		_, err := q.FreeSlots(ctx, f.ID(), "03/11/2025", 0)
		assert.ErrorIs(t, err, queries.ErrInvalidQueryDate)
	})

	t.Run("unknown field", func(t *testing.T) {
		q := queries.NewScheduleQueries(&stubBookingStore{}, fields, &stubHoursStore{}, scheduleCfg())
		_, err := q.FreeSlots(ctx, uuid.New(), "2025-03-11", 0)
		assert.ErrorIs(t, err, queries.ErrFieldNotFound)
	})
}

func TestScheduleQueries_DaySchedule(t *testing.T) {
	ctx := context.Background()

	f, err := field.NewField("Quadra 1")
	require.NoError(t, err)
	fields := &stubFieldStore{fields: map[uuid.UUID]*field.Field{f.ID(): f}}

	late := newBooking(t, f, schedule.ClassSingle, "2025-03-11", "20:00", "21:30", "João")
	weekly := newBooking(t, f, schedule.ClassMonthly, "2025-03-04", "18:00", "19:30", "Maria")
	otherDay := newBooking(t, f, schedule.ClassSingle, "2025-03-12", "10:00", "11:30", "Pedro")

	bookings := &stubBookingStore{bookings: []*booking.Booking{late, weekly, otherDay}}
	q := queries.NewScheduleQueries(bookings, fields, &stubHoursStore{}, scheduleCfg())

	view, err := q.DaySchedule(ctx, f.ID(), "2025-03-11")
	require.NoError(t, err)

	assert.Equal(t, f.ID(), view.FieldID)
	assert.Equal(t, "2025-03-11", view.Date)
	require.Len(t, view.Entries, 2)

	// chronological order, recurring booking expanded onto the queried date
	assert.Equal(t, "Maria", view.Entries[0].OwnerName)
	assert.Equal(t, "18:00", view.Entries[0].StartTime)
	assert.Equal(t, "mensal", view.Entries[0].Class)
	assert.Equal(t, "João", view.Entries[1].OwnerName)
	assert.Equal(t, "20:00", view.Entries[1].StartTime)
}
