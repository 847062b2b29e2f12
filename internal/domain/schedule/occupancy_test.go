//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"campo-agenda/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasConflict(t *testing.T) {
	fieldID := uuid.New()
	bookingID := uuid.New()
	date, err := schedule.ParseDate("2025-03-11")
	require.NoError(t, err)
	otherDate, err := schedule.ParseDate("2025-03-12")
	require.NoError(t, err)

	occupied := func(d schedule.Date, start, end string) schedule.Occupancy {
		slot, err := schedule.NewInterval(start, end)
		require.NoError(t, err)
		return schedule.Occupancy{
			FieldID:   fieldID,
			BookingID: bookingID,
			Date:      d,
			Slot:      slot,
		}
	}

	mustInterval := func(start, end string) schedule.Interval {
		iv, err := schedule.NewInterval(start, end)
		require.NoError(t, err)
		return iv
	}

	existing := []schedule.Occupancy{occupied(date, "18:00", "19:30")}

	t.Run("overlapping slot on the same field and date", func(t *testing.T) {
		hit := schedule.HasConflict(fieldID, date, mustInterval("19:00", "20:30"), existing, uuid.Nil)
		assert.True(t, hit)
	})

	t.Run("touching slot passes", func(t *testing.T) {
		hit := schedule.HasConflict(fieldID, date, mustInterval("19:30", "21:00"), existing, uuid.Nil)
		assert.False(t, hit)
	})

	t.Run("another date passes", func(t *testing.T) {
		hit := schedule.HasConflict(fieldID, otherDate, mustInterval("18:00", "19:30"), existing, uuid.Nil)
		assert.False(t, hit)
	})

	t.Run("another field passes", func(t *testing.T) {
		hit := schedule.HasConflict(uuid.New(), date, mustInterval("18:00", "19:30"), existing, uuid.Nil)
		assert.False(t, hit)
	})

	t.Run("excluded booking is skipped", func(t *testing.T) {
		hit := schedule.HasConflict(fieldID, date, mustInterval("18:00", "19:30"), existing, bookingID)
		assert.False(t, hit)

		// excluding some other booking must not skip the collision
		hit = schedule.HasConflict(fieldID, date, mustInterval("18:00", "19:30"), existing, uuid.New())
		assert.True(t, hit)
	})
}

func TestHasWeekdayConflict(t *testing.T) {
	fieldID := uuid.New()
	bookingID := uuid.New()

	mustInterval := func(start, end string) schedule.Interval {
		iv, err := schedule.NewInterval(start, end)
		require.NoError(t, err)
		return iv
	}

	existing := []schedule.WeekdaySlot{{
		FieldID:   fieldID,
		BookingID: bookingID,
		Weekday:   time.Tuesday,
		Slot:      mustInterval("18:00", "19:30"),
	}}

	t.Run("same weekday with overlapping slot", func(t *testing.T) {
		hit := schedule.HasWeekdayConflict(fieldID, time.Tuesday, mustInterval("19:00", "20:30"), existing, uuid.Nil)
		assert.True(t, hit)
	})

	t.Run("another weekday passes", func(t *testing.T) {
		hit := schedule.HasWeekdayConflict(fieldID, time.Wednesday, mustInterval("18:00", "19:30"), existing, uuid.Nil)
		assert.False(t, hit)
	})

	t.Run("another field passes", func(t *testing.T) {
		hit := schedule.HasWeekdayConflict(uuid.New(), time.Tuesday, mustInterval("18:00", "19:30"), existing, uuid.Nil)
		assert.False(t, hit)
	})

	t.Run("excluded booking is skipped", func(t *testing.T) {
		hit := schedule.HasWeekdayConflict(fieldID, time.Tuesday, mustInterval("18:00", "19:30"), existing, bookingID)
		assert.False(t, hit)
	})
}

func TestSortOccupancies(t *testing.T) {
	fieldID := uuid.New()
	date, err := schedule.ParseDate("2025-03-11")
	require.NoError(t, err)

	slotAt := func(start, end string) schedule.Interval {
		iv, err := schedule.NewInterval(start, end)
		require.NoError(t, err)
		return iv
	}

	occs := []schedule.Occupancy{
		{FieldID: fieldID, BookingID: uuid.New(), Date: date, Slot: slotAt("20:00", "21:30")},
		{FieldID: fieldID, BookingID: uuid.New(), Date: date, Slot: slotAt("09:00", "10:30")},
		{FieldID: fieldID, BookingID: uuid.New(), Date: date, Slot: slotAt("15:00", "16:30")},
	}
	schedule.SortOccupancies(occs)

	assert.Equal(t, "09:00", occs[0].Slot.Start())
	assert.Equal(t, "15:00", occs[1].Slot.Start())
	assert.Equal(t, "20:00", occs[2].Slot.Start())
}
