//go:build unit

package student_test

import (
	"testing"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"
	"campo-agenda/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enrolledAt = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

func newClassBooking(t *testing.T, class schedule.Class) *booking.Booking {
	t.Helper()

	f, err := field.NewField("Quadra 1")
	require.NoError(t, err)

	factory := booking.NewFactory(clock.NewMockClock(enrolledAt))
	anchor, err := schedule.ParseDate("2025-03-11")
	require.NoError(t, err)
	slot, err := schedule.NewInterval("18:00", "19:30")
	require.NoError(t, err)

	b, err := factory.CreateBooking(f, class, anchor, slot, "Carlos", "11 97777-0000")
	require.NoError(t, err)
	return b
}

func TestNewStudent(t *testing.T) {
	t.Run("enrolls into a monthly class", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)

		s, err := student.NewStudent(class, "Pedro", "Ana", "11 96666-0000", 12, enrolledAt)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, class.ID(), s.BookingID())
		assert.Equal(t, "Pedro", s.Name())
		assert.Equal(t, "Ana", s.GuardianName())
		assert.Equal(t, 12, s.Age())
		assert.Equal(t, enrolledAt, s.CreatedAt())
	})

	t.Run("one-off rental has no roster", func(t *testing.T) {
		rental := newClassBooking(t, schedule.ClassSingle)

		_, err := student.NewStudent(rental, "Pedro", "Ana", "11 96666-0000", 12, enrolledAt)
		assert.ErrorIs(t, err, student.ErrNotRecurringClass)
	})

	t.Run("guardian name is optional", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassAnnual)

		s, err := student.NewStudent(class, "Pedro", "", "11 96666-0000", 12, enrolledAt)
		require.NoError(t, err)
		assert.Empty(t, s.GuardianName())
	})

	t.Run("validation failures", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)

		testCases := []struct {
			name    string
			student string
			contact string
			age     int
			want    error
		}{
			{name: "blank name", student: "  ", contact: "11 96666-0000", age: 12, want: student.ErrEmptyStudentName},
			{name: "blank contact", student: "Pedro", contact: "  ", age: 12, want: student.ErrEmptyGuardianContact},
			{name: "negative age", student: "Pedro", contact: "11 96666-0000", age: -1, want: student.ErrNegativeAge},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := student.NewStudent(class, tc.student, "Ana", tc.contact, tc.age, enrolledAt)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestStudent_Update(t *testing.T) {
	class := newClassBooking(t, schedule.ClassMonthly)
	s, err := student.NewStudent(class, "Pedro", "Ana", "11 96666-0000", 12, enrolledAt)
	require.NoError(t, err)

	t.Run("replaces details", func(t *testing.T) {
		require.NoError(t, s.Update("Pedro Silva", "Ana Silva", "11 95555-0000", 13))
		assert.Equal(t, "Pedro Silva", s.Name())
		assert.Equal(t, 13, s.Age())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		err := s.Update("", "Ana", "11 96666-0000", 13)
		assert.ErrorIs(t, err, student.ErrEmptyStudentName)
		assert.Equal(t, "Pedro Silva", s.Name())
	})
}

func TestNewPayment(t *testing.T) {
	paidOn, err := schedule.ParseDate("2025-04-10")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		p, err := student.NewPayment(uuid.New(), 15000, paidOn, enrolledAt)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), p.AmountCents())
		assert.Equal(t, paidOn, p.Record().PaidOn)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := student.NewPayment(uuid.New(), -1, paidOn, enrolledAt)
		assert.ErrorIs(t, err, student.ErrNegativeAmount)
	})

	t.Run("missing paid date", func(t *testing.T) {
		_, err := student.NewPayment(uuid.New(), 15000, schedule.Date{}, enrolledAt)
		assert.ErrorIs(t, err, student.ErrMissingPaidOn)
	})
}
