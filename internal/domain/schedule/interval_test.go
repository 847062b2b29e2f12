//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"campo-agenda/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		iv, err := schedule.NewInterval("17:00", "18:30")
		require.NoError(t, err)

		assert.Equal(t, "17:00", iv.Start())
		assert.Equal(t, "18:30", iv.End())
		assert.Equal(t, 90*time.Minute, iv.Duration())
	})

	t.Run("time validation", func(t *testing.T) {
		testCases := []struct {
			name  string
			start string
			end   string
			errIs error
		}{
			{name: "midnight start", start: "00:00", end: "01:00"},
			{name: "last valid minute", start: "23:00", end: "23:59"},
			{name: "missing leading zero", start: "9:00", end: "10:00", errIs: schedule.ErrInvalidTime},
			{name: "hour out of range", start: "24:00", end: "25:00", errIs: schedule.ErrInvalidTime},
			{name: "minute out of range", start: "10:60", end: "11:00", errIs: schedule.ErrInvalidTime},
			{name: "wrong separator", start: "10.00", end: "11:00", errIs: schedule.ErrInvalidTime},
			{name: "empty start", start: "", end: "11:00", errIs: schedule.ErrInvalidTime},
			{name: "seconds not allowed", start: "10:00:00", end: "11:00", errIs: schedule.ErrInvalidTime},
			{name: "end before start", start: "18:00", end: "17:00", errIs: schedule.ErrInvalidInterval},
			{name: "zero length", start: "17:00", end: "17:00", errIs: schedule.ErrInvalidInterval},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := schedule.NewInterval(tc.start, tc.end)
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})
}

func TestInterval_Overlaps(t *testing.T) {
	mustInterval := func(start, end string) schedule.Interval {
		iv, err := schedule.NewInterval(start, end)
		require.NoError(t, err)
		return iv
	}

	testCases := []struct {
		name     string
		a, b     schedule.Interval
		overlaps bool
	}{
		{
			name:     "partial overlap",
			a:        mustInterval("17:00", "18:00"),
			b:        mustInterval("17:30", "19:00"),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustInterval("10:00", "14:00"),
			b:        mustInterval("11:00", "12:00"),
			overlaps: true,
		},
		{
			name:     "identical",
			a:        mustInterval("10:00", "11:30"),
			b:        mustInterval("10:00", "11:30"),
			overlaps: true,
		},
		{
			name:     "touching endpoints do not overlap",
			a:        mustInterval("10:00", "11:30"),
			b:        mustInterval("11:30", "13:00"),
			overlaps: false,
		},
		{
			name:     "disjoint",
			a:        mustInterval("09:00", "10:00"),
			b:        mustInterval("20:00", "21:00"),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// overlap is symmetric
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}
