//go:build unit

package billing_test

import (
	"testing"
	"time"

	"campo-agenda/internal/domain/billing"
	"campo-agenda/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) schedule.Date {
	t.Helper()
	d, err := schedule.ParseDate(s)
	require.NoError(t, err)
	return d
}

func registeredAt(t *testing.T, s string) billing.PaymentRecord {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return billing.PaymentRecord{
		PaidOn:    schedule.DateOf(ts),
		CreatedAt: ts,
	}
}

func TestCycle(t *testing.T) {
	testCases := []struct {
		name     string
		anchor   string
		payments []billing.PaymentRecord
		today    string
		nextDue  string
		state    billing.State
	}{
		{
			name:    "no payment, before first due date",
			anchor:  "2025-01-15",
			today:   "2025-02-10",
			nextDue: "2025-02-15",
			state:   billing.StateNoPaymentDue,
		},
		{
			name:    "no payment, due date passed",
			anchor:  "2025-01-15",
			today:   "2025-02-20",
			nextDue: "2025-02-15",
			state:   billing.StateOverdue,
		},
		{
			name:    "due date itself is not overdue",
			anchor:  "2025-01-15",
			today:   "2025-02-15",
			nextDue: "2025-02-15",
			state:   billing.StateNoPaymentDue,
		},
		{
			name:   "payment advances the cycle",
			anchor: "2025-01-15",
			payments: []billing.PaymentRecord{
				registeredAt(t, "2025-02-14T10:00:00Z"),
			},
			today:   "2025-02-20",
			nextDue: "2025-03-15",
			state:   billing.StatePaid,
		},
		{
			name:   "advanced cycle can lapse again",
			anchor: "2025-01-15",
			payments: []billing.PaymentRecord{
				registeredAt(t, "2025-02-14T10:00:00Z"),
			},
			today:   "2025-03-16",
			nextDue: "2025-03-15",
			state:   billing.StateOverdue,
		},
		{
			name:   "latest payment wins by registration time, not paid-on",
			anchor: "2025-01-15",
			payments: []billing.PaymentRecord{
				{PaidOn: mustDate(t, "2025-04-01"), CreatedAt: time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)},
				{PaidOn: mustDate(t, "2025-01-20"), CreatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)},
			},
			today:   "2025-03-20",
			nextDue: "2025-04-15",
			state:   billing.StatePaid,
		},
		{
			name:    "day-31 anchor clamps into february",
			anchor:  "2025-01-31",
			today:   "2025-02-20",
			nextDue: "2025-02-28",
			state:   billing.StateNoPaymentDue,
		},
		{
			name:    "day-31 anchor clamps to feb 29 in leap years",
			anchor:  "2024-01-31",
			today:   "2024-02-20",
			nextDue: "2024-02-29",
			state:   billing.StateNoPaymentDue,
		},
		{
			name:   "clamped cycle returns to the anchor day in longer months",
			anchor: "2025-01-31",
			payments: []billing.PaymentRecord{
				registeredAt(t, "2025-02-28T12:00:00Z"),
			},
			today:   "2025-03-10",
			nextDue: "2025-03-31",
			state:   billing.StatePaid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := billing.Cycle(mustDate(t, tc.anchor), tc.payments, mustDate(t, tc.today))
			require.NoError(t, err)

			assert.Equal(t, tc.nextDue, status.NextDue.String())
			assert.Equal(t, tc.state, status.State)
		})
	}

	t.Run("zero anchor is indeterminate", func(t *testing.T) {
		_, err := billing.Cycle(schedule.Date{}, nil, mustDate(t, "2025-02-20"))
		assert.ErrorIs(t, err, billing.ErrIndeterminate)
	})

	t.Run("zero today is indeterminate", func(t *testing.T) {
		_, err := billing.Cycle(mustDate(t, "2025-01-15"), nil, schedule.Date{})
		assert.ErrorIs(t, err, billing.ErrIndeterminate)
	})

	t.Run("payment without a registration time is indeterminate", func(t *testing.T) {
		payments := []billing.PaymentRecord{{PaidOn: mustDate(t, "2025-02-14")}}
		_, err := billing.Cycle(mustDate(t, "2025-01-15"), payments, mustDate(t, "2025-02-20"))
		assert.ErrorIs(t, err, billing.ErrIndeterminate)
	})
}
