package readstore

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPaymentReadStore(db *pgxpool.Pool, logger *slog.Logger) *PaymentReadStore {
	return &PaymentReadStore{db: db, logger: logger}
}

func (s *PaymentReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	const query = `
		SELECT id, booking_id, amount_cents, paid_on, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list payment views", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var (
			view   queries.PaymentView
			paidOn time.Time
		)
		if err := rows.Scan(&view.ID, &view.BookingID, &view.AmountCents, &paidOn, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan payment view", err)
		}
		view.PaidOn = schedule.DateOf(paidOn).String()
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate payment views", err)
	}
	return views, nil
}
