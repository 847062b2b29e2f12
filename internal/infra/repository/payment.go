package repository

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewPaymentRepository(db *pgxpool.Pool, logger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{db: db, logger: logger}
}

func (r *PaymentRepository) Create(ctx context.Context, p *booking.Payment) error {
	const query = `
		INSERT INTO payments (id, booking_id, amount_cents, paid_on, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.BookingID(), p.AmountCents(), p.PaidOn().String(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert payment", err)
	}
	return nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error) {
	const query = `
		SELECT id, booking_id, amount_cents, paid_on, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to list payments", err)
	}
	defer rows.Close()

	var payments []*booking.Payment
	for rows.Next() {
		var (
			id, bID     uuid.UUID
			amountCents int64
			paidOn      time.Time
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &bID, &amountCents, &paidOn, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan payment", err)
		}
		payments = append(payments, booking.ReconstructPayment(
			id, bID, amountCents, schedule.DateOf(paidOn), createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate payments", err)
	}
	return payments, nil
}
