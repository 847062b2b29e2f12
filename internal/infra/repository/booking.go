package repository

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

const bookingColumns = `id, field_id, class, anchor_date, start_time, end_time,
	owner_name, owner_contact, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, field_id, class, anchor_date, start_time, end_time, owner_name, owner_contact, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.FieldID(), b.Class().String(), b.Anchor().String(),
		b.Slot().Start(), b.Slot().End(), b.OwnerName(), b.OwnerContact(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByField(ctx context.Context, fieldID uuid.UUID) ([]*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE field_id = $1 ORDER BY start_time, created_at`

	rows, err := r.db.Query(ctx, query, fieldID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET start_time = $2, end_time = $3, owner_name = $4, owner_contact = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		b.ID(), b.Slot().Start(), b.Slot().End(), b.OwnerName(), b.OwnerContact(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM bookings WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, fieldID          uuid.UUID
		class                string
		anchorDate           time.Time
		startTime, endTime   string
		ownerName, ownerTel  string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &fieldID, &class, &anchorDate,
		&startTime, &endTime, &ownerName, &ownerTel, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot, err := schedule.NewInterval(startTime, endTime)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, fieldID,
		schedule.Class(class),
		schedule.DateOf(anchorDate),
		slot,
		ownerName, ownerTel,
		createdAt, updatedAt,
	), nil
}
