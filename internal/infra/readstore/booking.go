package readstore

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingReadStore(db *pgxpool.Pool, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: db, logger: logger}
}

const bookingViewColumns = `
	b.id, b.field_id, f.name, b.class, b.anchor_date, b.start_time, b.end_time,
	b.owner_name, b.owner_contact, b.created_at, b.updated_at`

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN fields f ON f.id = b.field_id
		WHERE b.id = $1`

	view, err := scanBookingView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to find booking view", err)
	}
	return view, nil
}

func (s *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN fields f ON f.id = b.field_id
		ORDER BY b.created_at DESC`

	return s.list(ctx, query)
}

func (s *BookingReadStore) FindByField(ctx context.Context, fieldID uuid.UUID) ([]*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN fields f ON f.id = b.field_id
		WHERE b.field_id = $1
		ORDER BY b.start_time, b.created_at`

	return s.list(ctx, query, fieldID)
}

func (s *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list booking views", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan booking view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate booking views", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view       queries.BookingView
		anchorDate time.Time
	)
	err := row.Scan(
		&view.ID, &view.FieldID, &view.FieldName, &view.Class, &anchorDate,
		&view.StartTime, &view.EndTime, &view.OwnerName, &view.OwnerContact,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	anchor := schedule.DateOf(anchorDate)
	view.AnchorDate = anchor.String()
	view.Weekday = schedule.WeekdayName(anchor.Weekday())
	return &view, nil
}
