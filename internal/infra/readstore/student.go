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

type StudentReadStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewStudentReadStore(db *pgxpool.Pool, logger *slog.Logger) *StudentReadStore {
	return &StudentReadStore{db: db, logger: logger}
}

const studentViewColumns = `id, booking_id, name, guardian_name, guardian_contact, age,
	created_at, updated_at`

func (s *StudentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StudentView, error) {
	query := `SELECT ` + studentViewColumns + ` FROM students WHERE id = $1`

	view, err := scanStudentView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to find student view", err)
	}
	return view, nil
}

func (s *StudentReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.StudentView, error) {
	query := `SELECT ` + studentViewColumns + ` FROM students WHERE booking_id = $1 ORDER BY name, created_at`

	rows, err := s.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list student views", err)
	}
	defer rows.Close()

	var views []*queries.StudentView
	for rows.Next() {
		view, err := scanStudentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan student view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate student views", err)
	}
	return views, nil
}

func (s *StudentReadStore) FindPaymentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.StudentPaymentView, error) {
	const query = `
		SELECT id, student_id, amount_cents, paid_on, created_at
		FROM student_payments
		WHERE student_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.ClassifyPgErr(err), "failed to list student payment views", err)
	}
	defer rows.Close()

	var views []*queries.StudentPaymentView
	for rows.Next() {
		var (
			view   queries.StudentPaymentView
			paidOn time.Time
		)
		if err := rows.Scan(&view.ID, &view.StudentID, &view.AmountCents, &paidOn, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to scan student payment view", err)
		}
		view.PaidOn = schedule.DateOf(paidOn).String()
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to iterate student payment views", err)
	}
	return views, nil
}

func scanStudentView(row pgx.Row) (*queries.StudentView, error) {
	var view queries.StudentView
	err := row.Scan(
		&view.ID, &view.BookingID, &view.Name, &view.GuardianName,
		&view.GuardianContact, &view.Age, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
