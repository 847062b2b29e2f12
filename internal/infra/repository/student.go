package repository

import (
	"context"
	"log/slog"
	"time"

	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"
	"campo-agenda/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StudentRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewStudentRepository(db *pgxpool.Pool, logger *slog.Logger) *StudentRepository {
	return &StudentRepository{db: db, logger: logger}
}

const studentColumns = `id, booking_id, name, guardian_name, guardian_contact, age,
	created_at, updated_at`

func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	const query = `
		INSERT INTO students (id, booking_id, name, guardian_name, guardian_contact, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.BookingID(), s.Name(), s.GuardianName(), s.GuardianContact(), s.Age(), s.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert student", err)
	}
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	s, err := scanStudent(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find student", err)
	}
	return s, nil
}

func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	const query = `
		UPDATE students
		SET name = $2, guardian_name = $3, guardian_contact = $4, age = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID(), s.Name(), s.GuardianName(), s.GuardianContact(), s.Age(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update student", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "student not found", nil)
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM students WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete student", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "student not found", nil)
	}
	return nil
}

func scanStudent(row pgx.Row) (*student.Student, error) {
	var (
		id, bookingID        uuid.UUID
		name, guardianName   string
		guardianContact      string
		age                  int
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &bookingID, &name, &guardianName, &guardianContact,
		&age, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	return student.ReconstructStudent(
		id, bookingID, name, guardianName, guardianContact, age, createdAt, updatedAt,
	), nil
}

type StudentPaymentRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewStudentPaymentRepository(db *pgxpool.Pool, logger *slog.Logger) *StudentPaymentRepository {
	return &StudentPaymentRepository{db: db, logger: logger}
}

func (r *StudentPaymentRepository) Create(ctx context.Context, p *student.Payment) error {
	const query = `
		INSERT INTO student_payments (id, student_id, amount_cents, paid_on, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		p.ID(), p.StudentID(), p.AmountCents(), p.PaidOn().String(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert student payment", err)
	}
	return nil
}

func (r *StudentPaymentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*student.Payment, error) {
	const query = `
		SELECT id, student_id, amount_cents, paid_on, created_at
		FROM student_payments
		WHERE student_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to list student payments", err)
	}
	defer rows.Close()

	var payments []*student.Payment
	for rows.Next() {
		var (
			id, sID     uuid.UUID
			amountCents int64
			paidOn      time.Time
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &sID, &amountCents, &paidOn, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan student payment", err)
		}
		payments = append(payments, student.ReconstructPayment(
			id, sID, amountCents, schedule.DateOf(paidOn), createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate student payments", err)
	}
	return payments, nil
}
