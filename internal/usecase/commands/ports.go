package commands

import (
	"context"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type HoursSnapshot struct {
	Open  string
	Close string
}

type PriceSnapshot struct {
	Class       schedule.Class
	AmountCents int64
}

type FieldRepository interface {
	Create(ctx context.Context, f *field.Field) error
	FindByID(ctx context.Context, id uuid.UUID) (*field.Field, error)
	Update(ctx context.Context, f *field.Field) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByField(ctx context.Context, fieldID uuid.UUID) ([]*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *booking.Payment) error
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*booking.Payment, error)
}

type StudentRepository interface {
	Create(ctx context.Context, s *student.Student) error
	FindByID(ctx context.Context, id uuid.UUID) (*student.Student, error)
	Update(ctx context.Context, s *student.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StudentPaymentRepository interface {
	Create(ctx context.Context, p *student.Payment) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*student.Payment, error)
}

type ConfigRepository interface {
	UpsertOperatingHours(ctx context.Context, open, close string) error
	UpsertPrice(ctx context.Context, class schedule.Class, amountCents int64) error
}
