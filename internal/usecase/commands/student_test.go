//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/domain/student"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStudentRepo struct {
	students map[uuid.UUID]*student.Student
}

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{students: make(map[uuid.UUID]*student.Student)}
}

func (r *stubStudentRepo) Create(_ context.Context, s *student.Student) error {
	r.students[s.ID()] = s
	return nil
}

func (r *stubStudentRepo) FindByID(_ context.Context, id uuid.UUID) (*student.Student, error) {
	s, ok := r.students[id]
	if !ok {
		return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "student not found", nil)
	}
	return s, nil
}

func (r *stubStudentRepo) Update(_ context.Context, s *student.Student) error {
	r.students[s.ID()] = s
	return nil
}

func (r *stubStudentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.students[id]; !ok {
		return infra.WrapRepoErr(testLogger, infra.KindNotFound, "student not found", nil)
	}
	delete(r.students, id)
	return nil
}

type stubStudentPaymentRepo struct {
	payments map[uuid.UUID][]*student.Payment
}

func newStubStudentPaymentRepo() *stubStudentPaymentRepo {
	return &stubStudentPaymentRepo{payments: make(map[uuid.UUID][]*student.Payment)}
}

func (r *stubStudentPaymentRepo) Create(_ context.Context, p *student.Payment) error {
	r.payments[p.StudentID()] = append(r.payments[p.StudentID()], p)
	return nil
}

func (r *stubStudentPaymentRepo) ListByStudent(_ context.Context, studentID uuid.UUID) ([]*student.Payment, error) {
	return r.payments[studentID], nil
}

func newClassBooking(t *testing.T, class schedule.Class) *booking.Booking {
	t.Helper()

	f := newTestField(t)
	factory := booking.NewFactory(clock.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)))
	anchor, err := schedule.ParseDate("2025-03-11")
	require.NoError(t, err)
	slot, err := schedule.NewInterval("18:00", "19:30")
	require.NoError(t, err)

	b, err := factory.CreateBooking(f, class, anchor, slot, "Carlos", "11 97777-0000")
	require.NoError(t, err)
	return b
}

func newStudentUseCase(
	studentRepo commands.StudentRepository,
	bookingRepo commands.BookingRepository,
	paymentRepo commands.StudentPaymentRepository,
) commands.StudentCommands {
	mock := clock.NewMockClock(time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC))
	return commands.NewStudentUseCase(studentRepo, bookingRepo, paymentRepo, mock, testLogger)
}

func enrollRequest() reqdto.EnrollStudentRequest {
	return reqdto.EnrollStudentRequest{
		Name:            "Pedro",
		GuardianName:    "Ana",
		GuardianContact: "11 96666-0000",
		Age:             12,
	}
}

func TestStudentCommands_Enroll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		studentRepo := newStubStudentRepo()
		uc := newStudentUseCase(studentRepo, newStubBookingRepo(class), newStubStudentPaymentRepo())

		id, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		stored, err := studentRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, class.ID(), stored.BookingID())
		assert.Equal(t, "Pedro", stored.Name())
	})

	t.Run("one-off rental is rejected", func(t *testing.T) {
		rental := newClassBooking(t, schedule.ClassSingle)
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(rental), newStubStudentPaymentRepo())

		_, err := uc.Enroll(ctx, rental.ID(), enrollRequest())
		assert.ErrorIs(t, err, commands.ErrStudentValidation)
		assert.ErrorIs(t, err, student.ErrNotRecurringClass)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(), newStubStudentPaymentRepo())

		_, err := uc.Enroll(ctx, uuid.New(), enrollRequest())
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestStudentCommands_Update(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("partial update keeps the rest", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		studentRepo := newStubStudentRepo()
		uc := newStudentUseCase(studentRepo, newStubBookingRepo(class), newStubStudentPaymentRepo())

		id, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateStudentRequest{Name: strPtr("Pedro Silva")})
		require.NoError(t, err)

		stored, err := studentRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Pedro Silva", stored.Name())
		assert.Equal(t, "11 96666-0000", stored.GuardianContact())
		assert.Equal(t, 12, stored.Age())
	})

	t.Run("blank contact is rejected", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(class), newStubStudentPaymentRepo())

		id, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateStudentRequest{GuardianContact: strPtr("  ")})
		assert.ErrorIs(t, err, commands.ErrStudentValidation)
	})

	t.Run("unknown student", func(t *testing.T) {
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(), newStubStudentPaymentRepo())
		err := uc.Update(ctx, uuid.New(), reqdto.UpdateStudentRequest{Name: strPtr("Pedro")})
		assert.ErrorIs(t, err, commands.ErrStudentNotFound)
	})
}

func TestStudentCommands_RegisterPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		paymentRepo := newStubStudentPaymentRepo()
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(class), paymentRepo)

		studentID, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)

		id, err := uc.RegisterPayment(ctx, studentID, reqdto.RegisterPaymentRequest{
			AmountCents: 15000,
			PaidOn:      "2025-04-10",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		payments, err := paymentRepo.ListByStudent(ctx, studentID)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.Equal(t, int64(15000), payments[0].AmountCents())
	})

	t.Run("bad date", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(class), newStubStudentPaymentRepo())

		studentID, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)

		_, err = uc.RegisterPayment(ctx, studentID, reqdto.RegisterPaymentRequest{
			AmountCents: 15000,
			PaidOn:      "10/04/2025",
		})
		assert.ErrorIs(t, err, commands.ErrPaymentValidation)
	})

	t.Run("unknown student", func(t *testing.T) {
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(), newStubStudentPaymentRepo())
		_, err := uc.RegisterPayment(ctx, uuid.New(), reqdto.RegisterPaymentRequest{
			AmountCents: 15000,
			PaidOn:      "2025-04-10",
		})
		assert.ErrorIs(t, err, commands.ErrStudentNotFound)
	})
}

func TestStudentCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		class := newClassBooking(t, schedule.ClassMonthly)
		studentRepo := newStubStudentRepo()
		uc := newStudentUseCase(studentRepo, newStubBookingRepo(class), newStubStudentPaymentRepo())

		id, err := uc.Enroll(ctx, class.ID(), enrollRequest())
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, id))

		_, err = studentRepo.FindByID(ctx, id)
		assert.Error(t, err)
	})

	t.Run("unknown student", func(t *testing.T) {
		uc := newStudentUseCase(newStubStudentRepo(), newStubBookingRepo(), newStubStudentPaymentRepo())
		assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), commands.ErrStudentNotFound)
	})
}
