//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"campo-agenda/internal/domain/booking"
	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	reqdto "campo-agenda/internal/handler/dto/request"
	"campo-agenda/internal/infra"
	"campo-agenda/internal/pkg/clock"
	"campo-agenda/internal/pkg/keylock"
	"campo-agenda/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.DiscardHandler)

type stubFieldRepo struct {
	fields map[uuid.UUID]*field.Field
}

func newStubFieldRepo(fields ...*field.Field) *stubFieldRepo {
	r := &stubFieldRepo{fields: make(map[uuid.UUID]*field.Field)}
	for _, f := range fields {
		r.fields[f.ID()] = f
	}
	return r
}

func (r *stubFieldRepo) Create(_ context.Context, f *field.Field) error {
	r.fields[f.ID()] = f
	return nil
}

func (r *stubFieldRepo) FindByID(_ context.Context, id uuid.UUID) (*field.Field, error) {
	f, ok := r.fields[id]
	if !ok {
		return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "field not found", nil)
	}
	return f, nil
}

func (r *stubFieldRepo) Update(_ context.Context, f *field.Field) error {
	r.fields[f.ID()] = f
	return nil
}

func (r *stubFieldRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.fields[id]; !ok {
		return infra.WrapRepoErr(testLogger, infra.KindNotFound, "field not found", nil)
	}
	delete(r.fields, id)
	return nil
}

type stubBookingRepo struct {
	bookings map[uuid.UUID]*booking.Booking
}

func newStubBookingRepo(bookings ...*booking.Booking) *stubBookingRepo {
	r := &stubBookingRepo{bookings: make(map[uuid.UUID]*booking.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID()] = b
	}
	return r
}

func (r *stubBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	r.bookings[b.ID()] = b
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr(testLogger, infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (r *stubBookingRepo) FindByField(_ context.Context, fieldID uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.FieldID() == fieldID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	r.bookings[b.ID()] = b
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.bookings[id]; !ok {
		return infra.WrapRepoErr(testLogger, infra.KindNotFound, "booking not found", nil)
	}
	delete(r.bookings, id)
	return nil
}

func newTestField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.NewField("Quadra 1")
	require.NoError(t, err)
	return f
}

func newUseCase(fieldRepo commands.FieldRepository, bookingRepo commands.BookingRepository) commands.BookingCommands {
	factory := booking.NewFactory(clock.NewMockClock(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)))
	return commands.NewBookingUseCase(bookingRepo, fieldRepo, factory, keylock.New(), testLogger)
}

func createRequest(fieldID uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FieldID:      fieldID,
		Class:        "avulso",
		AnchorDate:   "2025-03-11",
		StartTime:    "17:00",
		EndTime:      "18:00",
		OwnerName:    "João",
		OwnerContact: "11 99999-0000",
	}
}

func TestBookingCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newTestField(t)
		bookingRepo := newStubBookingRepo()
		uc := newUseCase(newStubFieldRepo(f), bookingRepo)

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		stored, err := bookingRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "17:00", stored.Slot().Start())
	})

	t.Run("field not found", func(t *testing.T) {
		uc := newUseCase(newStubFieldRepo(), newStubBookingRepo())

		_, err := uc.Create(ctx, createRequest(uuid.New()))
		assert.ErrorIs(t, err, commands.ErrFieldNotFound)
	})

	t.Run("overlapping slot is rejected", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		_, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		req := createRequest(f.ID())
		req.StartTime = "17:30"
		req.EndTime = "19:00"
		_, err = uc.Create(ctx, req)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("touching slot is accepted", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		_, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		req := createRequest(f.ID())
		req.StartTime = "18:00"
		req.EndTime = "19:30"
		_, err = uc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("recurring booking blocks its weekday", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		req := createRequest(f.ID())
		req.Class = "mensal"
		req.AnchorDate = "2025-03-04"
		_, err := uc.Create(ctx, req)
		require.NoError(t, err)

		// one week later, same slot
		req2 := createRequest(f.ID())
		req2.AnchorDate = "2025-03-11"
		_, err = uc.Create(ctx, req2)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("validation failures", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		testCases := []struct {
			name   string
			mutate func(*reqdto.CreateBookingRequest)
		}{
			{name: "bad date", mutate: func(r *reqdto.CreateBookingRequest) { r.AnchorDate = "11/03/2025" }},
			{name: "bad time", mutate: func(r *reqdto.CreateBookingRequest) { r.StartTime = "5pm" }},
			{name: "inverted slot", mutate: func(r *reqdto.CreateBookingRequest) { r.StartTime, r.EndTime = "19:00", "18:00" }},
			{name: "unknown class", mutate: func(r *reqdto.CreateBookingRequest) { r.Class = "semanal" }},
			{name: "blank owner", mutate: func(r *reqdto.CreateBookingRequest) { r.OwnerName = "  " }},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req := createRequest(f.ID())
				tc.mutate(&req)
				_, err := uc.Create(ctx, req)
				assert.ErrorIs(t, err, commands.ErrBookingValidation)
			})
		}
	})
}

func TestBookingCommands_Update(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("reschedule to a free slot", func(t *testing.T) {
		f := newTestField(t)
		bookingRepo := newStubBookingRepo()
		uc := newUseCase(newStubFieldRepo(f), bookingRepo)

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateBookingRequest{
			StartTime: strPtr("20:00"),
			EndTime:   strPtr("21:30"),
		})
		require.NoError(t, err)

		stored, err := bookingRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "20:00", stored.Slot().Start())
	})

	t.Run("rescheduling over itself is not a conflict", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateBookingRequest{
			StartTime: strPtr("17:30"),
			EndTime:   strPtr("18:30"),
		})
		assert.NoError(t, err)
	})

	t.Run("rescheduling into another booking conflicts", func(t *testing.T) {
		f := newTestField(t)
		uc := newUseCase(newStubFieldRepo(f), newStubBookingRepo())

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		req2 := createRequest(f.ID())
		req2.StartTime = "19:00"
		req2.EndTime = "20:00"
		_, err = uc.Create(ctx, req2)
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateBookingRequest{
			StartTime: strPtr("19:30"),
			EndTime:   strPtr("20:30"),
		})
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("owner update keeps the slot", func(t *testing.T) {
		f := newTestField(t)
		bookingRepo := newStubBookingRepo()
		uc := newUseCase(newStubFieldRepo(f), bookingRepo)

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		err = uc.Update(ctx, id, reqdto.UpdateBookingRequest{OwnerName: strPtr("Maria")})
		require.NoError(t, err)

		stored, err := bookingRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Maria", stored.OwnerName())
		assert.Equal(t, "17:00", stored.Slot().Start())
		assert.Equal(t, "11 99999-0000", stored.OwnerContact())
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := newUseCase(newStubFieldRepo(), newStubBookingRepo())
		err := uc.Update(ctx, uuid.New(), reqdto.UpdateBookingRequest{OwnerName: strPtr("Maria")})
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newTestField(t)
		bookingRepo := newStubBookingRepo()
		uc := newUseCase(newStubFieldRepo(f), bookingRepo)

		id, err := uc.Create(ctx, createRequest(f.ID()))
		require.NoError(t, err)

		require.NoError(t, uc.Delete(ctx, id))

		_, err = bookingRepo.FindByID(ctx, id)
		assert.Error(t, err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := newUseCase(newStubFieldRepo(), newStubBookingRepo())
		assert.ErrorIs(t, uc.Delete(ctx, uuid.New()), commands.ErrBookingNotFound)
	})
}
