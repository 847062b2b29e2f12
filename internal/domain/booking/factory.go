package booking

import (
	"strings"

	"campo-agenda/internal/domain/field"
	"campo-agenda/internal/domain/schedule"
	"campo-agenda/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory creates bookings with creation time taken from the injected clock
// so billing anchors are testable.
type Factory struct {
	clock clock.Clock
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{clock: c}
}

func (f *Factory) CreateBooking(
	fieldEntity *field.Field,
	class schedule.Class,
	anchor schedule.Date,
	slot schedule.Interval,
	ownerName, ownerContact string,
) (*Booking, error) {
	if !class.IsValid() {
		return nil, ErrInvalidClass
	}
	if anchor.IsZero() {
		return nil, ErrMissingAnchor
	}
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return nil, ErrEmptyOwnerName
	}
	ownerContact = strings.TrimSpace(ownerContact)
	if ownerContact == "" {
		return nil, ErrEmptyOwnerPhone
	}

	return &Booking{
		id:           uuid.New(),
		fieldID:      fieldEntity.ID(),
		class:        class,
		anchor:       anchor,
		slot:         slot,
		ownerName:    ownerName,
		ownerContact: ownerContact,
		createdAt:    f.clock.Now(),
	}, nil
}
