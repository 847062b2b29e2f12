// Package student models class rosters. A student enrolls in a recurring
// booking (a standing weekly class) and pays a monthly fee tracked per
// student, independent of the booking's own rent.
package student

import (
	"errors"
	"strings"
	"time"

	"campo-agenda/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyStudentName     = errors.New("student name cannot be empty")
	ErrEmptyGuardianContact = errors.New("guardian contact cannot be empty")
	ErrNegativeAge          = errors.New("age cannot be negative")
	ErrNotRecurringClass    = errors.New("students can only enroll in a recurring booking")
)

type Student struct {
	id              uuid.UUID
	bookingID       uuid.UUID
	name            string
	guardianName    string
	guardianContact string
	age             int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewStudent enrolls a student in a class booking. One-off rentals have no
// roster, so the booking must be a recurring class.
func NewStudent(class *booking.Booking, name, guardianName, guardianContact string, age int, now time.Time) (*Student, error) {
	if !class.Class().IsRecurring() {
		return nil, ErrNotRecurringClass
	}

	s := &Student{
		id:        uuid.New(),
		bookingID: class.ID(),
		createdAt: now,
		updatedAt: now,
	}
	if err := s.update(name, guardianName, guardianContact, age); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructStudent(
	id, bookingID uuid.UUID,
	name, guardianName, guardianContact string,
	age int,
	createdAt, updatedAt time.Time,
) *Student {
	return &Student{
		id:              id,
		bookingID:       bookingID,
		name:            name,
		guardianName:    guardianName,
		guardianContact: guardianContact,
		age:             age,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Student) ID() uuid.UUID           { return s.id }
func (s *Student) BookingID() uuid.UUID    { return s.bookingID }
func (s *Student) Name() string            { return s.name }
func (s *Student) GuardianName() string    { return s.guardianName }
func (s *Student) GuardianContact() string { return s.guardianContact }
func (s *Student) Age() int                { return s.age }
func (s *Student) CreatedAt() time.Time    { return s.createdAt }
func (s *Student) UpdatedAt() time.Time    { return s.updatedAt }

// Update replaces the student's personal details.
func (s *Student) Update(name, guardianName, guardianContact string, age int) error {
	return s.update(name, guardianName, guardianContact, age)
}

func (s *Student) update(name, guardianName, guardianContact string, age int) error {
	name = strings.TrimSpace(name)
	guardianContact = strings.TrimSpace(guardianContact)
	if name == "" {
		return ErrEmptyStudentName
	}
	if guardianContact == "" {
		return ErrEmptyGuardianContact
	}
	if age < 0 {
		return ErrNegativeAge
	}

	s.name = name
	s.guardianName = strings.TrimSpace(guardianName)
	s.guardianContact = guardianContact
	s.age = age
	return nil
}
