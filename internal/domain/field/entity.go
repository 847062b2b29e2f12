package field

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyFieldName   = errors.New("field name cannot be empty")
	ErrFieldNameTooLong = errors.New("field name is too long (max 255 characters)")
)

const MaxFieldNameLength = 255

// Field is a bookable resource: one physical pitch.
type Field struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewField(name string) (*Field, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Field{
		id:   uuid.New(),
		name: strings.TrimSpace(name),
	}, nil
}

func ReconstructField(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Field {
	return &Field{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (f *Field) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	f.name = strings.TrimSpace(name)
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyFieldName
	}
	if len(name) > MaxFieldNameLength {
		return ErrFieldNameTooLong
	}
	return nil
}

func (f *Field) ID() uuid.UUID        { return f.id }
func (f *Field) Name() string         { return f.name }
func (f *Field) CreatedAt() time.Time { return f.createdAt }
func (f *Field) UpdatedAt() time.Time { return f.updatedAt }
