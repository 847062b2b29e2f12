//go:build unit

package field_test

import (
	"strings"
	"testing"

	"campo-agenda/internal/domain/field"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewField(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		f, err := field.NewField("  Quadra Society 1  ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, f.ID())
		assert.Equal(t, "Quadra Society 1", f.Name())
	})

	t.Run("name validation", func(t *testing.T) {
		testCases := []struct {
			name      string
			fieldName string
			errIs     error
		}{
			{name: "empty", fieldName: "", errIs: field.ErrEmptyFieldName},
			{name: "whitespace only", fieldName: "   ", errIs: field.ErrEmptyFieldName},
			{name: "max length", fieldName: strings.Repeat("a", field.MaxFieldNameLength)},
			{name: "too long", fieldName: strings.Repeat("a", field.MaxFieldNameLength+1), errIs: field.ErrFieldNameTooLong},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := field.NewField(tc.fieldName)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
					return
				}
				assert.NoError(t, err)
			})
		}
	})
}

func TestField_Rename(t *testing.T) {
	f, err := field.NewField("Quadra 1")
	require.NoError(t, err)

	require.NoError(t, f.Rename("Quadra Coberta"))
	assert.Equal(t, "Quadra Coberta", f.Name())

	assert.ErrorIs(t, f.Rename(""), field.ErrEmptyFieldName)
	assert.Equal(t, "Quadra Coberta", f.Name())
}
