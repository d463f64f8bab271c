package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "redesocial/backend/pkg/errors"
)

func TestPersonInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		input     PersonInput
		wantField string
	}{
		{name: "valid", input: PersonInput{Name: "Ana", Age: 30, Location: "Recife"}},
		{name: "zero age is valid", input: PersonInput{Name: "Bebê", Age: 0, Location: "Olinda"}},
		{name: "empty name", input: PersonInput{Name: "", Age: 30, Location: "Recife"}, wantField: "name"},
		{name: "blank name", input: PersonInput{Name: "   ", Age: 30, Location: "Recife"}, wantField: "name"},
		{name: "negative age", input: PersonInput{Name: "Ana", Age: -1, Location: "Recife"}, wantField: "age"},
		{name: "empty location", input: PersonInput{Name: "Ana", Age: 30}, wantField: "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			var valErr *apperrors.ErrValidationFailed
			require.True(t, errors.As(err, &valErr))
			assert.Equal(t, tt.wantField, valErr.Field)
		})
	}
}

func TestPersonInput_Normalize(t *testing.T) {
	in := PersonInput{Name: "  Ana ", Age: 30, Location: "\tRecife\n"}.Normalize()
	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, "Recife", in.Location)
}
