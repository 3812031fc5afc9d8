package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrapped error", err: NewValidationError(errors.New("boom")), want: "boom"},
		{name: "first field", err: NewValidationError(nil, FieldError{"email", "invalid"}, FieldError{"year", "invalid"}), want: "email: invalid"},
		{name: "empty", err: NewValidationError(nil), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsValidationError(t *testing.T) {
	vErr := NewValidationError(nil, FieldError{"category", "unknown"})
	assert.True(t, IsValidationError(vErr))
	assert.True(t, IsValidationError(errors.Wrap(vErr, "materials")))
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.False(t, IsValidationError(nil))
}

func TestAsValidationError(t *testing.T) {
	validate := validator.New()
	translator := NewTranslator()
	InitValidators(validate, translator)

	req := struct {
		Name  string `json:"name" validate:"notblank"`
		Email string `json:"email" validate:"required"`
	}{Name: "   "}

	err := AsValidationError(validate.Struct(req), translator)
	require.True(t, IsValidationError(err))
	assert.Equal(t, []FieldError{
		{Field: "name", Error: "this field cannot be blank"},
		{Field: "email", Error: "this field is required"},
	}, errors.Cause(err).(*ValidationError).Fields)

	other := errors.New("boom")
	assert.Equal(t, other, AsValidationError(other, translator))
	assert.Nil(t, AsValidationError(nil, translator))
}
