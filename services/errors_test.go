package services_test

import (
	"errors"
	"io"
	"testing"

	"hospitality/services"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestNewValidationError(t *testing.T) {
	type payload struct {
		Email  string `validate:"required,email"`
		Guests int    `validate:"min=1"`
		Status string `validate:"oneof=pending confirmed cancelled"`
	}
	err := validator.New().Struct(payload{Email: "nope", Guests: 0, Status: "done"})

	msg := services.NewValidationError(err).Message
	assert.Contains(t, msg, "Email must be a valid email")
	assert.Contains(t, msg, "Guests must be at least 1")
	assert.Contains(t, msg, "Status must be one of [pending confirmed cancelled]")

	assert.Equal(t, "request body is required", services.NewValidationError(io.EOF).Message)
	assert.Equal(t, `unknown field "foo"`, services.NewValidationError(errors.New(`json: unknown field "foo"`)).Message)
}
