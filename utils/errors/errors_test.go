package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/femnest/constant"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := SetCustomError(constant.ErrInvalidCredential)

	assert.Equal(t, constant.ErrorTypeMessage[constant.ErrInvalidCredential], err.Error())
	assert.Equal(t, http.StatusUnauthorized, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrInvalidCredential, err.Type())

	n := err.Notification()
	assert.Equal(t, "Login Failed", n.Title)
	assert.Equal(t, "Invalid email or password. Please try again.", n.Description)
	assert.Equal(t, constant.VariantDestructive, n.Variant)
}

func TestFieldErrors(t *testing.T) {
	fields := map[string]string{constant.FieldEmail: "Please enter a valid email address."}

	v := SetValidationError(fields)
	assert.Equal(t, constant.ErrValidation, v.Type())
	assert.Equal(t, fields, v.Fields())
	assert.Equal(t, "Validation Error", v.Notification().Title)

	m := SetMissingFieldError(map[string]string{"city": "Please fill out this field."})
	assert.Equal(t, http.StatusUnprocessableEntity, m.ErrorHTTPCode())
	assert.Equal(t, "Missing Information", m.Notification().Title)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(SetCustomError(constant.ErrCanceled), constant.ErrCanceled))
	assert.False(t, Is(SetCustomError(constant.ErrCanceled), constant.ErrInternal))
	assert.False(t, Is(fmt.Errorf("plain"), constant.ErrInternal))
	assert.False(t, Is(nil, constant.ErrInternal))
}
