package errors

import (
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
)

type CustomError struct {
	errType constant.ErrorType
	fields  map[string]string
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Fields returns the per-field messages of a validation error, or nil.
func (c CustomError) Fields() map[string]string {
	return c.fields
}

// Notification renders the error as a destructive toast.
func (c CustomError) Notification() model.Notification {
	return model.Notification{
		Title:       constant.ErrorTypeTitle[c.errType],
		Description: constant.ErrorTypeMessage[c.errType],
		Variant:     constant.VariantDestructive,
	}
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetValidationError wraps a field error set; the map is owned by the error.
func SetValidationError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		fields:  fields,
	}
}

// SetMissingFieldError reports inputs that failed their control-level checks.
func SetMissingFieldError(fields map[string]string) CustomError {
	return CustomError{
		errType: constant.ErrMissingField,
		fields:  fields,
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
