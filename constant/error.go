package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrInvalidRequest
	ErrUnauthorize
	ErrValidation
	ErrInvalidCredential
	ErrInvalidName
	ErrInvalidContact
	ErrGenerationFailed
	ErrCanceled
	ErrMissingField
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrValidation:        "Please correct the errors in the form.",
	ErrInvalidCredential: "Invalid email or password. Please try again.",
	ErrInvalidName:       "Enter a valid name (letters and spaces only, minimum 2 characters).",
	ErrInvalidContact:    "Enter a valid contact number (10 to 14 digits).",
	ErrGenerationFailed:  "Unable to generate questions. Please try again.",
	ErrCanceled:          "request canceled",
	ErrMissingField:      "Please fill out all required fields.",
}

// ErrorTypeTitle is the headline shown in the transient notification.
var ErrorTypeTitle = map[ErrorType]string{
	Successful:           "Success!",
	ErrInternal:          "Something Went Wrong",
	ErrInvalidRequest:    "Invalid Request",
	ErrUnauthorize:       "Not Signed In",
	ErrValidation:        "Validation Error",
	ErrInvalidCredential: "Login Failed",
	ErrInvalidName:       "Invalid Name",
	ErrInvalidContact:    "Invalid Contact",
	ErrGenerationFailed:  "Generation Failed",
	ErrCanceled:          "Canceled",
	ErrMissingField:      "Missing Information",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrValidation:        http.StatusUnprocessableEntity,
	ErrInvalidCredential: http.StatusUnauthorized,
	ErrInvalidName:       http.StatusUnprocessableEntity,
	ErrInvalidContact:    http.StatusUnprocessableEntity,
	ErrGenerationFailed:  http.StatusBadGateway,
	ErrCanceled:          http.StatusRequestTimeout,
	ErrMissingField:      http.StatusUnprocessableEntity,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrInvalidRequest:    "0002",
	ErrUnauthorize:       "0003",
	ErrValidation:        "0004",
	ErrInvalidCredential: "0005",
	ErrInvalidName:       "0006",
	ErrInvalidContact:    "0007",
	ErrGenerationFailed:  "0008",
	ErrCanceled:          "0009",
	ErrMissingField:      "0010",
}
