package payments

import (
	"errors"
	"fmt"
)

// Code classifies a service failure.
type Code string

const (
	CodeUnavailable  Code = "unavailable"
	CodeTimeout      Code = "timeout"
	CodeNotFound     Code = "not_found"
	CodeDeclined     Code = "declined"
	CodeInvalid      Code = "invalid"
	CodeInsufficient Code = "insufficient_funds"
)

// ServiceError is returned by Service implementations.
type ServiceError struct {
	Op   string
	Code Code
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(op string, code Code, err error) *ServiceError {
	return &ServiceError{Op: op, Code: code, Err: err}
}

// CodeOf returns the code of a ServiceError in err's chain, or "".
func CodeOf(err error) Code {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsTransient reports whether retrying err may succeed.
func IsTransient(err error) bool {
	switch CodeOf(err) {
	case CodeUnavailable, CodeTimeout:
		return true
	default:
		return false
	}
}

// notFoundMessages names what was missing, by operation.
var notFoundMessages = map[string]string{
	"Quickpay":    "That person is not one of your contacts.",
	"PaymentLink": "We could not find that payment link.",
}

// UserMessage is a short explanation of err suitable for a result screen.
func UserMessage(err error) string {
	var se *ServiceError
	if !errors.As(err, &se) {
		if err == nil {
			return ""
		}
		return "Something went wrong."
	}

	switch se.Code {
	case CodeUnavailable, CodeTimeout:
		return "The payment service is not responding. Try again later."
	case CodeNotFound:
		if msg, ok := notFoundMessages[se.Op]; ok {
			return msg
		}
		return "We could not find what you asked for."
	case CodeDeclined:
		return "The payment was declined."
	case CodeInsufficient:
		return "Your balance is too low for this payment."
	case CodeInvalid:
		return "The payment details are not valid."
	default:
		return "Something went wrong."
	}
}
