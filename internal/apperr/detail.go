package apperr

import "errors"

// detailErr attaches a user-displayable message to one of the class sentinels.
type detailErr struct {
	class  error
	detail string
}

func (e *detailErr) Error() string { return e.detail }

func (e *detailErr) Unwrap() error { return e.class }

// WithDetail wraps class with a user-displayable detail message.
// errors.Is(err, class) still holds for the result.
func WithDetail(class error, detail string) error {
	if detail == "" {
		return class
	}
	return &detailErr{class: class, detail: detail}
}

// Fallback messages shown when the backend supplies no detail.
const (
	msgUnauthorized = "Session expired. Please log in again."
	msgValidation   = "The request was rejected. Please check your input."
	msgServer       = "Something went wrong. Please try again."
	msgNetwork      = "Unable to connect to server. Please try again."
)

// Detail extracts the message to show the user for err.
func Detail(err error) string {
	var de *detailErr
	if errors.As(err, &de) {
		return de.detail
	}
	switch {
	case errors.Is(err, Unauthorized):
		return msgUnauthorized
	case errors.Is(err, Validation):
		return msgValidation
	case errors.Is(err, Network):
		return msgNetwork
	case err != nil:
		return msgServer
	}
	return ""
}
