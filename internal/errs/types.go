package errs

import (
	"net/http"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Optional payload:
//   - code: custom code string (defaults to "BAD_REQUEST" when nil)
//   - errors: field errors
//   - action: client instruction
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewEmptyNotFoundError creates a 404 written with no body.
//
// Todo routes use it both for malformed identifiers and for well-formed
// identifiers that match nothing; clients cannot tell the two apart.
func NewEmptyNotFoundError() *HTTPError {
	return NewNotFoundError(http.StatusText(http.StatusNotFound), false, nil).AsEmpty()
}

// NewEmptyBadRequestError creates a 400 written with no body.
func NewEmptyBadRequestError() *HTTPError {
	return NewBadRequestError(http.StatusText(http.StatusBadRequest), false, nil, nil, nil).AsEmpty()
}

// NewPersistenceError wraps a storage failure as a 400 carrying the raw
// error text. Persistence failures are not sanitized.
func NewPersistenceError(err error) *HTTPError {
	return NewBadRequestError(err.Error(), false, nil, nil, nil)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is the generic status text, not the real internal error.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
