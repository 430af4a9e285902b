package errs

import "strings"

// FieldError represents a field-level validation error.
//
//	{ "field": "text", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type that crosses the handler boundary.
//
// It is serialized directly to JSON by the global error handler unless
// one of the body flags says otherwise:
//   - NoBody: write the status and nothing else (todo 404s).
//   - PlainText: write Message as text/plain (user lookups).
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message; for persistence failures this is the
//     raw driver error text.
//   - Status: HTTP status code.
//   - Override: lets the client show Message verbatim.
//   - Errors: list of per-field errors (validation).
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`

	NoBody    bool `json:"-"`
	PlainText bool `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status; it only matches on type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:      e.Code,
		Message:   message,
		Status:    e.Status,
		Override:  e.Override,
		Errors:    e.Errors,
		Action:    e.Action,
		NoBody:    e.NoBody,
		PlainText: e.PlainText,
	}
}

// AsPlainText returns a copy written as a text/plain body.
func (e *HTTPError) AsPlainText() *HTTPError {
	out := e.WithMessage(e.Message)
	out.PlainText = true
	out.NoBody = false
	return out
}

// AsEmpty returns a copy written without any body.
func (e *HTTPError) AsEmpty() *HTTPError {
	out := e.WithMessage(e.Message)
	out.NoBody = true
	out.PlainText = false
	return out
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
