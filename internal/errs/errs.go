// Package errs defines the error types returned to API clients.
//
// Every error leaving a handler is an *HTTPError: it carries the status,
// a machine-friendly code and the message, and knows whether it should be
// written as JSON, plain text or no body at all.
package errs
