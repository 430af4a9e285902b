// Package handler is the first layer after the router.
//
// It binds requests, validates input using the validation
// package, and calls the service layer. Every error it returns is
// an *errs.HTTPError describing exactly what the client receives.
package handler
