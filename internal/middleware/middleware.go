// Package middleware holds the echo middleware of the API.
//
// Global middleware (request ids, logging, tracing, CORS, recovery) runs
// on every route. ParamMiddleware checks path ids before a handler binds
// the request body.
package middleware
