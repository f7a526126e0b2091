// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, tracing
// and panic recovery. The global error handler lives here too.
package middleware
