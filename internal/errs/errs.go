// Package errs defines the application error type and its constructors.
//
// Every failure that reaches the HTTP layer is expressed as an *HTTPError so
// the global error handler can pick the status code and the human-readable
// message without knowing where the error came from.
package errs
