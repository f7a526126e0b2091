// Package handler is the HTTP layer, the first entry point after the router.
//
// It binds and validates requests using the validation package, calls the
// service layer and maps the outcome to a status code. Errors are returned
// to the global error handler, which writes the response body.
package handler
