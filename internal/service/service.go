// Package service contains the data access layer.
//
// It sits between the handler and repository layers.
// Every resource exposes the same CrudService contract so handlers and
// routers can be written once and reused for each entity kind.
package service
