package handler

import (
	"github.com/deppfellow/go-crudkit/internal/server"
)

// Handlers groups the handlers that are not tied to a resource.
//
// Resource handlers are built per resource by the router, since each one
// closes over its own service and the storage handle.
type Handlers struct {
	Health *HealthHandler
}

func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
	}
}
