// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and mounts every resource under /api/v1,
// each one bound to the same storage handle.
//
// Resource endpoints answer 200, 400, 404 or 500. Requests outside the
// resource routes also get plain-text answers from the router itself:
// 404 "Route not found" for an unknown path and 405 "Method not allowed"
// for a known path with an unrouted method, e.g. PATCH /api/v1/users/1.
package router

import (
	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/handler"
	"github.com/deppfellow/go-crudkit/internal/middleware"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/deppfellow/go-crudkit/internal/service"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// APIPrefix is the path every resource is mounted under.
const APIPrefix = "/api/v1"

// NewRouter builds the Echo instance serving every resource against db.
func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services, db database.Querier) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Runs before routing so "/api/v1/users/" matches "/api/v1/users".
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	registerSystemRoutes(router, h)

	api := router.Group(APIPrefix)
	for _, resource := range resources(s, services, db) {
		resource.mounter.Mount(api.Group("/" + resource.name))
	}

	return router
}

type resource struct {
	name    string
	mounter Mounter
}

func resources(s *server.Server, services *service.Services, db database.Querier) []resource {
	return []resource{
		{"users", NewCrudRouter(s, UserService(services), db)},
		{"posts", NewCrudRouter(s, PostService(services), db)},
	}
}
