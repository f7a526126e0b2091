package router

import (
	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/handler"
	"github.com/deppfellow/go-crudkit/internal/model"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/deppfellow/go-crudkit/internal/service"
	"github.com/deppfellow/go-crudkit/internal/validation"
	"github.com/labstack/echo/v4"
)

// Mounter binds a resource's endpoints onto a route group.
type Mounter interface {
	Mount(g *echo.Group)
}

// CrudRouter binds the five CRUD endpoints of one resource.
type CrudRouter[T any, P, U validation.Validatable] struct {
	handler *handler.CrudHandler[T, P, U]
}

// NewCrudRouter builds the handler for svc with db closed over, so every
// endpoint of the resource shares the same storage handle.
func NewCrudRouter[T any, P, U validation.Validatable](
	s *server.Server,
	svc service.CrudService[T, P, U],
	db database.Querier,
) *CrudRouter[T, P, U] {
	return &CrudRouter[T, P, U]{
		handler: handler.NewCrudHandler(s, svc, db),
	}
}

// Mount registers:
//
//	GET    ""     Index
//	POST   ""     Store
//	GET    /:id   Show
//	PUT    /:id   Update
//	DELETE /:id   Destroy
func (r *CrudRouter[T, P, U]) Mount(g *echo.Group) {
	g.GET("", r.handler.Index())
	g.POST("", r.handler.Store())
	g.GET("/:id", r.handler.Show())
	g.PUT("/:id", r.handler.Update())
	g.DELETE("/:id", r.handler.Destroy())
}

// UserService exposes the users service through the generic contract.
func UserService(services *service.Services) service.CrudService[model.User, model.CreateUser, model.UpdateUser] {
	return services.Users
}

// PostService exposes the posts service through the generic contract.
func PostService(services *service.Services) service.CrudService[model.Post, model.CreatePost, model.UpdatePost] {
	return services.Posts
}
