package handler

import (
	"net/http"

	"github.com/deppfellow/go-crudkit/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmptyRequest is the request of endpoints that read nothing from the request.
type EmptyRequest struct{}

func (r *EmptyRequest) Bind(echo.Context) error { return nil }
func (r *EmptyRequest) Validate() error         { return nil }

// IDRequest carries the integer :id path parameter.
type IDRequest struct {
	ID int32
}

func (r *IDRequest) Bind(c echo.Context) error {
	return bindID(c, &r.ID)
}

func (r *IDRequest) Validate() error { return nil }

// BodyRequest carries a JSON body decoded into P.
type BodyRequest[P validation.Validatable] struct {
	Payload P
}

func (r *BodyRequest[P]) Bind(c echo.Context) error {
	return bindBody(c, &r.Payload)
}

func (r *BodyRequest[P]) Validate() error {
	return r.Payload.Validate()
}

// IDBodyRequest carries the :id path parameter and a JSON body decoded into U.
type IDBodyRequest[U validation.Validatable] struct {
	ID      int32
	Payload U
}

func (r *IDBodyRequest[U]) Bind(c echo.Context) error {
	if err := bindID(c, &r.ID); err != nil {
		return err
	}
	return bindBody(c, &r.Payload)
}

func (r *IDBodyRequest[U]) Validate() error {
	return r.Payload.Validate()
}

func bindID(c echo.Context, id *int32) error {
	if err := echo.PathParamsBinder(c).MustInt32("id", id).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer").SetInternal(err)
	}
	return nil
}

// bindBody decodes the request body only, so path and query values never
// leak into payload fields.
func bindBody(c echo.Context, payload any) error {
	binder := &echo.DefaultBinder{}
	return binder.BindBody(c, payload)
}
