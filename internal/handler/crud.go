package handler

import (
	"net/http"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/errs"
	"github.com/deppfellow/go-crudkit/internal/server"
	"github.com/deppfellow/go-crudkit/internal/service"
	"github.com/deppfellow/go-crudkit/internal/validation"
	"github.com/labstack/echo/v4"
)

// CrudHandler exposes one CrudService over HTTP.
//
// Status mapping:
//
//	Store, Update: 400 on bind or validation failure, 500 on any service error
//	Index, Destroy: 500 on any service error
//	Show: 404 on any service error
//
// A missing id therefore answers 404 from Show but 500 from Update and
// Destroy. Error bodies carry the underlying message verbatim.
type CrudHandler[T any, P, U validation.Validatable] struct {
	Handler
	service service.CrudService[T, P, U]
	db      database.Querier
}

// NewCrudHandler builds a handler whose endpoints all run against db.
func NewCrudHandler[T any, P, U validation.Validatable](
	s *server.Server,
	svc service.CrudService[T, P, U],
	db database.Querier,
) *CrudHandler[T, P, U] {
	return &CrudHandler[T, P, U]{
		Handler: NewHandler(s),
		service: svc,
		db:      db,
	}
}

// Store creates a record from a P body.
func (h *CrudHandler[T, P, U]) Store() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *BodyRequest[P]) (T, error) {
		record, err := h.service.Create(c.Request().Context(), h.db, req.Payload)
		if err != nil {
			return record, errs.Wrap(http.StatusInternalServerError, err)
		}
		return record, nil
	}, http.StatusOK, func() *BodyRequest[P] { return &BodyRequest[P]{} })
}

// Create is Store under its other name.
func (h *CrudHandler[T, P, U]) Create() echo.HandlerFunc {
	return h.Store()
}

// Index lists every record.
func (h *CrudHandler[T, P, U]) Index() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]T, error) {
		records, err := h.service.GetAll(c.Request().Context(), h.db)
		if err != nil {
			return nil, errs.Wrap(http.StatusInternalServerError, err)
		}
		if records == nil {
			records = []T{}
		}
		return records, nil
	}, http.StatusOK, func() *EmptyRequest { return &EmptyRequest{} })
}

// Show returns the record at :id.
func (h *CrudHandler[T, P, U]) Show() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDRequest) (T, error) {
		record, err := h.service.Find(c.Request().Context(), h.db, req.ID)
		if err != nil {
			return record, errs.Wrap(http.StatusNotFound, err)
		}
		return record, nil
	}, http.StatusOK, func() *IDRequest { return &IDRequest{} })
}

// Update applies a U body to the record at :id.
func (h *CrudHandler[T, P, U]) Update() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *IDBodyRequest[U]) (T, error) {
		record, err := h.service.Update(c.Request().Context(), h.db, req.ID, req.Payload)
		if err != nil {
			return record, errs.Wrap(http.StatusInternalServerError, err)
		}
		return record, nil
	}, http.StatusOK, func() *IDBodyRequest[U] { return &IDBodyRequest[U]{} })
}

// Destroy deletes the record at :id and answers with an empty body.
func (h *CrudHandler[T, P, U]) Destroy() echo.HandlerFunc {
	return HandleNoContent(h.Handler, func(c echo.Context, req *IDRequest) error {
		if err := h.service.Delete(c.Request().Context(), h.db, req.ID); err != nil {
			return errs.Wrap(http.StatusInternalServerError, err)
		}
		return nil
	}, http.StatusOK, func() *IDRequest { return &IDRequest{} })
}
