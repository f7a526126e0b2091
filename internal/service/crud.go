package service

import (
	"context"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/validation"
)

// CrudService is the data access contract for one entity kind.
//
// T is the stored record, P the payload accepted by Create and U the
// payload accepted by Update. Implementations decide whether U replaces
// the record or merges into it.
//
// Find, Update and Delete report a missing id with an error that matches
// sqlerr.ErrNotFound. Delete is not idempotent: a second call for the same
// id fails.
type CrudService[T any, P, U validation.Validatable] interface {
	Create(ctx context.Context, db database.Querier, data P) (T, error)
	GetAll(ctx context.Context, db database.Querier) ([]T, error)
	Find(ctx context.Context, db database.Querier, id int32) (T, error)
	Update(ctx context.Context, db database.Querier, id int32, data U) (T, error)
	Delete(ctx context.Context, db database.Querier, id int32) error
	Count(ctx context.Context, db database.Querier) (int64, error)
	// Factory persists a valid synthetic record for tests and seeding.
	Factory(ctx context.Context, db database.Querier) (T, error)
}
