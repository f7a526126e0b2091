package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/model"
	"github.com/deppfellow/go-crudkit/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	table repository.Table[model.User]
}

var _ CrudService[model.User, model.CreateUser, model.UpdateUser] = (*UserService)(nil)

func NewUserService(table repository.Table[model.User]) *UserService {
	return &UserService{table: table}
}

func (s *UserService) Create(ctx context.Context, db database.Querier, data model.CreateUser) (model.User, error) {
	return s.table.Insert(ctx, db, repository.Fields{
		{Column: "name", Value: data.Name},
		{Column: "email", Value: data.Email},
	})
}

func (s *UserService) GetAll(ctx context.Context, db database.Querier) ([]model.User, error) {
	return s.table.All(ctx, db)
}

func (s *UserService) Find(ctx context.Context, db database.Querier, id int32) (model.User, error) {
	return s.table.Get(ctx, db, id)
}

// Update replaces name and email. A nil email clears the stored one.
func (s *UserService) Update(ctx context.Context, db database.Querier, id int32, data model.UpdateUser) (model.User, error) {
	return s.table.Update(ctx, db, id, repository.Fields{
		{Column: "name", Value: data.Name},
		{Column: "email", Value: data.Email},
	})
}

func (s *UserService) Delete(ctx context.Context, db database.Querier, id int32) error {
	return s.table.Delete(ctx, db, id)
}

func (s *UserService) Count(ctx context.Context, db database.Querier) (int64, error) {
	return s.table.Count(ctx, db)
}

func (s *UserService) Factory(ctx context.Context, db database.Querier) (model.User, error) {
	id := uuid.NewString()
	email := id + "@example.com"

	data := model.CreateUser{
		Name:  fmt.Sprintf("user-%s", id[:8]),
		Email: &email,
	}
	if err := data.Validate(); err != nil {
		return model.User{}, fmt.Errorf("invalid user factory payload: %w", err)
	}

	return s.Create(ctx, db, data)
}
