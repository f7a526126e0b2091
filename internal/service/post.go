package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-crudkit/internal/database"
	"github.com/deppfellow/go-crudkit/internal/model"
	"github.com/deppfellow/go-crudkit/internal/repository"
	"github.com/google/uuid"
)

type PostService struct {
	table repository.Table[model.Post]
	users *UserService
}

var _ CrudService[model.Post, model.CreatePost, model.UpdatePost] = (*PostService)(nil)

func NewPostService(table repository.Table[model.Post], users *UserService) *PostService {
	return &PostService{table: table, users: users}
}

func (s *PostService) Create(ctx context.Context, db database.Querier, data model.CreatePost) (model.Post, error) {
	return s.table.Insert(ctx, db, repository.Fields{
		{Column: "user_id", Value: data.UserID},
		{Column: "title", Value: data.Title},
		{Column: "body", Value: data.Body},
		{Column: "published", Value: data.Published},
	})
}

func (s *PostService) GetAll(ctx context.Context, db database.Querier) ([]model.Post, error) {
	return s.table.All(ctx, db)
}

func (s *PostService) Find(ctx context.Context, db database.Querier, id int32) (model.Post, error) {
	return s.table.Get(ctx, db, id)
}

// Update merges the fields present in data into the stored post.
// Fields left nil keep their current value.
func (s *PostService) Update(ctx context.Context, db database.Querier, id int32, data model.UpdatePost) (model.Post, error) {
	var fields repository.Fields
	if data.Title != nil {
		fields = append(fields, repository.Field{Column: "title", Value: *data.Title})
	}
	if data.Body != nil {
		fields = append(fields, repository.Field{Column: "body", Value: *data.Body})
	}
	if data.Published != nil {
		fields = append(fields, repository.Field{Column: "published", Value: *data.Published})
	}

	return s.table.Update(ctx, db, id, fields)
}

func (s *PostService) Delete(ctx context.Context, db database.Querier, id int32) error {
	return s.table.Delete(ctx, db, id)
}

func (s *PostService) Count(ctx context.Context, db database.Querier) (int64, error) {
	return s.table.Count(ctx, db)
}

// Factory creates a post owned by a freshly created user.
func (s *PostService) Factory(ctx context.Context, db database.Querier) (model.Post, error) {
	owner, err := s.users.Factory(ctx, db)
	if err != nil {
		return model.Post{}, fmt.Errorf("creating post owner: %w", err)
	}

	data := model.CreatePost{
		UserID: owner.ID,
		Title:  "post-" + uuid.NewString()[:8],
		Body:   "Generated by the post factory.",
	}
	if err := data.Validate(); err != nil {
		return model.Post{}, fmt.Errorf("invalid post factory payload: %w", err)
	}

	return s.Create(ctx, db, data)
}
