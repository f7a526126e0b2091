package model

import (
	"strings"
	"time"

	"github.com/deppfellow/go-crudkit/internal/validation"
)

// Post is a persisted row of the posts table.
type Post struct {
	ID        int32     `json:"id" db:"id"`
	UserID    int32     `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePost is the payload for POST /posts.
type CreatePost struct {
	UserID    int32  `json:"user_id" validate:"required,gt=0"`
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

func (p CreatePost) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if strings.TrimSpace(p.Title) == "" {
		return validation.CustomValidationErrors{{Field: "title", Message: "must not be blank"}}
	}
	return nil
}

// UpdatePost is the payload for PUT /posts/:id.
//
// Updates are a partial merge: nil fields keep their stored value.
type UpdatePost struct {
	Title     *string `json:"title" validate:"omitempty,max=200"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}

func (p UpdatePost) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return validation.CustomValidationErrors{{Field: "title", Message: "must not be blank"}}
	}
	return nil
}
