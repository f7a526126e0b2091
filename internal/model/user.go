package model

import (
	"time"

	"github.com/deppfellow/go-crudkit/internal/validation"
)

// User is a persisted row of the users table.
type User struct {
	ID        int32     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     *string   `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUser is the payload for POST /users.
type CreateUser struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func (p CreateUser) Validate() error {
	return validation.Struct(p)
}

// UpdateUser is the payload for PUT /users/:id.
//
// Updates replace the whole row: an omitted email clears it.
type UpdateUser struct {
	Name  string  `json:"name" validate:"required,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
}

func (p UpdateUser) Validate() error {
	return validation.Struct(p)
}
