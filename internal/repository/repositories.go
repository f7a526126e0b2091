// Package repository handles all interactions with the database.
//
// It builds SQL with squirrel and scans rows with scany, keeping query
// construction away from the service layer.
package repository

import (
	"github.com/deppfellow/go-crudkit/internal/model"
)

// Repositories is a container for every table gateway.
type Repositories struct {
	Users Table[model.User]
	Posts Table[model.Post]
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		Users: NewTable[model.User]("users",
			"id", "name", "email", "created_at", "updated_at"),
		Posts: NewTable[model.Post]("posts",
			"id", "user_id", "title", "body", "published", "created_at", "updated_at"),
	}
}
