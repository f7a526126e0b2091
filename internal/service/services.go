package service

import (
	"github.com/deppfellow/go-crudkit/internal/repository"
)

type Services struct {
	Users *UserService
	Posts *PostService
}

func NewServices(repos *repository.Repositories) *Services {
	users := NewUserService(repos.Users)

	return &Services{
		Users: users,
		Posts: NewPostService(repos.Posts, users),
	}
}
