package inmemdb

import (
	"context"
	"strings"

	"github.com/trezcool/masomo/core/user"
)

type userRepository struct {
	db *table[user.User]
}

func NewUserRepository(db *DB) user.Repository {
	return &userRepository{db: db.users}
}

func (repo *userRepository) QueryAllUsers(_ context.Context) ([]user.User, error) {
	return repo.db.all(), nil
}

func (repo *userRepository) GetUserByID(_ context.Context, id string) (user.User, error) {
	if usr, ok := repo.db.get(id); ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByUsernameOrEmail(_ context.Context, username string) (user.User, error) {
	usr, ok := repo.db.find(func(u user.User) bool {
		return strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, username)
	})
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
