package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
)

// errors
var ErrNotFound = core.NewNotFoundError("user")

type (
	Repository interface {
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByUsernameOrEmail(ctx context.Context, username string) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]User, error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return Collection.Apply(users, filter.Query())
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByUsernameOrEmail(ctx context.Context, uname string) (User, error) {
	return svc.repo.GetUserByUsernameOrEmail(ctx, core.CleanString(uname, true /* lower */))
}

// Authenticate returns the user identified by `uname` (username or email) if `pwd` is their password.
func (svc *Service) Authenticate(ctx context.Context, uname, pwd string) (User, error) {
	usr, err := svc.GetByUsernameOrEmail(ctx, uname)
	if err != nil {
		return User{}, err
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}
	if !usr.IsActive {
		return User{}, ErrAccountDeactivated
	}
	return usr, nil
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
)

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	users, err := svc.repo.QueryAllUsers(ctx)
	if err != nil {
		return Stats{}, errors.Wrap(err, "querying users")
	}
	active := collection.CountWhere(users, func(u User) bool { return u.IsActive })
	return Stats{
		Total:    collection.Count(users),
		Active:   active,
		Inactive: collection.Count(users) - active,
		Admins:   collection.CountWhere(users, func(u User) bool { return u.IsAdmin() }),
		Teachers: collection.CountWhere(users, func(u User) bool { return u.IsTeacher() }),
	}, nil
}
