package port

import (
	"context"

	"todolist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user domain.User) error
	// DeleteCascade removes the user together with every list and task the
	// user owns, in one transaction.
	DeleteCascade(ctx context.Context, id int64) error
}

type UserService interface {
	Register(ctx context.Context, username, password string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, password *string) error
	SetAvatar(ctx context.Context, id int64, reference string) error
	Delete(ctx context.Context, id int64) error
}
