package service

import (
	"context"
	"log/slog"

	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
	"todolist/internal/core/util"
)

type UserService struct {
	repo  port.UserRepository
	clock port.Clock
}

func NewUserService(repo port.UserRepository, clock port.Clock) *UserService {
	return &UserService{repo: repo, clock: clock}
}

func (us *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	if !domain.ValidUsername(username) {
		slog.Warn("User#Register rejected username", "username", username)
		return domain.User{}, apperr.ErrInvalidUsername
	}

	taken, err := us.repo.ExistsByUsername(ctx, username)

	if err != nil {
		return domain.User{}, err
	}

	if taken {
		return domain.User{}, apperr.ErrDuplicateUsername
	}

	encrypted, err := util.HashPassword(password)

	if err != nil {
		return domain.User{}, err
	}

	now := us.clock.Now()

	user, err := us.repo.Create(ctx, domain.User{
		Username:          username,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	})

	if err != nil {
		slog.Error("User#Register repository create failed", "error", err, "username", username)
		return domain.User{}, err
	}

	return user, nil
}

func (us *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := us.repo.GetByUsername(ctx, username)

	if err != nil {
		return domain.User{}, err
	}

	if err := util.ComparePassword(password, user.EncryptedPassword); err != nil {
		slog.Info("User#Authenticate password mismatch", "username", username)
		return domain.User{}, apperr.ErrAuthenticationFailure
	}

	return user, nil
}

// UpdateProfile applies a partial update: a nil field is left unchanged, a
// supplied field is validated before being written.
func (us *UserService) UpdateProfile(ctx context.Context, id int64, username, password *string) error {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return err
	}

	if username != nil {
		if *username == "" || !domain.ValidUsername(*username) {
			return apperr.ErrInvalidUsername
		}

		user.Username = *username
	}

	if password != nil {
		if *password == "" {
			return apperr.ErrAuthenticationFailure
		}

		encrypted, err := util.HashPassword(*password)

		if err != nil {
			return err
		}

		user.EncryptedPassword = encrypted
	}

	user.UpdatedAt = us.clock.Now()

	return us.repo.Update(ctx, user)
}

// SetAvatar stores the avatar reference produced by the file store; the bytes
// themselves never pass through here.
func (us *UserService) SetAvatar(ctx context.Context, id int64, reference string) error {
	user, err := us.repo.GetByID(ctx, id)

	if err != nil {
		return err
	}

	user.AvatarURL = reference
	user.UpdatedAt = us.clock.Now()

	return us.repo.Update(ctx, user)
}

func (us *UserService) Delete(ctx context.Context, id int64) error {
	exists, err := us.repo.ExistsByID(ctx, id)

	if err != nil {
		return err
	}

	if !exists {
		return apperr.ErrUserNotFound
	}

	return us.repo.DeleteCascade(ctx, id)
}
