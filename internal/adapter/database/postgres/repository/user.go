package repository

import (
	"context"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"todolist/internal/adapter/database/postgres"
	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("username", "encrypted_password", "avatar_url", "created_at", "updated_at").
		Values(user.Username, user.EncryptedPassword, user.AvatarURL, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	err = ur.db.QueryRow(ctx, query, args...).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, apperr.ErrDuplicateUsername
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return ur.getBy(ctx, sq.Eq{"id": id})
}

func (ur *UserRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return ur.getBy(ctx, sq.Eq{"username": username})
}

func (ur *UserRepository) getBy(ctx context.Context, pred sq.Eq) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.
		Select("id", "username", "encrypted_password", "avatar_url", "created_at", "updated_at").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	err = ur.db.QueryRow(ctx, query, args...).
		Scan(&user.ID, &user.Username, &user.EncryptedPassword, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, apperr.ErrUserNotFound
	}

	if err != nil {
		slog.Error("Error getting user", "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (ur *UserRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return ur.exists(ctx, sq.Eq{"id": id})
}

func (ur *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return ur.exists(ctx, sq.Eq{"username": username})
}

func (ur *UserRepository) exists(ctx context.Context, pred sq.Eq) (bool, error) {
	query, args, err := ur.db.QueryBuilder.Select("1").
		From("users").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return false, err
	}

	var one int
	err = ur.db.QueryRow(ctx, query, args...).Scan(&one)

	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (ur *UserRepository) Update(ctx context.Context, user domain.User) error {
	query, args, err := ur.db.QueryBuilder.Update("users").
		Set("username", user.Username).
		Set("encrypted_password", user.EncryptedPassword).
		Set("avatar_url", user.AvatarURL).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := ur.db.Exec(ctx, query, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateUsername
		}

		return err
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrUserNotFound
	}

	return nil
}

func (ur *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := ur.db.Begin(ctx)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"DELETE FROM tasks WHERE todo_list_id IN (SELECT id FROM todo_lists WHERE user_id = $1)", id)

	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, "DELETE FROM todo_lists WHERE user_id = $1", id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, "DELETE FROM users WHERE id = $1", id)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperr.ErrUserNotFound
	}

	return tx.Commit(ctx)
}
