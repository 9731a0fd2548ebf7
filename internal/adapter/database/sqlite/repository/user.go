package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	sqlite3driver "github.com/mattn/go-sqlite3"

	"todolist/internal/adapter/database/sqlite"
	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

type UserRepository struct {
	db *sqlite.DB
}

func NewUserRepository(db *sqlite.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3driver.Error

	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3driver.ErrConstraintUnique
	}

	return false
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query, args, err := ur.db.QueryBuilder.Insert("users").
		Columns("username", "encrypted_password", "avatar_url", "created_at", "updated_at").
		Values(user.Username, user.EncryptedPassword, user.AvatarURL, user.CreatedAt, user.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	result, err := ur.db.ExecContext(ctx, query, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, apperr.ErrDuplicateUsername
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.User{}, err
	}

	user.ID = id

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

	row := ur.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&user.ID, &user.Username, &user.EncryptedPassword, &user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
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
	err = ur.db.QueryRowContext(ctx, query, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
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

	result, err := ur.db.ExecContext(ctx, query, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrDuplicateUsername
		}

		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrUserNotFound
	}

	return nil
}

// DeleteCascade removes tasks, then lists, then the user row, all in one
// transaction so a failure never strands ownerless records.
func (ur *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM tasks WHERE todo_list_id IN (SELECT id FROM todo_lists WHERE user_id = $1)", id)

	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM todo_lists WHERE user_id = $1", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrUserNotFound
	}

	return tx.Commit()
}
