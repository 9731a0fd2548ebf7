package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"todolist/internal/adapter/database/sqlite"
	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

type ListRepository struct {
	db *sqlite.DB
}

func NewListRepository(db *sqlite.DB) port.ListRepository {
	return &ListRepository{db: db}
}

func (lr *ListRepository) Create(ctx context.Context, list domain.TodoList) (domain.TodoList, error) {
	query, args, err := lr.db.QueryBuilder.Insert("todo_lists").
		Columns("category", "user_id", "created_at", "updated_at").
		Values(list.Category, list.UserID, list.CreatedAt, list.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.TodoList{}, err
	}

	result, err := lr.db.ExecContext(ctx, query, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.TodoList{}, apperr.ErrCategoryConflict
		}

		slog.Error("Error creating todo list", "error", err)
		return domain.TodoList{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.TodoList{}, err
	}

	list.ID = id

	return list, nil
}

func (lr *ListRepository) GetByID(ctx context.Context, id int64) (domain.TodoList, error) {
	return lr.getBy(ctx, sq.Eq{"id": id})
}

func (lr *ListRepository) GetByUserAndCategory(ctx context.Context, userID int64, category string) (domain.TodoList, error) {
	return lr.getBy(ctx, sq.Eq{"user_id": userID, "category": category})
}

func (lr *ListRepository) getBy(ctx context.Context, pred sq.Eq) (domain.TodoList, error) {
	query, args, err := lr.db.QueryBuilder.
		Select("id", "category", "user_id", "created_at", "updated_at").
		From("todo_lists").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.TodoList{}, err
	}

	var list domain.TodoList

	row := lr.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&list.ID, &list.Category, &list.UserID, &list.CreatedAt, &list.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.TodoList{}, apperr.ErrListNotFound
	}

	if err != nil {
		slog.Error("Error getting todo list", "error", err)
		return domain.TodoList{}, err
	}

	return list, nil
}

func (lr *ListRepository) GetAllByUser(ctx context.Context, userID int64) ([]domain.TodoList, error) {
	query, args, err := lr.db.QueryBuilder.
		Select("id", "category", "user_id", "created_at", "updated_at").
		From("todo_lists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := lr.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	lists := []domain.TodoList{}

	for rows.Next() {
		var list domain.TodoList

		if err := rows.Scan(&list.ID, &list.Category, &list.UserID, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, err
		}

		lists = append(lists, list)
	}

	return lists, rows.Err()
}

func (lr *ListRepository) ExistsByUserAndCategory(ctx context.Context, userID int64, category string) (bool, error) {
	return lr.exists(ctx, sq.Eq{"user_id": userID, "category": category})
}

func (lr *ListRepository) ExistsByUser(ctx context.Context, userID int64) (bool, error) {
	return lr.exists(ctx, sq.Eq{"user_id": userID})
}

func (lr *ListRepository) exists(ctx context.Context, pred sq.Eq) (bool, error) {
	query, args, err := lr.db.QueryBuilder.Select("1").
		From("todo_lists").
		Where(pred).
		Limit(1).
		ToSql()

	if err != nil {
		return false, err
	}

	var one int
	err = lr.db.QueryRowContext(ctx, query, args...).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// TaskIDs returns the ids of the list's tasks in insertion order.
func (lr *ListRepository) TaskIDs(ctx context.Context, listID int64) ([]int64, error) {
	query, args, err := lr.db.QueryBuilder.Select("id").
		From("tasks").
		Where(sq.Eq{"todo_list_id": listID}).
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := lr.db.QueryContext(ctx, query, args...)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	ids := []int64{}

	for rows.Next() {
		var id int64

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (lr *ListRepository) UpdateCategory(ctx context.Context, id int64, category string) error {
	query, args, err := lr.db.QueryBuilder.Update("todo_lists").
		Set("category", category).
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := lr.db.ExecContext(ctx, query, args...)

	if err != nil {
		if isUniqueViolation(err) {
			return apperr.ErrCategoryConflict
		}

		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrListNotFound
	}

	return nil
}

// DeleteWithTasks deletes the list's tasks before the list itself, inside a
// single transaction. The ordering is a correctness requirement: the reverse
// could strand task rows pointing at a list that no longer exists.
func (lr *ListRepository) DeleteWithTasks(ctx context.Context, id, userID int64) error {
	tx, err := lr.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM tasks WHERE todo_list_id = $1", id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = $1 AND user_id = $2", id, userID)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrListNotFound
	}

	return tx.Commit()
}
