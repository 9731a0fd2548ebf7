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

type TaskRepository struct {
	db *sqlite.DB
}

func NewTaskRepository(db *sqlite.DB) port.TaskRepository {
	return &TaskRepository{db: db}
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	query, args, err := tr.db.QueryBuilder.Insert("tasks").
		Columns("name", "description", "status", "deadline", "todo_list_id", "created_at", "updated_at").
		Values(task.Name, task.Description, task.Status, task.Deadline, task.TodoListID, task.CreatedAt, task.UpdatedAt).
		ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		slog.Error("Error creating task", "error", err)
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return domain.Task{}, err
	}

	task.ID = id

	return task, nil
}

func (tr *TaskRepository) GetByID(ctx context.Context, id int64) (domain.Task, error) {
	query, args, err := tr.db.QueryBuilder.
		Select("id", "name", "description", "status", "deadline", "todo_list_id", "created_at", "updated_at").
		From("tasks").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return domain.Task{}, err
	}

	var task domain.Task
	var deadline sql.NullInt64

	row := tr.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&task.ID, &task.Name, &task.Description, &task.Status, &deadline, &task.TodoListID, &task.CreatedAt, &task.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, apperr.ErrTaskNotFound
	}

	if err != nil {
		slog.Error("Error getting task", "error", err)
		return domain.Task{}, err
	}

	if deadline.Valid {
		task.Deadline = &deadline.Int64
	}

	return task, nil
}

// Update rewrites every mutable column at once; partial-update decisions were
// already made by the service, so the row either takes all of them or none.
func (tr *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	query, args, err := tr.db.QueryBuilder.Update("tasks").
		Set("name", task.Name).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("deadline", task.Deadline).
		Set("todo_list_id", task.TodoListID).
		Set("updated_at", task.UpdatedAt).
		Where(sq.Eq{"id": task.ID}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}

	return nil
}

func (tr *TaskRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := tr.db.QueryBuilder.Delete("tasks").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}

	return nil
}
