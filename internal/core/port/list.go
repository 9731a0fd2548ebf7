package port

import (
	"context"

	"todolist/internal/core/domain"
)

type ListRepository interface {
	Create(ctx context.Context, list domain.TodoList) (domain.TodoList, error)
	GetByID(ctx context.Context, id int64) (domain.TodoList, error)
	GetByUserAndCategory(ctx context.Context, userID int64, category string) (domain.TodoList, error)
	GetAllByUser(ctx context.Context, userID int64) ([]domain.TodoList, error)
	ExistsByUserAndCategory(ctx context.Context, userID int64, category string) (bool, error)
	ExistsByUser(ctx context.Context, userID int64) (bool, error)
	TaskIDs(ctx context.Context, listID int64) ([]int64, error)
	UpdateCategory(ctx context.Context, id int64, category string) error
	// DeleteWithTasks removes the list's tasks and then the list itself in
	// one transaction. Task deletion goes first so a failure can never leave
	// orphaned task rows behind.
	DeleteWithTasks(ctx context.Context, id, userID int64) error
}

type ListService interface {
	Create(ctx context.Context, userID int64, category string) (domain.TodoList, error)
	// EnsureList resolves the (user, category) list, creating it when absent.
	// Both task creation and task category reassignment go through here.
	EnsureList(ctx context.Context, userID int64, category string) (domain.TodoList, error)
	Get(ctx context.Context, id int64) (domain.TodoList, []int64, error)
	GetAll(ctx context.Context, userID int64) ([]domain.TodoList, map[int64][]int64, error)
	ChangeCategory(ctx context.Context, id int64, newCategory string, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}
