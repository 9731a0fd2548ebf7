package port

import (
	"context"

	"todolist/internal/core/domain"
	"todolist/internal/core/model/request"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id int64) (domain.Task, error)
	// Update writes every mutable column in a single statement; the service
	// decides field-by-field what changes before calling it.
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id int64) error
}

type TaskService interface {
	Create(ctx context.Context, userID int64, req *request.CreateTaskRequest) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	Update(ctx context.Context, id, userID int64, req *request.UpdateTaskRequest) error
	Delete(ctx context.Context, id int64) error
}
