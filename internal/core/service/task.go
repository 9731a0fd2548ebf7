package service

import (
	"context"
	"log/slog"
	"strings"

	"todolist/internal/core/domain"
	"todolist/internal/core/model/request"
	"todolist/internal/core/port"
)

type TaskService struct {
	repo    port.TaskRepository
	listSvc port.ListService
	clock   port.Clock
}

func NewTaskService(repo port.TaskRepository, listSvc port.ListService, clock port.Clock) *TaskService {
	return &TaskService{repo: repo, listSvc: listSvc, clock: clock}
}

// Create validates the deadline before touching any state, so a rejected task
// cannot leave an implicitly created list behind. The owning list is then
// resolved or created, and the task always starts with status=false no matter
// what the request carried.
func (ts *TaskService) Create(ctx context.Context, userID int64, req *request.CreateTaskRequest) (domain.Task, error) {
	if req.Deadline != nil {
		if err := domain.CheckDeadline(*req.Deadline, ts.clock.Now(), false); err != nil {
			return domain.Task{}, err
		}
	}

	list, err := ts.listSvc.EnsureList(ctx, userID, req.Category)

	if err != nil {
		return domain.Task{}, err
	}

	now := ts.clock.Now()

	task, err := ts.repo.Create(ctx, domain.Task{
		Name:        req.Name,
		Description: req.Description,
		Status:      false,
		Deadline:    req.Deadline,
		TodoListID:  list.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})

	if err != nil {
		slog.Error("Task#Create repository create failed", "error", err, "name", req.Name)
		return domain.Task{}, err
	}

	return task, nil
}

func (ts *TaskService) Get(ctx context.Context, id int64) (domain.Task, error) {
	return ts.repo.GetByID(ctx, id)
}

func (ts *TaskService) Delete(ctx context.Context, id int64) error {
	return ts.repo.Delete(ctx, id)
}

// Update applies partial-update semantics field by field, then commits every
// accepted change in one statement:
//   - status overwrites whenever present
//   - deadline overwrites after passing both window bounds
//   - name overwrites only when non-blank after trimming
//   - description always overwrites, absent clears it
//   - category re-homes the task, creating the target list when needed
func (ts *TaskService) Update(ctx context.Context, id, userID int64, req *request.UpdateTaskRequest) error {
	task, err := ts.repo.GetByID(ctx, id)

	if err != nil {
		return err
	}

	if req.Status != nil {
		task.Status = *req.Status
	}

	if req.Deadline != nil {
		if err := domain.CheckDeadline(*req.Deadline, ts.clock.Now(), true); err != nil {
			return err
		}

		task.Deadline = req.Deadline
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		task.Name = *req.Name
	}

	task.Description = ""
	if req.Description != nil {
		task.Description = *req.Description
	}

	if req.Category != nil && *req.Category != "" {
		list, err := ts.listSvc.EnsureList(ctx, userID, *req.Category)

		if err != nil {
			return err
		}

		task.TodoListID = list.ID
	}

	task.UpdatedAt = ts.clock.Now()

	return ts.repo.Update(ctx, task)
}
