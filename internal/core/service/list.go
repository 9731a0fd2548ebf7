package service

import (
	"context"
	"errors"
	"log/slog"

	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"
	"todolist/internal/core/port"
)

type ListService struct {
	repo     port.ListRepository
	userRepo port.UserRepository
	clock    port.Clock
}

func NewListService(repo port.ListRepository, userRepo port.UserRepository, clock port.Clock) *ListService {
	return &ListService{repo: repo, userRepo: userRepo, clock: clock}
}

func (ls *ListService) Create(ctx context.Context, userID int64, category string) (domain.TodoList, error) {
	exists, err := ls.userRepo.ExistsByID(ctx, userID)

	if err != nil {
		return domain.TodoList{}, err
	}

	if !exists {
		return domain.TodoList{}, apperr.ErrUserNotFound
	}

	taken, err := ls.repo.ExistsByUserAndCategory(ctx, userID, category)

	if err != nil {
		return domain.TodoList{}, err
	}

	if taken {
		return domain.TodoList{}, apperr.ErrCategoryConflict
	}

	now := ls.clock.Now()

	list, err := ls.repo.Create(ctx, domain.TodoList{
		Category:  category,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	})

	if err != nil {
		slog.Error("List#Create repository create failed", "error", err, "user_id", userID, "category", category)
		return domain.TodoList{}, err
	}

	return list, nil
}

// EnsureList resolves the (user, category) list, creating it when absent.
// A concurrent create loses the race on the unique index and falls back to
// reading the winner's row.
func (ls *ListService) EnsureList(ctx context.Context, userID int64, category string) (domain.TodoList, error) {
	list, err := ls.repo.GetByUserAndCategory(ctx, userID, category)

	if err == nil {
		return list, nil
	}

	if !errors.Is(err, apperr.ErrListNotFound) {
		return domain.TodoList{}, err
	}

	list, err = ls.Create(ctx, userID, category)

	if errors.Is(err, apperr.ErrCategoryConflict) {
		return ls.repo.GetByUserAndCategory(ctx, userID, category)
	}

	return list, err
}

func (ls *ListService) Get(ctx context.Context, id int64) (domain.TodoList, []int64, error) {
	list, err := ls.repo.GetByID(ctx, id)

	if err != nil {
		return domain.TodoList{}, nil, err
	}

	taskIDs, err := ls.repo.TaskIDs(ctx, id)

	if err != nil {
		return domain.TodoList{}, nil, err
	}

	return list, taskIDs, nil
}

// GetAll never fails for an unknown user; it returns an empty result instead.
// That asymmetry with Get is part of the contract.
func (ls *ListService) GetAll(ctx context.Context, userID int64) ([]domain.TodoList, map[int64][]int64, error) {
	lists, err := ls.repo.GetAllByUser(ctx, userID)

	if err != nil {
		return nil, nil, err
	}

	tasksByList := make(map[int64][]int64, len(lists))

	for _, list := range lists {
		taskIDs, err := ls.repo.TaskIDs(ctx, list.ID)

		if err != nil {
			return nil, nil, err
		}

		tasksByList[list.ID] = taskIDs
	}

	return lists, tasksByList, nil
}

func (ls *ListService) ChangeCategory(ctx context.Context, id int64, newCategory string, userID int64) error {
	exists, err := ls.userRepo.ExistsByID(ctx, userID)

	if err != nil {
		return err
	}

	if !exists {
		return apperr.ErrUserNotFound
	}

	taken, err := ls.repo.ExistsByUserAndCategory(ctx, userID, newCategory)

	if err != nil {
		return err
	}

	if taken {
		return apperr.ErrCategoryConflict
	}

	if _, err := ls.repo.GetByID(ctx, id); err != nil {
		return err
	}

	return ls.repo.UpdateCategory(ctx, id, newCategory)
}

// Delete removes the list and every task it owns. The user check only asks
// whether the caller owns any list at all; the per-row ownership filter on the
// final delete is what actually scopes the operation.
func (ls *ListService) Delete(ctx context.Context, id, userID int64) error {
	if _, err := ls.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasLists, err := ls.repo.ExistsByUser(ctx, userID)

	if err != nil {
		return err
	}

	if !hasLists {
		return apperr.ErrUserNotFound
	}

	return ls.repo.DeleteWithTasks(ctx, id, userID)
}
