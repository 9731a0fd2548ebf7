package domain

import (
	"time"

	"todolist/internal/core/apperr"
)

// DeadlineMax is the upper bound for task deadlines, the 32-bit epoch
// safety boundary.
var DeadlineMax = time.Date(2038, 1, 1, 0, 0, 0, 0, time.UTC)

// Task is a unit of work owned by exactly one TodoList. Deadline is epoch
// seconds; nil means no deadline.
type Task struct {
	ID          int64
	Name        string `validate:"required,max=255"`
	Description string `validate:"max=1000"`
	Status      bool
	Deadline    *int64
	TodoListID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *Task) HasDeadline() bool {
	return t.Deadline != nil
}

// CheckDeadline validates a candidate deadline against the moment it is set.
// The lower bound is strictly "now"; the upper bound applies only where the
// caller opts in (updates check it, creation does not, matching the original
// contract).
func CheckDeadline(deadline int64, now time.Time, bounded bool) error {
	due := time.Unix(deadline, 0)

	if due.Before(now) {
		return apperr.ErrInvalidDueDate
	}

	if bounded && due.After(DeadlineMax) {
		return apperr.ErrDeadlineTooFar
	}

	return nil
}
