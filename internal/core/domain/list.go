package domain

import "time"

// TodoList is a per-user bucket of tasks. The (UserID, Category) pair is
// unique; the category label is the user-facing name of the list.
type TodoList struct {
	ID        int64
	Category  string `validate:"required,max=255"`
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *TodoList) BelongsToUser(userID int64) bool {
	return l.UserID == userID
}
