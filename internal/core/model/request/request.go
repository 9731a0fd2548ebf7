package request

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=15"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// UpdateUserRequest carries partial profile updates; nil means leave the
// field alone.
type UpdateUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=15"`
	Password *string `json:"password,omitempty" validate:"omitempty,max=100"`
}

type CreateListRequest struct {
	Category string `json:"category" validate:"required,max=255"`
}

type ChangeCategoryRequest struct {
	Category string `json:"category" validate:"required,max=255"`
}

type CreateTaskRequest struct {
	Category    string `json:"category" validate:"required,max=255"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Deadline    *int64 `json:"deadline,omitempty"`
	// Status is accepted but coerced to false on creation; a task can never
	// start out completed.
	Status bool `json:"status,omitempty"`
}

// UpdateTaskRequest applies field-by-field partial updates. Status and
// Deadline overwrite when present; Name overwrites only when non-blank;
// Description always overwrites with the supplied value, absent included;
// Category re-homes the task when non-empty.
type UpdateTaskRequest struct {
	Status      *bool   `json:"status,omitempty"`
	Deadline    *int64  `json:"deadline,omitempty"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=255"`
}
