package apperr

import (
	"fmt"
	"net/http"
)

// Error is a business-rule failure with a stable numeric code. Codes are
// grouped by domain prefix: 1xxx user, 2xxx task, 3xxx list.
type Error struct {
	Code    int
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

var (
	ErrInvalidUsername       = &Error{Code: 1001, Message: "invalid username", Status: http.StatusBadRequest}
	ErrAuthenticationFailure = &Error{Code: 1002, Message: "invalid username or password", Status: http.StatusUnauthorized}
	ErrDuplicateUsername     = &Error{Code: 1003, Message: "username already taken", Status: http.StatusBadRequest}
	ErrNoSession             = &Error{Code: 1004, Message: "login required", Status: http.StatusUnauthorized}
	ErrUserNotFound          = &Error{Code: 1005, Message: "user not found", Status: http.StatusNotFound}
	ErrInvalidFile           = &Error{Code: 1006, Message: "uploaded file is missing or empty", Status: http.StatusBadRequest}
	ErrInvalidFileExtension  = &Error{Code: 1007, Message: "file has no extension", Status: http.StatusBadRequest}

	ErrTaskNotFound   = &Error{Code: 2001, Message: "task not found", Status: http.StatusNotFound}
	ErrInvalidDueDate = &Error{Code: 2002, Message: "deadline must be in the future", Status: http.StatusBadRequest}
	ErrDeadlineTooFar = &Error{Code: 2003, Message: "deadline is beyond the supported range", Status: http.StatusBadRequest}

	ErrCategoryConflict = &Error{Code: 3001, Message: "a list with this category already exists", Status: http.StatusConflict}
	ErrListNotFound     = &Error{Code: 3002, Message: "todo list not found", Status: http.StatusNotFound}
)
