package handler

import (
	"log/slog"
	"net/http"

	. "todolist/internal/adapter/http/helper"
	. "todolist/internal/adapter/http/validation"
	"todolist/internal/core/model/request"
	"todolist/internal/core/port"
	"todolist/internal/core/util"
	"todolist/pkg/auth"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc   port.UserService
	store port.FileStore
}

func NewUserHandler(svc port.UserService, store port.FileStore) *UserHandler {
	return &UserHandler{
		svc:   svc,
		store: store,
	}
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	params, err := util.ParamsToMap[request.UpdateUserRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	if err := h.svc.UpdateProfile(ctx, userID, params.Username, params.Password); err != nil {
		slog.Error("Error updating user", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "User updated successfully")
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	file, err := c.FormFile("avatar")

	if err != nil {
		SendBadRequestError(c, "avatar", "Missing avatar file")
		return
	}

	reference, err := h.store.Save(file)

	if err != nil {
		slog.Error("Error storing avatar", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	if err := h.svc.SetAvatar(ctx, userID, reference); err != nil {
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, gin.H{"avatar_url": reference})
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	if err := h.svc.Delete(ctx, userID); err != nil {
		slog.Error("Error deleting user", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "User deleted successfully")
}
