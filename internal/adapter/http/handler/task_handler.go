package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	. "todolist/internal/adapter/http/helper"
	. "todolist/internal/adapter/http/validation"
	"todolist/internal/core/model/request"
	"todolist/internal/core/model/response"
	"todolist/internal/core/port"
	"todolist/internal/core/util"
	"todolist/pkg/auth"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc port.TaskService
}

func NewTaskHandler(svc port.TaskService) *TaskHandler {
	return &TaskHandler{
		svc: svc,
	}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	params, err := util.ParamsToMap[request.CreateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	task, err := h.svc.Create(ctx, userID, &params)

	if err != nil {
		slog.Error("Error creating task", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Deadline:    task.Deadline,
		Status:      task.Status,
	})
}

func (h *TaskHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid task id")
		return
	}

	task, err := h.svc.Get(ctx, id)

	if err != nil {
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, response.TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		Deadline:    task.Deadline,
		Status:      task.Status,
	})
}

func (h *TaskHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid task id")
		return
	}

	params, err := util.ParamsToMap[request.UpdateTaskRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	if err := h.svc.Update(ctx, id, userID, &params); err != nil {
		slog.Error("Error updating task", "error", err, "task_id", id)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Task updated successfully")
}

func (h *TaskHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid task id")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		slog.Error("Error deleting task", "error", err, "task_id", id)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Task deleted successfully")
}
