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
	. "todolist/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type ListHandler struct {
	svc port.ListService
}

func NewListHandler(svc port.ListService) *ListHandler {
	return &ListHandler{
		svc: svc,
	}
}

func (h *ListHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	params, err := util.ParamsToMap[request.CreateListRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	list, err := h.svc.Create(ctx, userID, params.Category)

	if err != nil {
		slog.Error("Error creating list", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.ListResponse{
		ID:       list.ID,
		Category: list.Category,
		Tasks:    []int64{},
	})
}

func (h *ListHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid list id")
		return
	}

	list, taskIDs, err := h.svc.Get(ctx, id)

	if err != nil {
		SendAppError(c, err)
		return
	}

	if taskIDs == nil {
		taskIDs = []int64{}
	}

	SendSuccess(c, http.StatusOK, response.ListResponse{
		ID:       list.ID,
		Category: list.Category,
		Tasks:    taskIDs,
	})
}

func (h *ListHandler) GetAll(c *gin.Context) {
	ctx, span := CreateChildSpan(c.Request.Context(), "handler.list.GetAll", []attribute.KeyValue{
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	span.SetAttributes(attribute.Int64("user.id", userID))

	lists, tasksByList, err := h.svc.GetAll(ctx, userID)

	if err != nil {
		AddSpanError(span, err)

		slog.Error("Error listing todo lists", "error", err, "user_id", userID)
		SendAppError(c, err)
		return
	}

	result := make([]response.ListResponse, 0, len(lists))

	for _, list := range lists {
		taskIDs := tasksByList[list.ID]

		if taskIDs == nil {
			taskIDs = []int64{}
		}

		result = append(result, response.ListResponse{
			ID:       list.ID,
			Category: list.Category,
			Tasks:    taskIDs,
		})
	}

	SendSuccess(c, http.StatusOK, result)
}

func (h *ListHandler) ChangeCategory(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid list id")
		return
	}

	params, err := util.ParamsToMap[request.ChangeCategoryRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	if err := h.svc.ChangeCategory(ctx, id, params.Category, userID); err != nil {
		slog.Error("Error changing list category", "error", err, "list_id", id)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "Category updated successfully")
}

func (h *ListHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := auth.CurrentUserID(c)

	if !ok {
		SendUnauthorizedError(c, "Unauthorized request")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)

	if err != nil {
		SendBadRequestError(c, "id", "Invalid list id")
		return
	}

	if err := h.svc.Delete(ctx, id, userID); err != nil {
		slog.Error("Error deleting list", "error", err, "list_id", id)
		SendAppError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, nil, "List deleted successfully")
}
