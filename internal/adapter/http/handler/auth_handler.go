package handler

import (
	"log/slog"
	"net/http"

	. "todolist/internal/adapter/http/helper"
	. "todolist/internal/adapter/http/validation"
	"todolist/internal/core/model/request"
	"todolist/internal/core/model/response"
	"todolist/internal/core/port"
	"todolist/internal/core/util"
	"todolist/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc port.UserService
}

func NewAuthHandler(svc port.UserService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.RegisterRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Register(ctx, params.Username, params.Password)

	if err != nil {
		slog.Error("Error registering user", "error", err)
		SendAppError(c, err)
		return
	}

	userResponse := response.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	SendSuccess(c, http.StatusCreated, userResponse)
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Authenticate(ctx, params.Username, params.Password)

	if err != nil {
		slog.Error("Login failed", "username", params.Username, "error", err)
		SendAppError(c, err)
		return
	}

	token, err := auth.CreateTokenForUser(user.ID)

	if err != nil {
		SendUnauthorizedError(c, "Failed to generate access token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
	})
}
