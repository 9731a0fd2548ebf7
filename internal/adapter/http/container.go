package http

import (
	"todolist/internal/adapter/http/handler"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
)

// Container wires repositories into services and services into handlers.
// Repositories come in through their ports, so the sqlite and postgres
// backends plug in the same way.
type Container struct {
	UserRepo port.UserRepository
	ListRepo port.ListRepository
	TaskRepo port.TaskRepository

	UserService port.UserService
	ListService port.ListService
	TaskService port.TaskService

	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	ListHandler *handler.ListHandler
	TaskHandler *handler.TaskHandler
}

type Repositories struct {
	User port.UserRepository
	List port.ListRepository
	Task port.TaskRepository
}

func NewContainer(repos Repositories, store port.FileStore, clock port.Clock) *Container {
	userSvc := service.NewUserService(repos.User, clock)
	listSvc := service.NewListService(repos.List, repos.User, clock)
	taskSvc := service.NewTaskService(repos.Task, listSvc, clock)

	return &Container{
		UserRepo: repos.User,
		ListRepo: repos.List,
		TaskRepo: repos.Task,

		UserService: userSvc,
		ListService: listSvc,
		TaskService: taskSvc,

		AuthHandler: handler.NewAuthHandler(userSvc),
		UserHandler: handler.NewUserHandler(userSvc, store),
		ListHandler: handler.NewListHandler(listSvc),
		TaskHandler: handler.NewTaskHandler(taskSvc),
	}
}
