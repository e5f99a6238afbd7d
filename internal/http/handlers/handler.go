package handlers

import (
	"todo_service/internal/service"
	"todo_service/internal/store"
)

type Handler struct {
	Users  *store.UserStore
	Todos  *store.TodoStore
	Tokens *service.TokenService
}

func NewHandler(users *store.UserStore, todos *store.TodoStore, tokens *service.TokenService) *Handler {
	return &Handler{
		Users:  users,
		Todos:  todos,
		Tokens: tokens,
	}
}
