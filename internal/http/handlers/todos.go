package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"todo_service/internal/http/middleware"
	"todo_service/internal/store"

	"github.com/gin-gonic/gin"
)

type CreateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type UpdateTodoRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (h *Handler) ListTodos(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	c.JSON(http.StatusOK, h.Todos.List(c.Request.Context(), userID))
}

func (h *Handler) CreateTodo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	todo, err := h.Todos.Create(c.Request.Context(), userID, req.Title, req.Completed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	// a non-numeric id cannot match any todo
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo, err := h.Todos.Update(c.Request.Context(), userID, id, store.TodoPatch{
		Title:     req.Title,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrTodoNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		case errors.Is(err, store.ErrTitleEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	todo, err := h.Todos.Delete(c.Request.Context(), userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
		"todo":    todo,
	})
}
