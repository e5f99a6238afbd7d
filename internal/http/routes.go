package http

import (
	"net/http"

	"todo_service/internal/http/handlers"
	"todo_service/internal/http/middleware"
	"todo_service/internal/service"
	"todo_service/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, users *store.UserStore, todos *store.TodoStore, tokens *service.TokenService, version string) {
	h := handlers.NewHandler(users, todos, tokens)
	healthHandler := handlers.NewHealthHandler(version)

	// Health checks
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	api := r.Group("/api")

	api.GET("/health", healthHandler.Health)

	// Auth
	api.POST("/login", h.Login)

	// Todo items (owner-scoped)
	auth := middleware.Auth(tokens)
	api.GET("/items", auth, h.ListTodos)
	api.POST("/items", auth, h.CreateTodo)
	api.PUT("/items/:id", auth, h.UpdateTodo)
	api.DELETE("/items/:id", auth, h.DeleteTodo)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
