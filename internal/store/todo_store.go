package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todo_service/internal/domain"
)

var (
	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
	ErrTitleEmpty    = errors.New("title cannot be empty")
)

// TodoPatch carries the fields of a partial update. Nil means "leave as is".
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// TodoStore keeps todos in process memory. Every operation is scoped to an
// owner id: a todo owned by someone else behaves exactly like a missing one,
// so callers cannot probe for other users' ids.
type TodoStore struct {
	mu     sync.Mutex
	todos  []domain.Todo
	nextID int64
}

func NewTodoStore(seed []domain.Todo) *TodoStore {
	s := &TodoStore{todos: make([]domain.Todo, len(seed)), nextID: 1}
	copy(s.todos, seed)
	for _, t := range seed {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// List returns the owner's todos in insertion order. The result is a copy,
// safe to use after the lock is released.
func (s *TodoStore) List(ctx context.Context, ownerID int64) []domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Todo, 0)
	for _, t := range s.todos {
		if t.UserID == ownerID {
			res = append(res, t)
		}
	}
	return res
}

func (s *TodoStore) Create(ctx context.Context, ownerID int64, title string, completed bool) (*domain.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := domain.Todo{
		ID:        s.nextID,
		Title:     title,
		Completed: completed,
		UserID:    ownerID,
	}
	s.nextID++
	s.todos = append(s.todos, t)
	return &t, nil
}

func (s *TodoStore) Update(ctx context.Context, ownerID, id int64, patch TodoPatch) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, id)
	if idx == -1 {
		return nil, ErrTodoNotFound
	}

	// validate before touching anything, a bad title must not leave a
	// half-applied patch behind
	var newTitle string
	if patch.Title != nil {
		newTitle = strings.TrimSpace(*patch.Title)
		if newTitle == "" {
			return nil, ErrTitleEmpty
		}
	}

	if patch.Title != nil {
		s.todos[idx].Title = newTitle
	}
	if patch.Completed != nil {
		s.todos[idx].Completed = *patch.Completed
	}

	t := s.todos[idx]
	return &t, nil
}

func (s *TodoStore) Delete(ctx context.Context, ownerID, id int64) (*domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, id)
	if idx == -1 {
		return nil, ErrTodoNotFound
	}

	t := s.todos[idx]
	s.todos = append(s.todos[:idx], s.todos[idx+1:]...)
	return &t, nil
}

// indexOf matches on both id and owner. Caller must hold s.mu.
func (s *TodoStore) indexOf(ownerID, id int64) int {
	for i, t := range s.todos {
		if t.ID == id && t.UserID == ownerID {
			return i
		}
	}
	return -1
}
