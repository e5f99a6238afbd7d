package store

import (
	"context"
	"errors"

	"todo_service/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore holds the seeded user accounts. Records are created once at
// construction and never mutated, so lookups need no locking.
type UserStore struct {
	byUsername map[string]*domain.User
}

func NewUserStore(users []domain.User) *UserStore {
	s := &UserStore{byUsername: make(map[string]*domain.User, len(users))}
	for i := range users {
		u := users[i]
		s.byUsername[u.Username] = &u
	}
	return s
}

// FindByUsername does an exact case-sensitive match.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := s.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}
