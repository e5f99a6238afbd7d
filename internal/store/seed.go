package store

import "todo_service/internal/domain"

// bcrypt hash of "password", cost 10
const defaultPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

// SeedUsers returns the static demo accounts. There is no registration
// flow, these two are the only users the service knows about.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: 1, Username: "admin", PasswordHash: defaultPasswordHash},
		{ID: 2, Username: "user", PasswordHash: defaultPasswordHash},
	}
}

func SeedTodos() []domain.Todo {
	return []domain.Todo{
		{ID: 1, Title: "Learn React", Completed: false, UserID: 1},
		{ID: 2, Title: "Build API", Completed: true, UserID: 1},
		{ID: 3, Title: "Write Tests", Completed: false, UserID: 2},
	}
}
