package ports

import (
	"context"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
)

// TodoRepository defines persistence operations for todos. Every read and
// write is scoped by the owning user ID; a lookup that matches an existing
// todo owned by someone else behaves exactly like a miss
// (domain.ErrTodoNotFound).
type TodoRepository interface {
	// Create persists a new todo and returns it with the server-assigned ID.
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// ListByUser returns all todos owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Todo, error)
	FindByID(ctx context.Context, id, userID string) (*domain.Todo, error)
	// Update replaces the stored record matching todo.ID and todo.UserID.
	Update(ctx context.Context, todo *domain.Todo) error
	Delete(ctx context.Context, id, userID string) error
}
