package ports

import (
	"context"
	"time"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
)

// CreateTodoInput carries all data needed to create a new todo.
type CreateTodoInput struct {
	UserID      string
	Title       string
	Description string
	Priority    string // empty means "medium"
	DueDate     *time.Time
}

// UpdateTodoInput is a partial update: nil fields are left untouched.
// ClearDueDate removes the due date regardless of DueDate.
type UpdateTodoInput struct {
	ID           string
	UserID       string
	Title        *string
	Description  *string
	Status       *string
	Priority     *string
	DueDate      *time.Time
	ClearDueDate bool
}

// TodoService defines the use-case operations on todos. Every operation is
// scoped by the authenticated user carried in the input.
type TodoService interface {
	List(ctx context.Context, userID string) ([]*domain.Todo, error)
	Create(ctx context.Context, input CreateTodoInput) (*domain.Todo, error)
	Update(ctx context.Context, input UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, id, userID string) error
}
