package ports

import (
	"context"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	// Create persists a new user and returns it with the server-assigned ID.
	// Returns domain.ErrEmailInUse when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
