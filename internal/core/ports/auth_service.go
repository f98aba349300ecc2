package ports

import (
	"context"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}
