package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

// TodoService implements owner-scoped CRUD on todos.
type TodoService struct {
	repo ports.TodoRepository
	log  zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, log zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, log: log}
}

// List returns all todos owned by userID, most recent first.
func (s *TodoService) List(ctx context.Context, userID string) ([]*domain.Todo, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create persists a new todo owned by input.UserID. New todos start in the
// "todo" status; priority defaults to "medium" when omitted.
func (s *TodoService) Create(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
	priority := domain.Priority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	todo := &domain.Todo{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create todo")
		return nil, err
	}

	s.log.Info().Str("todo_id", created.ID).Str("user_id", created.UserID).Msg("todo created")
	return created, nil
}

// Update applies the provided fields to the todo matching input.ID and
// input.UserID and returns the full updated record. A todo owned by another
// user surfaces as domain.ErrTodoNotFound.
func (s *TodoService) Update(ctx context.Context, input ports.UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.repo.FindByID(ctx, input.ID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Description != nil {
		todo.Description = *input.Description
	}
	if input.Status != nil {
		todo.Status = domain.Status(*input.Status)
	}
	if input.Priority != nil {
		todo.Priority = domain.Priority(*input.Priority)
	}
	if input.ClearDueDate {
		todo.DueDate = nil
	} else if input.DueDate != nil {
		todo.DueDate = input.DueDate
	}

	if err := s.repo.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.log.Info().Str("todo_id", todo.ID).Str("user_id", todo.UserID).Msg("todo updated")
	return todo, nil
}

// Delete permanently removes the todo matching id and userID.
func (s *TodoService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.log.Info().Str("todo_id", id).Str("user_id", userID).Msg("todo deleted")
	return nil
}
