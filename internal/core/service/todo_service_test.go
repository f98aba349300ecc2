package service

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

type stubTodoRepo struct {
	todos  map[string]*domain.Todo
	nextID int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{todos: make(map[string]*domain.Todo)}
}

func cloneTodo(t *domain.Todo) *domain.Todo {
	if t == nil {
		return nil
	}
	clone := *t
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	return &clone
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.Todo) (*domain.Todo, error) {
	r.nextID++
	created := cloneTodo(todo)
	created.ID = "todo_" + strconv.Itoa(r.nextID)
	r.todos[created.ID] = cloneTodo(created)
	return created, nil
}

func (r *stubTodoRepo) ListByUser(_ context.Context, userID string) ([]*domain.Todo, error) {
	var out []*domain.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			out = append(out, cloneTodo(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubTodoRepo) FindByID(_ context.Context, id, userID string) (*domain.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return nil, domain.ErrTodoNotFound
	}
	return cloneTodo(t), nil
}

func (r *stubTodoRepo) Update(_ context.Context, todo *domain.Todo) error {
	existing, ok := r.todos[todo.ID]
	if !ok || existing.UserID != todo.UserID {
		return domain.ErrTodoNotFound
	}
	r.todos[todo.ID] = cloneTodo(todo)
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id, userID string) error {
	existing, ok := r.todos[id]
	if !ok || existing.UserID != userID {
		return domain.ErrTodoNotFound
	}
	delete(r.todos, id)
	return nil
}

func newTestTodoService() (*TodoService, *stubTodoRepo) {
	repo := newStubTodoRepo()
	return NewTodoService(repo, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }

func TestTodoService_Create_Defaults(t *testing.T) {
	svc, _ := newTestTodoService()

	todo, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID: "user_1",
		Title:  "buy milk",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if todo.ID == "" {
		t.Fatalf("expected server-assigned ID")
	}
	if todo.Status != domain.StatusTodo {
		t.Fatalf("expected status %q, got %q", domain.StatusTodo, todo.Status)
	}
	if todo.Priority != domain.PriorityMedium {
		t.Fatalf("expected priority %q, got %q", domain.PriorityMedium, todo.Priority)
	}
	if todo.DueDate != nil {
		t.Fatalf("expected no due date, got %v", todo.DueDate)
	}
	if todo.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestTodoService_Create_ExplicitPriority(t *testing.T) {
	svc, _ := newTestTodoService()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	todo, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID:      "user_1",
		Title:       "file taxes",
		Description: "before the deadline",
		Priority:    "high",
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if todo.Priority != domain.PriorityHigh {
		t.Fatalf("expected priority high, got %q", todo.Priority)
	}
	if todo.DueDate == nil || !todo.DueDate.Equal(due) {
		t.Fatalf("expected due date %v, got %v", due, todo.DueDate)
	}
}

func TestTodoService_Update_Partial(t *testing.T) {
	svc, _ := newTestTodoService()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID:      "user_1",
		Title:       "original",
		Description: "keep me",
		Priority:    "low",
		DueDate:     &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateTodoInput{
		ID:     created.ID,
		UserID: "user_1",
		Status: strPtr("in_progress"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.StatusInProgress {
		t.Fatalf("expected status in_progress, got %q", updated.Status)
	}
	// Untouched fields survive a partial update.
	if updated.Title != "original" || updated.Description != "keep me" {
		t.Fatalf("partial update clobbered other fields: %+v", updated)
	}
	if updated.Priority != domain.PriorityLow {
		t.Fatalf("expected priority low, got %q", updated.Priority)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("expected due date %v, got %v", due, updated.DueDate)
	}
}

func TestTodoService_Update_ClearDueDate(t *testing.T) {
	svc, _ := newTestTodoService()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID:  "user_1",
		Title:   "with deadline",
		DueDate: &due,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateTodoInput{
		ID:           created.ID,
		UserID:       "user_1",
		ClearDueDate: true,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.DueDate != nil {
		t.Fatalf("expected due date cleared, got %v", updated.DueDate)
	}
}

func TestTodoService_OwnershipIsolation(t *testing.T) {
	svc, _ := newTestTodoService()

	created, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID: "user_1",
		Title:  "private",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Another user's todo behaves exactly like a missing one.
	if _, err := svc.Update(context.Background(), ports.UpdateTodoInput{
		ID:     created.ID,
		UserID: "user_2",
		Title:  strPtr("hijacked"),
	}); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "user_2"); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}

	other, err := svc.List(context.Background(), "user_2")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty list for other user, got %d", len(other))
	}
}

func TestTodoService_Delete(t *testing.T) {
	svc, _ := newTestTodoService()

	created, err := svc.Create(context.Background(), ports.CreateTodoInput{
		UserID: "user_1",
		Title:  "ephemeral",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, "user_1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	todos, err := svc.List(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(todos))
	}

	if err := svc.Delete(context.Background(), created.ID, "user_1"); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound on second delete, got %v", err)
	}
}
