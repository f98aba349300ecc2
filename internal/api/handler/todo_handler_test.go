package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/yaxhxv/todo-list-heyHomies/internal/api/middleware"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

type stubTodoService struct {
	todos      []*domain.Todo
	err        error
	lastCreate ports.CreateTodoInput
	lastUpdate ports.UpdateTodoInput
	deleted    []string
}

func (s *stubTodoService) List(_ context.Context, userID string) ([]*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.todos, nil
}

func (s *stubTodoService) Create(_ context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastCreate = input
	priority := domain.Priority(input.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}
	return &domain.Todo{
		ID:          "todo_1",
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil
}

func (s *stubTodoService) Update(_ context.Context, input ports.UpdateTodoInput) (*domain.Todo, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastUpdate = input
	todo := &domain.Todo{
		ID:        input.ID,
		UserID:    input.UserID,
		Title:     "existing",
		Status:    domain.StatusTodo,
		Priority:  domain.PriorityMedium,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if input.Title != nil {
		todo.Title = *input.Title
	}
	if input.Status != nil {
		todo.Status = domain.Status(*input.Status)
	}
	return todo, nil
}

func (s *stubTodoService) Delete(_ context.Context, id, userID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func TestTodoHandler_List(t *testing.T) {
	svc := &stubTodoService{todos: []*domain.Todo{
		{ID: "todo_2", UserID: "user_1", Title: "newer", Status: domain.StatusTodo, Priority: domain.PriorityHigh},
		{ID: "todo_1", UserID: "user_1", Title: "older", Status: domain.StatusCompleted, Priority: domain.PriorityLow},
	}}
	h := NewTodoHandler(svc)

	c, rec := newEchoContext(t, http.MethodGet, "/api/todos", "")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "todo_2" || resp[1].ID != "todo_1" {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestTodoHandler_List_Empty(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, rec := newEchoContext(t, http.MethodGet, "/api/todos", "")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	// An empty list renders as [], not null.
	var resp []todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body := rec.Body.String(); body == "null\n" {
		t.Fatalf("expected [] body, got %q", body)
	}
}

func TestTodoHandler_Create(t *testing.T) {
	svc := &stubTodoService{}
	h := NewTodoHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/api/todos",
		`{"title":"buy milk","priority":"high","dueDate":"2026-09-15"}`)
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if svc.lastCreate.UserID != "user_1" || svc.lastCreate.Title != "buy milk" {
		t.Fatalf("unexpected create input: %+v", svc.lastCreate)
	}
	if svc.lastCreate.DueDate == nil {
		t.Fatalf("expected parsed due date")
	}

	var resp todoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "todo" || resp.Priority != "high" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestTodoHandler_Create_MissingTitle(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, _ := newEchoContext(t, http.MethodPost, "/api/todos", `{"priority":"low"}`)
	c.Set(middleware.CtxUserID, "user_1")

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Fatalf("expected error on title, got %v", ve.Fields)
	}
}

func TestTodoHandler_Create_BadDueDate(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, _ := newEchoContext(t, http.MethodPost, "/api/todos",
		`{"title":"x","dueDate":"next tuesday"}`)
	c.Set(middleware.CtxUserID, "user_1")

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["dueDate"]; !ok {
		t.Fatalf("expected error on dueDate, got %v", ve.Fields)
	}
}

func TestTodoHandler_Update(t *testing.T) {
	svc := &stubTodoService{}
	h := NewTodoHandler(svc)

	c, rec := newEchoContext(t, http.MethodPatch, "/api/todos/todo_1",
		`{"status":"completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("todo_1")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if svc.lastUpdate.ID != "todo_1" || svc.lastUpdate.UserID != "user_1" {
		t.Fatalf("unexpected update input: %+v", svc.lastUpdate)
	}
	if svc.lastUpdate.Status == nil || *svc.lastUpdate.Status != "completed" {
		t.Fatalf("expected status change, got %+v", svc.lastUpdate)
	}
	// Untouched fields stay nil in a partial update.
	if svc.lastUpdate.Title != nil || svc.lastUpdate.Priority != nil {
		t.Fatalf("expected only status set, got %+v", svc.lastUpdate)
	}
}

func TestTodoHandler_Update_ClearDueDate(t *testing.T) {
	svc := &stubTodoService{}
	h := NewTodoHandler(svc)

	c, _ := newEchoContext(t, http.MethodPatch, "/api/todos/todo_1", `{"dueDate":""}`)
	c.SetParamNames("id")
	c.SetParamValues("todo_1")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !svc.lastUpdate.ClearDueDate {
		t.Fatalf("expected ClearDueDate, got %+v", svc.lastUpdate)
	}
}

func TestTodoHandler_Update_InvalidStatus(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, _ := newEchoContext(t, http.MethodPatch, "/api/todos/todo_1", `{"status":"done"}`)
	c.SetParamNames("id")
	c.SetParamValues("todo_1")
	c.Set(middleware.CtxUserID, "user_1")

	err := h.Update(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["status"]; !ok {
		t.Fatalf("expected error on status, got %v", ve.Fields)
	}
}

func TestTodoHandler_Update_NotFound(t *testing.T) {
	svc := &stubTodoService{err: domain.ErrTodoNotFound}
	h := NewTodoHandler(svc)

	c, _ := newEchoContext(t, http.MethodPatch, "/api/todos/missing", `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Update(c); err != domain.ErrTodoNotFound {
		t.Fatalf("expected ErrTodoNotFound to propagate, got %v", err)
	}
}

func TestTodoHandler_Delete(t *testing.T) {
	svc := &stubTodoService{}
	h := NewTodoHandler(svc)

	c, rec := newEchoContext(t, http.MethodDelete, "/api/todos/todo_1", "")
	c.SetParamNames("id")
	c.SetParamValues("todo_1")
	c.Set(middleware.CtxUserID, "user_1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "todo_1" {
		t.Fatalf("expected delete call, got %v", svc.deleted)
	}
}

func TestTodoHandler_MissingClaims(t *testing.T) {
	h := NewTodoHandler(&stubTodoService{})

	c, _ := newEchoContext(t, http.MethodGet, "/api/todos", "")

	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
