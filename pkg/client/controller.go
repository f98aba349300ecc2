package client

import (
	"context"
	"sync"
)

// Controller holds the authenticated session and an ordered in-memory list
// mirroring the server's todos. Every mutation awaits the server round-trip
// and reconciles local state from the server-confirmed result; a failed call
// leaves prior state unchanged. Task data is only loaded once a session
// exists.
type Controller struct {
	mu    sync.Mutex
	api   *Client
	user  *User
	todos []Todo
}

func NewController(api *Client) *Controller {
	return &Controller{api: api}
}

// Signup creates an account and starts a session.
func (ctl *Controller) Signup(ctx context.Context, input SignupInput) error {
	resp, err := ctl.api.Signup(ctx, input)
	if err != nil {
		return err
	}
	ctl.setSession(resp.User)
	return nil
}

// Login starts a session. The todo list stays empty until Refresh.
func (ctl *Controller) Login(ctx context.Context, input LoginInput) error {
	resp, err := ctl.api.Login(ctx, input)
	if err != nil {
		return err
	}
	ctl.setSession(resp.User)
	return nil
}

// Resume restores a session from a previously stored token.
func (ctl *Controller) Resume(ctx context.Context) error {
	user, err := ctl.api.Me(ctx)
	if err != nil {
		return err
	}
	ctl.setSession(*user)
	return nil
}

// Logout ends the session and clears all local state.
func (ctl *Controller) Logout(ctx context.Context) error {
	err := ctl.api.Logout(ctx)

	ctl.mu.Lock()
	ctl.user = nil
	ctl.todos = nil
	ctl.mu.Unlock()

	return err
}

// Refresh replaces the local list with the server's view.
func (ctl *Controller) Refresh(ctx context.Context) error {
	if !ctl.Authenticated() {
		return ErrNotAuthenticated
	}

	todos, err := ctl.api.ListTodos(ctx)
	if err != nil {
		return err
	}

	ctl.mu.Lock()
	ctl.todos = todos
	ctl.mu.Unlock()
	return nil
}

// Add creates a todo and prepends the server-confirmed record (the server
// orders by creation time descending).
func (ctl *Controller) Add(ctx context.Context, input CreateTodoInput) (*Todo, error) {
	todo, err := ctl.api.CreateTodo(ctx, input)
	if err != nil {
		return nil, err
	}

	ctl.mu.Lock()
	ctl.todos = append([]Todo{*todo}, ctl.todos...)
	ctl.mu.Unlock()
	return todo, nil
}

// Edit applies a partial update and reconciles the local entry from the
// server's response.
func (ctl *Controller) Edit(ctx context.Context, id string, input UpdateTodoInput) (*Todo, error) {
	todo, err := ctl.api.UpdateTodo(ctx, id, input)
	if err != nil {
		return nil, err
	}

	ctl.mu.Lock()
	for i := range ctl.todos {
		if ctl.todos[i].ID == id {
			ctl.todos[i] = *todo
			break
		}
	}
	ctl.mu.Unlock()
	return todo, nil
}

// SetStatus moves a todo to the given status.
func (ctl *Controller) SetStatus(ctx context.Context, id, status string) (*Todo, error) {
	return ctl.Edit(ctx, id, UpdateTodoInput{Status: &status})
}

// Remove deletes a todo and drops it locally once the server confirms.
func (ctl *Controller) Remove(ctx context.Context, id string) error {
	if err := ctl.api.DeleteTodo(ctx, id); err != nil {
		return err
	}

	ctl.mu.Lock()
	for i := range ctl.todos {
		if ctl.todos[i].ID == id {
			ctl.todos = append(ctl.todos[:i], ctl.todos[i+1:]...)
			break
		}
	}
	ctl.mu.Unlock()
	return nil
}

// Todos returns a copy of the mirrored list.
func (ctl *Controller) Todos() []Todo {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	out := make([]Todo, len(ctl.todos))
	copy(out, ctl.todos)
	return out
}

// User returns the authenticated user, or nil.
func (ctl *Controller) User() *User {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if ctl.user == nil {
		return nil
	}
	u := *ctl.user
	return &u
}

// Authenticated reports whether a session exists.
func (ctl *Controller) Authenticated() bool {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.user != nil
}

func (ctl *Controller) setSession(user User) {
	ctl.mu.Lock()
	ctl.user = &user
	ctl.todos = nil
	ctl.mu.Unlock()
}
