package handler

import (
	"time"

	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createTodoRequest, userID string) (ports.CreateTodoInput, error) {
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return ports.CreateTodoInput{}, err
	}
	return ports.CreateTodoInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     due,
	}, nil
}

func toUpdateInput(req updateTodoRequest, id, userID string) (ports.UpdateTodoInput, error) {
	in := ports.UpdateTodoInput{
		ID:          id,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			in.ClearDueDate = true
		} else {
			due, err := parseDueDate(*req.DueDate)
			if err != nil {
				return ports.UpdateTodoInput{}, err
			}
			in.DueDate = due
		}
	}
	return in, nil
}

// parseDueDate accepts RFC 3339 timestamps or bare dates. Empty input means
// no due date.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, NewValidationError("dueDate", "must be a valid date")
}

// --- Domain → HTTP response ---

func toTodoResponse(t *domain.Todo) todoResponse {
	resp := todoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt.UTC(),
	}
	if t.DueDate != nil {
		due := t.DueDate.UTC()
		resp.DueDate = &due
	}
	return resp
}

func toTodoListResponse(todos []*domain.Todo) []todoResponse {
	out := make([]todoResponse, len(todos))
	for i, t := range todos {
		out[i] = toTodoResponse(t)
	}
	return out
}
