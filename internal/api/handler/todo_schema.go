package handler

import "time"

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate"`
}

// updateTodoRequest is a partial update: nil pointers mean "leave as is".
// An empty dueDate string clears the date (JSON null is indistinguishable
// from an absent field once decoded).
type updateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=todo in_progress completed"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate"`
}

type todoResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
