package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yaxhxv/todo-list-heyHomies/internal/api/metrics"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/domain"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

// TodoHandler handles HTTP requests for todo operations. Every route sits
// behind the Auth middleware; the user ID in context scopes each call.
type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// List returns all todos owned by the caller, newest first.
//
// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   todoResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/todos [get]
func (h *TodoHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTodoListResponse(todos))
}

// Create persists a new todo owned by the caller.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTodoRequest  true  "Todo details"
// @Success      201   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toCreateInput(req, userID)
	if err != nil {
		return err
	}

	todo, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.TodosCreatedTotal.WithLabelValues(string(todo.Priority)).Inc()
	return c.JSON(http.StatusCreated, toTodoResponse(todo))
}

// Update applies a partial update to one of the caller's todos.
//
// @Summary      Update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Todo ID"
// @Param        body  body      updateTodoRequest  true  "Fields to change"
// @Success      200   {object}  todoResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/todos/{id} [patch]
func (h *TodoHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := toUpdateInput(req, c.Param("id"), userID)
	if err != nil {
		return err
	}

	todo, err := h.service.Update(c.Request().Context(), input)
	if err != nil {
		return err
	}

	if req.Status != nil && *req.Status == string(domain.StatusCompleted) {
		metrics.TodosCompletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, toTodoResponse(todo))
}

// Delete permanently removes one of the caller's todos.
//
// @Summary      Delete a todo
// @Tags         todos
// @Security     BearerAuth
// @Param        id  path  string  true  "Todo ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/todos/{id} [delete]
func (h *TodoHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}

	metrics.TodosDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
