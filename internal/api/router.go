package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/yaxhxv/todo-list-heyHomies/docs"
	"github.com/yaxhxv/todo-list-heyHomies/internal/api/handler"
	"github.com/yaxhxv/todo-list-heyHomies/internal/api/middleware"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
)

// Dependencies carries everything the router needs, wired by the caller.
type Dependencies struct {
	AuthService  ports.AuthService
	TodoService  ports.TodoService
	TokenService ports.TokenService
	TokenTTL     time.Duration
	Readiness    map[string]handler.Pinger
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todolist"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.TokenTTL)
	todoHandler := handler.NewTodoHandler(deps.TodoService)
	authMiddleware := middleware.Auth(deps.TokenService)

	// --- Auth routes ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authMiddleware)
	e.POST("/api/auth/logout", authHandler.Logout, authMiddleware)

	// --- Todo routes (all protected) ---
	todos := e.Group("/api/todos", authMiddleware)
	todos.GET("", todoHandler.List)
	todos.POST("", todoHandler.Create)
	todos.PATCH("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Page routing (cookie trust boundary, separate from API auth) ---
	e.GET("/login", loginPage)
	e.GET("/", index, middleware.RequireSession("/login"))

	return e
}

// index is the authenticated landing page; the API docs stand in for a UI.
func index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/swagger/index.html")
}

func loginPage(c echo.Context) error {
	return c.HTML(http.StatusOK,
		`<!doctype html><title>todo-list</title><p>Sign in via <code>POST /api/auth/login</code> or use todoctl.</p>`)
}
