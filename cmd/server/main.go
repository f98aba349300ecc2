package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yaxhxv/todo-list-heyHomies/internal/api"
	"github.com/yaxhxv/todo-list-heyHomies/internal/api/handler"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/ports"
	"github.com/yaxhxv/todo-list-heyHomies/internal/core/service"
	"github.com/yaxhxv/todo-list-heyHomies/internal/infrastructure/config"
	mongodb "github.com/yaxhxv/todo-list-heyHomies/internal/infrastructure/db/mongo"
	"github.com/yaxhxv/todo-list-heyHomies/internal/infrastructure/db/postgres"
	redisdb "github.com/yaxhxv/todo-list-heyHomies/internal/infrastructure/db/redis"
	"github.com/yaxhxv/todo-list-heyHomies/pkg/logger"
)

// @title           todo-list API
// @version         1.0
// @description     Account signup/login and per-user todo CRUD.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A missing signing secret is a deployment error, not a request-level one.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not configured")
	}

	ctx := context.Background()

	// --- Redis (token denylist) ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	denylist := redisdb.NewDenylist(rdb)

	readiness := map[string]handler.Pinger{
		"redis": handler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	}

	// --- Storage driver ---
	var (
		authRepo ports.AuthRepository
		todoRepo ports.TodoRepository
	)
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer db.Close()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure postgres schema")
		}
		authRepo = postgres.NewAuthRepository(db)
		todoRepo = postgres.NewTodoRepository(db)
		readiness["postgres"] = handler.PingerFunc(db.PingContext)

	case config.DriverMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mongoAuth := mongodb.NewAuthRepository(db)
		mongoTodos := mongodb.NewTodoRepository(db)
		if err := mongoAuth.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongo user indexes")
		}
		if err := mongoTodos.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongo todo indexes")
		}
		authRepo = mongoAuth
		todoRepo = mongoTodos
		readiness["mongodb"] = handler.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})

	default:
		log.Fatal().Str("driver", cfg.StorageDriver).Msg("unknown storage driver")
	}

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, denylist, log)
	authService := service.NewAuthService(authRepo, tokenService)
	todoService := service.NewTodoService(todoRepo, log)

	e := api.NewRouter(api.Dependencies{
		AuthService:  authService,
		TodoService:  todoService,
		TokenService: tokenService,
		TokenTTL:     cfg.TokenTTL,
		Readiness:    readiness,
		Logger:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("driver", cfg.StorageDriver).Msg("server started")

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
