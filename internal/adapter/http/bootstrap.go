package http

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"todolist/internal/adapter/cache"
	"todolist/internal/adapter/database/postgres"
	pgrepository "todolist/internal/adapter/database/postgres/repository"
	"todolist/internal/adapter/database/sqlite"
	sqliterepository "todolist/internal/adapter/database/sqlite/repository"
	"todolist/internal/adapter/http/routes"
	"todolist/internal/adapter/storage"
	"todolist/internal/core/port"
	"todolist/internal/core/service"
	"todolist/internal/telemetry"
	"todolist/pkg/config"
)

// Server bundles the HTTP server with the resources it owns, so main can
// shut everything down in order.
type Server struct {
	HTTP      *http.Server
	Container *Container

	closers []func()
}

func (s *Server) Close() {
	for _, close := range s.closers {
		close()
	}
}

// BuildServer assembles the whole request path: database, repositories,
// services, handlers, rate limiting and routes. Postgres is used when
// DATABASE_URL is set, sqlite otherwise.
func BuildServer(ctx context.Context, cfg *config.AppConfig, metrics *telemetry.AppMetrics, logger *telemetry.RequestLogger) (*Server, error) {
	server := &Server{}

	repos, err := buildRepositories(ctx, cfg, server)

	if err != nil {
		return nil, err
	}

	store := storage.NewLocalStore(cfg.UploadDir, cfg.AvatarAccessPath)
	container := NewContainer(repos, store, service.SystemClock{})
	server.Container = container

	counters, err := buildCounterStore(ctx, cfg)

	if err != nil {
		return nil, err
	}

	server.closers = append(server.closers, func() {
		if err := counters.Close(); err != nil {
			slog.Error("Error closing counter store", "error", err)
		}
	})

	limiter := telemetry.NewRateLimiter(counters, cfg, logger.Logger.Logger, metrics)

	router := routes.SetupRouterWithConfig(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		UserHandler: container.UserHandler,
		ListHandler: container.ListHandler,
		TaskHandler: container.TaskHandler,
	}, metrics, logger, limiter, cfg)

	httpPort := os.Getenv("PORT")

	if httpPort == "" {
		httpPort = "8080"
	}

	server.HTTP = &http.Server{
		Addr:         ":" + httpPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg *config.AppConfig, server *Server) (Repositories, error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx)

		if err != nil {
			return Repositories{}, err
		}

		server.closers = append(server.closers, db.Close)

		return Repositories{
			User: pgrepository.NewUserRepository(db),
			List: pgrepository.NewListRepository(db),
			Task: pgrepository.NewTaskRepository(db),
		}, nil
	}

	db, err := sqlite.NewDB()

	if err != nil {
		return Repositories{}, err
	}

	server.closers = append(server.closers, func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	})

	return Repositories{
		User: sqliterepository.NewUserRepository(db),
		List: sqliterepository.NewListRepository(db),
		Task: sqliterepository.NewTaskRepository(db),
	}, nil
}

func buildCounterStore(ctx context.Context, cfg *config.AppConfig) (port.CounterStore, error) {
	if cfg.RedisURL != "" {
		return cache.NewRedisStore(ctx, cfg.RedisURL)
	}

	return cache.NewMemoryStore(), nil
}
