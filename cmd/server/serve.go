package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/kanban-service/internal/adapters/http"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/kanban-service/internal/adapters/clients/webhook"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/notify"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/queue"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/scheduler"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/store/cache"
	"github.com/jsamuelsen11/kanban-service/internal/adapters/store/sqlite"
	"github.com/jsamuelsen11/kanban-service/internal/app"
	"github.com/jsamuelsen11/kanban-service/internal/platform/config"
	"github.com/jsamuelsen11/kanban-service/internal/platform/health"
	"github.com/jsamuelsen11/kanban-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/kanban-service/internal/platform/logging"
	"github.com/jsamuelsen11/kanban-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/kanban-service/internal/ports"
)

const (
	serverShutdownTimeout   = 15 * time.Second
	notifyShutdownTimeout   = 10 * time.Second
	schedulerStopTimeout    = 5 * time.Second
	otelShutdownTimeout     = 5 * time.Second
	startupMigrationTimeout = 30 * time.Second
)

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", cfg.Profile),
	)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	db := do.MustInvoke[*sqlite.DB](injector)
	dispatcher := do.MustInvoke[*notify.Dispatcher](injector)

	migrateCtx, migrateCancel := context.WithTimeout(ctx, startupMigrationTimeout)
	err = db.Migrate(migrateCtx)
	migrateCancel()
	if err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	registerHealthChecks(injector, cfg)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = do.MustInvoke[*scheduler.Scheduler](injector)
		if err := sched.ScheduleOverdueSweep(cfg.Scheduler.OverdueSweep); err != nil {
			return err
		}
		sched.Start()
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: stop the scheduler, drain HTTP requests, then flush
	// queued notifications before closing the stores they may read.
	if sched != nil {
		stopCtx, cancel := context.WithTimeout(context.Background(), schedulerStopTimeout)
		if err := sched.Stop(stopCtx); err != nil {
			logger.Error("scheduler stop error", slog.Any("error", err))
		}
		cancel()
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		}
		cancel()

		// Wait for Start() goroutine to return.
		<-serverErr
	}

	notifyCtx, notifyCancel := context.WithTimeout(context.Background(), notifyShutdownTimeout)
	if err := dispatcher.Close(notifyCtx); err != nil {
		logger.Error("notification dispatcher shutdown error", slog.Any("error", err))
	}
	notifyCancel()

	if cfg.Cache.Enabled {
		rdb := do.MustInvokeNamed[*redis.Client](injector, redisClientName)
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}
	if err := db.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

func migrate(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", cfg.Profile),
	)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, startupMigrationTimeout)
	defer cancel()
	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	logger.Info("database schema is up to date", slog.String("path", cfg.Database.Path))
	return nil
}

func openDatabase(cfg *config.Config) (*sqlite.DB, error) {
	db, err := sqlite.Open(sqlite.Options{
		Path:         cfg.Database.Path,
		BusyTimeout:  cfg.Database.BusyTimeout,
		QueryTimeout: cfg.Database.QueryTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// redisClientName names the optional Redis client in the container. It is
// only provided when the board cache is enabled.
const redisClientName = "redis"

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Stores.
	do.Provide(injector, func(_ do.Injector) (*sqlite.DB, error) {
		return openDatabase(cfg)
	})

	if cfg.Cache.Enabled {
		do.ProvideNamed(injector, redisClientName, func(_ do.Injector) (*redis.Client, error) {
			return cache.NewClient(cache.Options{
				Addr:     cfg.Cache.Addr,
				Password: cfg.Cache.Password,
				DB:       cfg.Cache.DB,
			})
		})
	}

	do.Provide(injector, func(i do.Injector) (ports.BoardStore, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		var boards ports.BoardStore = sqlite.NewBoardStore(db)
		if cfg.Cache.Enabled {
			rdb := do.MustInvokeNamed[*redis.Client](i, redisClientName)
			boards = cache.NewBoardStore(boards, rdb, cfg.Cache.TTL, logger)
		}
		return boards, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskStore, error) {
		return sqlite.NewTaskStore(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserStore, error) {
		return sqlite.NewUserStore(do.MustInvoke[*sqlite.DB](i)), nil
	})

	// Notifications.
	do.Provide(injector, func(i do.Injector) ([]ports.AssignmentSink, error) {
		return buildSinks(i, cfg, logger)
	})

	do.Provide(injector, func(i do.Injector) (*notify.Dispatcher, error) {
		sinks := do.MustInvoke[[]ports.AssignmentSink](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return notify.NewDispatcher(notify.Config{
			QueueSize:       cfg.Notify.QueueSize,
			Workers:         cfg.Notify.Workers,
			DeliveryTimeout: cfg.Notify.DeliveryTimeout,
		}, sinks, metrics, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		boards := do.MustInvoke[ports.BoardStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewBoardService(boards, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		tasks := do.MustInvoke[ports.TaskStore](i)
		boards := do.MustInvoke[ports.BoardStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		dispatcher := do.MustInvoke[*notify.Dispatcher](i)
		return app.NewTaskService(
			tasks,
			app.NewBoardResolver(boards),
			app.NewTaskRules(tasks, metrics, logger),
			dispatcher,
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(do.MustInvoke[ports.UserStore](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*scheduler.Scheduler, error) {
		return scheduler.New(do.MustInvoke[ports.BoardService](i), do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (*handlers.BoardHandler, error) {
		return handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TaskHandler, error) {
		return handlers.NewTaskHandler(do.MustInvoke[ports.TaskService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.UserHandler, error) {
		return handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := do.MustInvoke[*handlers.BoardHandler](i)
		taskH := do.MustInvoke[*handlers.TaskHandler](i)
		userH := do.MustInvoke[*handlers.UserHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(boardH, taskH, userH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.AppContext(),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// buildSinks returns the notification sinks named in notify.sinks, in the
// order log, webhook, queue.
func buildSinks(i do.Injector, cfg *config.Config, logger *slog.Logger) ([]ports.AssignmentSink, error) {
	var sinks []ports.AssignmentSink

	if cfg.Notify.HasSink(config.SinkLog) {
		sinks = append(sinks, notify.NewLogSink(logger))
	}

	if cfg.Notify.HasSink(config.SinkWebhook) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Notify.Webhook.Client, config.SinkWebhook, metrics, logger)
		sinks = append(sinks, webhook.NewSink(client, cfg.Notify.Webhook.Path, logger))
	}

	if cfg.Notify.HasSink(config.SinkQueue) {
		q, err := queue.New(queue.Options{
			ConnectionString: cfg.Notify.Queue.ConnectionString,
			QueueName:        cfg.Notify.Queue.Name,
			MaxRetries:       cfg.Notify.Queue.MaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("creating queue sink: %w", err)
		}
		sinks = append(sinks, q)
	}

	return sinks, nil
}

// registerHealthChecks adds every dependency that can be probed to the
// readiness registry. SQLite is required. The cache falls back to the store
// and sinks deliver off the request path, so both only degrade readiness.
// Sinks that are purely local are skipped.
func registerHealthChecks(injector *do.RootScope, cfg *config.Config) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*sqlite.DB](injector))

	if cfg.Cache.Enabled {
		registry.Register(health.Optional(cache.NewHealth(do.MustInvokeNamed[*redis.Client](injector, redisClientName))))
	}

	for _, s := range do.MustInvoke[[]ports.AssignmentSink](injector) {
		if checker, ok := s.(ports.HealthChecker); ok {
			registry.Register(health.Optional(checker))
		}
	}
}
