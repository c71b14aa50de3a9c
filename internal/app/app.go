package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/daniilsolovey/blog-cms/config"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/cache"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/daniilsolovey/blog-cms/internal/rest"
	"github.com/daniilsolovey/blog-cms/internal/rpc"
	"github.com/daniilsolovey/blog-cms/internal/storage"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type App struct {
	DB        *db.Repository
	Logger    *slog.Logger
	Echo      *echo.Echo
	Config    config.Config
	Managers  *blog.Managers
	Scheduler *Scheduler

	redis *redis.Client

	mu            sync.Mutex
	stopScheduler context.CancelFunc
	schedulerDone chan struct{}
}

func New(ctx context.Context, cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.Database.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryLogger(logger))
		logger.Info("SQL query logging enabled")
	}
	database := db.New(dbConnect)

	files, uploadsDir, err := newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	a := &App{
		DB:     database,
		Logger: logger,
		Config: cfg,
	}

	deps := blog.Deps{Storage: files}
	if cfg.Redis.Addr != "" {
		a.redis, err = cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		deps.Views = cache.NewViewCache(a.redis)
	}

	a.Managers = blog.New(database, logger, cfg.BlogOptions(), deps)
	rpcServer := rpc.New(logger, a.Managers)

	handler := rest.NewHandler(a.Managers, logger, database.Ping)
	a.Echo = handler.RegisterRoutes(rpcServer, rest.RouteOptions{
		CORSOrigins:   cfg.App.CORSOrigin,
		UploadsDir:    uploadsDir,
		MaxUploadSize: cfg.Storage.MaxUploadSize,
		Sentry:        cfg.Sentry.DSN != "",
	})

	a.Scheduler = NewScheduler(cfg.SchedulerInterval(), logger,
		Job{Name: "publishScheduledPosts", Run: a.Managers.Posts.PublishScheduledPosts},
		Job{Name: "cleanupSessions", Run: a.Managers.Auth.CleanupSessions},
	)

	return a, nil
}

// newStorage returns the media storage and, for the local driver, the directory to serve under /uploads.
func newStorage(cfg config.Config) (blog.Storage, string, error) {
	switch cfg.Storage.Driver {
	case config.StorageS3:
		s3cfg := cfg.Storage.S3
		files, err := storage.NewS3(storage.S3Config{
			Endpoint:  s3cfg.Endpoint,
			Region:    s3cfg.Region,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
			Bucket:    s3cfg.Bucket,
			PublicURL: s3cfg.PublicURL,
		})
		return files, "", err
	case config.StorageLocal, "":
		dir, baseURL := cfg.Storage.Dir, cfg.Storage.BaseURL
		if dir == "" {
			dir = "uploads"
		}
		if baseURL == "" {
			baseURL = "/uploads"
		}
		files, err := storage.NewLocal(dir, baseURL)
		return files, dir, err
	}

	return nil, "", fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (a *App) Run(ctx context.Context, port int) error {
	a.startScheduler(ctx)

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	a.Logger.Info("service started", "addr", addr)
	return a.Echo.Start(addr)
}

func (a *App) startScheduler(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	schedCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.stopScheduler, a.schedulerDone = cancel, done

	go func() {
		defer close(done)
		a.Scheduler.Run(schedCtx)
	}()
}

// waitScheduler stops the scheduler and waits for the running tick, bounded by ctx.
func (a *App) waitScheduler(ctx context.Context) {
	a.mu.Lock()
	stop, done := a.stopScheduler, a.schedulerDone
	a.mu.Unlock()

	if stop == nil {
		return
	}

	stop()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	a.waitScheduler(ctx)

	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil {
			a.Logger.Error("error closing redis connection", "error", cerr)
		}
	}

	if cerr := a.DB.Close(); cerr != nil {
		a.Logger.Error("error closing database connection", "error", cerr)
	}

	return err
}
