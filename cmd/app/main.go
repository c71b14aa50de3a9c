package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-cms/config"
	_ "github.com/daniilsolovey/blog-cms/docs"
	"github.com/daniilsolovey/blog-cms/internal/app"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

var (
	flConfig     = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug      = flag.Bool("debug", false, "enable debug mode")
	flPort       = flag.Int("port", 0, "HTTP server port, overrides App.Port")
	flCORSOrigin = flag.String("cors_origin", "", "comma separated allowed CORS origins, overrides App.CORSOrigin")
	flMigrate    = flag.Bool("migrate", true, "apply database migrations on start")
	cfg          config.Config
	lg           *slog.Logger
)

// @title Blog CMS API
// @version 1.0
// @description Blog and content management backend. The main API is JSON-RPC 2.0 at /v1/rpc/ (SMD schema on GET); REST endpoints below are side doors.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}
	applyFlags(&cfg)

	if cfg.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			AttachStacktrace: true,
		})
		exitOnError(err)
		defer sentry.Flush(2 * time.Second)
	}

	ctx := context.Background()

	if *flMigrate {
		connConfig, err := db.ConnConfig(&cfg.Database.Options)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connConfig))
		lg.Info("database migrations applied")
	}

	dbc := pg.Connect(&cfg.Database.Options)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(ctx, cfg, dbc, lg)
	if err != nil {
		dbc.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func applyFlags(cfg *config.Config) {
	if *flPort != 0 {
		cfg.App.Port = *flPort
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 3000
	}

	if *flCORSOrigin != "" {
		cfg.App.CORSOrigin = strings.Split(*flCORSOrigin, ",")
	}
	if len(cfg.App.CORSOrigin) == 0 {
		cfg.App.CORSOrigin = []string{"*"}
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
