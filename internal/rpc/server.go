package rpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

const serverName = "blog-cms"

// namespaces of the JSON-RPC services.
const (
	NSAuth       = "auth"
	NSUsers      = "users"
	NSPosts      = "posts"
	NSCategories = "categories"
	NSTags       = "tags"
	NSMedia      = "media"
	NSComments   = "comments"
	NSSettings   = "settings"
	NSAnalytics  = "analytics"
)

// New returns the JSON-RPC server with every service registered.
func New(logger *slog.Logger, m *blog.Managers) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})

	rpcServer.Register("", NewHealthService())
	rpcServer.Register(NSAuth, NewAuthService(m.Auth))
	rpcServer.Register(NSUsers, NewUserService(m.Users))
	rpcServer.Register(NSPosts, NewPostService(m.Posts, m.Media.FileURL))
	rpcServer.Register(NSCategories, NewCategoryService(m.Categories))
	rpcServer.Register(NSTags, NewTagService(m.Tags))
	rpcServer.Register(NSMedia, NewMediaService(m.Media))
	rpcServer.Register(NSComments, NewCommentService(m.Comments))
	rpcServer.Register(NSSettings, NewSettingsService(m.Settings))
	rpcServer.Register(NSAnalytics, NewAnalyticsService(m.Analytics))

	rpcServer.Use(
		middleware.WithHeaders(),
		middleware.WithSentry(serverName),
		middleware.WithMetrics(serverName),
		middleware.WithSLog(logger.InfoContext, serverName, nil),
		withInternalErrors(logger),
		withAuth(m.Auth, logger),
	)

	return rpcServer
}

// HealthService reports that the server is up.
type HealthService struct{ zenrpc.Service }

func NewHealthService() *HealthService {
	return &HealthService{}
}

// Healthcheck returns ok with the server time.
func (s *HealthService) Healthcheck(_ context.Context) (Health, error) {
	return Health{Status: "ok", Timestamp: time.Now()}, nil
}
