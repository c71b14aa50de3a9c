package rest

import (
	"net/http"
	"strings"
	"time"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/v1"

	rpcPath   = apiV1Prefix + "/rpc/"
	feedPath  = apiV1Prefix + "/feed"
	mediaPath = apiV1Prefix + "/media"

	healthPath  = "/health"
	metricsPath = "/metrics"
	docPath     = "/swagger/doc.json"
	uploadsPath = "/uploads"
)

type RouteOptions struct {
	CORSOrigins []string
	// UploadsDir is served under /uploads when media is kept on the local filesystem.
	UploadsDir string
	// MaxUploadSize limits upload bodies, e.g. "10M".
	MaxUploadSize string
	Sentry        bool
}

// RegisterRoutes builds the HTTP server: JSON-RPC, side endpoints, docs and metrics.
func (h *Handler) RegisterRoutes(rpcServer http.Handler, opts RouteOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if opts.Sentry {
		e.Use(sentryecho.New(sentryecho.Options{Repanic: true, Timeout: 2 * time.Second}))
	}
	e.Use(h.requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	h.registerAPIRoutes(e, rpcServer, opts)
	h.registerSystemRoutes(e)

	if opts.UploadsDir != "" {
		e.Static(uploadsPath, opts.UploadsDir)
	}

	return e
}

func (h *Handler) registerAPIRoutes(e *echo.Echo, rpcServer http.Handler, opts RouteOptions) {
	rpc := echo.WrapHandler(rpcServer)
	e.Any(rpcPath, rpc)
	e.Any(strings.TrimSuffix(rpcPath, "/"), rpc)
	e.GET(feedPath, h.Feed)

	maxUpload := opts.MaxUploadSize
	if maxUpload == "" {
		maxUpload = "10M"
	}
	e.POST(mediaPath, h.UploadMedia, middleware.BodyLimit(maxUpload))
}

func (h *Handler) registerSystemRoutes(e *echo.Echo) {
	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(docPath, h.swaggerDoc)
}

func (h *Handler) swaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "api doc is not available")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *Handler) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"path", v.URI,
				"status", v.Status,
				"duration_ms", v.Latency.Milliseconds(),
				"remote_addr", v.RemoteIP,
			}
			if v.Error != nil {
				h.log.ErrorContext(c.Request().Context(), "HTTP request", append(attrs, "error", v.Error)...)
				return nil
			}

			h.log.InfoContext(c.Request().Context(), "HTTP request", attrs...)
			return nil
		},
	})
}
