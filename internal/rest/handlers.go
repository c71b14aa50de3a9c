package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

const (
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

type Handler struct {
	m    *blog.Managers
	log  *slog.Logger
	ping func(ctx context.Context) error
}

// NewHandler serves the REST side endpoints. ping checks the database for /health.
func NewHandler(m *blog.Managers, log *slog.Logger, ping func(ctx context.Context) error) *Handler {
	return &Handler{
		m:    m,
		log:  log,
		ping: ping,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// domainError answers with the status matching a domain error; unknown errors are hidden.
func (h *Handler) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, blog.ErrInvalidInput):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case errors.Is(err, blog.ErrUnauthorized):
		return h.handleError(c, err, http.StatusUnauthorized, err.Error())
	case errors.Is(err, blog.ErrForbidden):
		return h.handleError(c, err, http.StatusForbidden, err.Error())
	case errors.Is(err, blog.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, err.Error())
	case errors.Is(err, blog.ErrConflict):
		return h.handleError(c, err, http.StatusConflict, err.Error())
	}

	return h.handleError(c, err, http.StatusInternalServerError, "internal error")
}

// Health handles GET /health
// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags system
// @Produce json
// @Success 200 {object} rest.Health
// @Failure 503 {object} rest.Health
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	resp := Health{Status: "ok", Database: "ok", Timestamp: time.Now()}
	if h.ping != nil {
		if err := h.ping(c.Request().Context()); err != nil {
			h.log.Error("database ping failed", "error", err)
			resp.Status, resp.Database = "degraded", "unavailable"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// Feed handles GET /v1/feed
// @Summary Published posts feed
// @Description Published posts, latest first, for readers and syndication
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param search query string false "Search in title, excerpt and content"
// @Param category_id query int false "Filter by category ID"
// @Param tag_id query int false "Filter by tag ID"
// @Param author_id query int false "Filter by author ID"
// @Param featured query bool false "Featured posts only"
// @Success 200 {object} rest.Feed
// @Failure 400,500 {object} rest.ErrorResponse
// @Router /v1/feed [get]
func (h *Handler) Feed(c echo.Context) error {
	ctx := c.Request().Context()

	var req FeedRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	filters, err := req.filters()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	page, err := h.m.Posts.PublishedPosts(ctx, filters)
	if err != nil {
		return h.domainError(c, err)
	}

	return c.JSON(http.StatusOK, NewFeed(page, h.m.Media.FileURL))
}

// UploadMedia handles POST /v1/media
// @Summary Upload a media file
// @Description Stores the file, registers it in the media library and renders a thumbnail for images
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param alt_text formData string false "Alternative text"
// @Success 201 {object} rest.Media
// @Failure 400,401,403,413,500 {object} rest.ErrorResponse
// @Router /v1/media [post]
func (h *Handler) UploadMedia(c echo.Context) error {
	ctx := c.Request().Context()

	principal, _, err := h.m.Auth.Authenticate(ctx, bearerToken(c.Request()))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	} else if principal == nil {
		return h.handleError(c, nil, http.StatusUnauthorized, blog.ErrUnauthorized.Error())
	} else if !principal.Can(blog.RoleAuthor) {
		return h.handleError(c, nil, http.StatusForbidden, blog.ErrForbidden.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "file is required")
	}

	file, err := fh.Open()
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "cannot read file")
	}
	defer file.Close()

	up := blog.Upload{
		Body:         file,
		Size:         fh.Size,
		OriginalName: fh.Filename,
		ContentType:  fh.Header.Get(echo.HeaderContentType),
	}
	if alt := strings.TrimSpace(c.FormValue("alt_text")); alt != "" {
		up.AltText = &alt
	}

	media, err := h.m.Media.StoreUpload(blog.NewContext(ctx, principal), up, principal.UserID)
	if err != nil {
		return h.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, NewMedia(*media, h.m.Media.FileURL))
}

func (r FeedRequest) filters() (blog.PostFilters, error) {
	f := blog.PostFilters{ListParams: blog.ListParams{Page: 1, Limit: defaultFeedLimit}}

	if r.Page < 0 || r.Page > db.MaxPage {
		return f, fmt.Errorf("page must be between 1 and %d", db.MaxPage)
	} else if r.Page > 0 {
		f.Page = r.Page
	}

	if r.Limit < 0 || r.Limit > maxFeedLimit {
		return f, errors.New("limit must be between 1 and 100")
	} else if r.Limit > 0 {
		f.Limit = r.Limit
	}

	if s := strings.TrimSpace(r.Search); s != "" {
		f.Search = &s
	}
	if r.CategoryID > 0 {
		f.CategoryID = &r.CategoryID
	}
	if r.TagID > 0 {
		f.TagID = &r.TagID
	}
	if r.AuthorID > 0 {
		f.AuthorID = &r.AuthorID
	}
	if r.Featured {
		featured := true
		f.IsFeatured = &featured
	}

	return f, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
