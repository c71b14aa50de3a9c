package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/daniilsolovey/blog-cms/docs"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineRoutes builds the server without a database; only requests rejected before any query are sent.
func offlineRoutes(ping func(context.Context) error) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := blog.New(nil, logger, blog.DefaultOptions(), blog.Deps{})

	return NewHandler(m, logger, ping).RegisterRoutes(http.NotFoundHandler(), RouteOptions{})
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Run("Ok", func(t *testing.T) {
		e := offlineRoutes(func(context.Context) error { return nil })
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp Health
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "ok", resp.Database)
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		e := offlineRoutes(func(context.Context) error { return errors.New("connection refused") })
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"database":"unavailable"`)
	})
}

func TestFeedRejectsBadQuery(t *testing.T) {
	e := offlineRoutes(nil)

	for _, query := range []string{"limit=500", "limit=-1", "page=-2", "page=abc", "page=100001"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/v1/feed?"+query, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestFeedFilters(t *testing.T) {
	f, err := FeedRequest{}.filters()
	require.NoError(t, err)
	assert.Equal(t, blog.ListParams{Page: 1, Limit: defaultFeedLimit}, f.ListParams)
	assert.Nil(t, f.Search)
	assert.Nil(t, f.IsFeatured)

	f, err = FeedRequest{Page: 2, Limit: 5, Search: "  go ", TagID: 3, Featured: true}.filters()
	require.NoError(t, err)
	assert.Equal(t, blog.ListParams{Page: 2, Limit: 5}, f.ListParams)
	require.NotNil(t, f.Search)
	assert.Equal(t, "go", *f.Search)
	require.NotNil(t, f.TagID)
	assert.Equal(t, 3, *f.TagID)
	assert.Nil(t, f.CategoryID)
	require.NotNil(t, f.IsFeatured)
	assert.True(t, *f.IsFeatured)
}

func TestUploadRequiresSession(t *testing.T) {
	e := offlineRoutes(nil)
	rec := serve(e, httptest.NewRequest(http.MethodPost, "/v1/media", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSwaggerDoc(t *testing.T) {
	e := offlineRoutes(nil)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/feed")
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, bearerToken(req))

	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", bearerToken(req))

	req.Header.Set("Authorization", "Token abc")
	assert.Empty(t, bearerToken(req))
}
