package rpc

import (
	"net/http"
	"os"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

// testServer runs without a database; only calls that never reach the repository are made against it.
var testServer *zenrpc.Server

func TestMain(m *testing.M) {
	managers := blog.New(nil, discardLogger, blog.DefaultOptions(), blog.Deps{})
	testServer = New(discardLogger, managers)

	os.Exit(m.Run())
}

func TestServerHealthcheck(t *testing.T) {
	reply := call(t, testServer, "", "healthcheck", nil)
	require.Nil(t, reply.Error)
	assert.Contains(t, string(reply.Result), `"status":"ok"`)
}

func TestServerValidateGoogleAnalytics(t *testing.T) {
	reply := call(t, testServer, "", "settings.validateGoogleAnalytics", map[string]any{"gaId": "G-ABC123XYZ"})
	require.Nil(t, reply.Error)
	assert.JSONEq(t, `{"valid":true}`, string(reply.Result))

	reply = call(t, testServer, "", "settings.validateGoogleAnalytics", []any{"GA-1"})
	require.Nil(t, reply.Error)
	assert.JSONEq(t, `{"valid":false}`, string(reply.Result))
}

func TestServerRequiresSession(t *testing.T) {
	for _, method := range []string{"posts.createPost", "users.getUsers", "settings.updateSiteSettings", "analytics.getDashboardStats"} {
		reply := call(t, testServer, "", method, map[string]any{})
		require.NotNil(t, reply.Error, method)
		assert.Equal(t, http.StatusUnauthorized, reply.Error.Code, method)
	}
}

func TestServerValidation(t *testing.T) {
	reply := call(t, testServer, "", "comments.createComment", map[string]any{
		"comment": map[string]any{"post_id": 1, "author_name": "Ann", "author_email": "nope", "content": "hi"},
	})

	require.NotNil(t, reply.Error)
	assert.Equal(t, http.StatusBadRequest, reply.Error.Code)
	assert.JSONEq(t, `[{"field":"author_email","rule":"email"}]`, string(reply.Error.Data))
}

func TestServerPageOutOfRange(t *testing.T) {
	reply := call(t, testServer, "", "posts.getPublishedPosts", map[string]any{
		"filters": map[string]any{"page": 1 << 40},
	})

	require.NotNil(t, reply.Error)
	assert.Equal(t, http.StatusBadRequest, reply.Error.Code)
	assert.Contains(t, string(reply.Error.Data), `"field":"page"`)
	assert.Contains(t, string(reply.Error.Data), `"rule":"max"`)
}

func TestServerUnknownMethod(t *testing.T) {
	reply := call(t, testServer, "", "posts.publishEverything", map[string]any{})
	require.NotNil(t, reply.Error)
	assert.Equal(t, zenrpc.MethodNotFound, reply.Error.Code)
}
