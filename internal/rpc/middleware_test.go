package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeAuth map[string]*blog.Principal

func (f fakeAuth) Authenticate(_ context.Context, token string) (*blog.Principal, *db.User, error) {
	if token == "broken" {
		return nil, nil, errors.New("db is down")
	}
	return f[token], nil, nil
}

// whoamiService answers every call with the role of the caller.
type whoamiService struct{}

func (whoamiService) SMD() smd.ServiceInfo { return smd.ServiceInfo{} }

func (whoamiService) Invoke(ctx context.Context, method string, _ json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	switch method {
	case "explode":
		resp.Set(nil, errors.New("pq: relation does not exist"))
	default:
		role := "anonymous"
		if p := blog.PrincipalFromContext(ctx); p != nil {
			role = string(p.Role)
		}
		resp.Set(role, nil)
	}

	return resp
}

type rpcReply struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	} `json:"error"`
}

func call(t *testing.T, h http.Handler, token, method string, params any) rpcReply {
	t.Helper()

	body, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "method": method, "params": params})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var reply rpcReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply), rec.Body.String())
	return reply
}

func TestWithAuth(t *testing.T) {
	srv := zenrpc.NewServer(zenrpc.Options{})
	srv.Register(NSUsers, whoamiService{})
	srv.Use(withInternalErrors(discardLogger), withAuth(fakeAuth{
		"author-token": {UserID: 3, Role: blog.RoleAuthor},
		"editor-token": {UserID: 2, Role: blog.RoleEditor},
	}, discardLogger))

	tests := []struct {
		name   string
		token  string
		method string
		code   int
		result string
	}{
		{"PublicAnonymous", "", "users.getUserProfile", 0, `"anonymous"`},
		{"PublicSignedIn", "author-token", "users.getUserProfile", 0, `"author"`},
		{"AuthenticatedAnonymous", "", "users.getUserById", http.StatusUnauthorized, ""},
		{"AuthenticatedAuthor", "author-token", "users.getUserById", 0, `"author"`},
		{"EditorOnlyAnonymous", "", "users.getUsers", http.StatusUnauthorized, ""},
		{"EditorOnlyAuthor", "author-token", "users.getUsers", http.StatusForbidden, ""},
		{"EditorOnlyEditor", "editor-token", "users.getUsers", 0, `"editor"`},
		{"UnknownToken", "stale", "users.getUsers", http.StatusUnauthorized, ""},
		{"AuthBackendDown", "broken", "users.getUserProfile", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := call(t, srv, tt.token, tt.method, map[string]any{})
			if tt.code == 0 {
				require.Nil(t, reply.Error)
				assert.JSONEq(t, tt.result, string(reply.Result))
				return
			}

			require.NotNil(t, reply.Error)
			assert.Equal(t, tt.code, reply.Error.Code)
		})
	}
}

func TestWithInternalErrors(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	srv := zenrpc.NewServer(zenrpc.Options{})
	srv.Register(NSUsers, whoamiService{})
	srv.Use(withInternalErrors(logger))

	reply := call(t, srv, "", "users.explode", nil)
	require.NotNil(t, reply.Error)
	assert.Equal(t, http.StatusInternalServerError, reply.Error.Code)
	assert.Equal(t, internalErrorMessage, reply.Error.Message)
	assert.Contains(t, logs.String(), "relation does not exist")
}

func TestAccessRulesCoverEveryMethod(t *testing.T) {
	services := map[string]zenrpc.Invoker{
		"":           HealthService{},
		NSAuth:       AuthService{},
		NSUsers:      UserService{},
		NSPosts:      PostService{},
		NSCategories: CategoryService{},
		NSTags:       TagService{},
		NSMedia:      MediaService{},
		NSComments:   CommentService{},
		NSSettings:   SettingsService{},
		NSAnalytics:  AnalyticsService{},
	}

	var total int
	for ns, svc := range services {
		for method := range svc.SMD().Methods {
			key := strings.ToLower(ns + "." + method)
			_, ok := accessRules[key]
			assert.True(t, ok, "no access rule for %s", key)
			total++
		}
	}

	assert.Len(t, accessRules, total)
}

func TestBearerToken(t *testing.T) {
	srv := zenrpc.NewServer(zenrpc.Options{})
	srv.Register(NSAuth, tokenEcho{})

	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		body := `{"jsonrpc":"2.0","id":1,"method":"auth.token"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", tt.header)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		var reply rpcReply
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
		assert.JSONEq(t, `"`+tt.want+`"`, string(reply.Result), tt.header)
	}
}

type tokenEcho struct{}

func (tokenEcho) SMD() smd.ServiceInfo { return smd.ServiceInfo{} }

func (tokenEcho) Invoke(ctx context.Context, _ string, _ json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	resp.Set(bearerToken(ctx), nil)
	return resp
}
