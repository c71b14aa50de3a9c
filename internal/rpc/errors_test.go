package rpc

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

func TestNewError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"InvalidInput", fmt.Errorf("%w: bad slug", blog.ErrInvalidInput), http.StatusBadRequest},
		{"InvalidCredentials", blog.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Unauthorized", blog.ErrUnauthorized, http.StatusUnauthorized},
		{"Forbidden", fmt.Errorf("edit post: %w", blog.ErrForbidden), http.StatusForbidden},
		{"NotFound", fmt.Errorf("post 7: %w", blog.ErrNotFound), http.StatusNotFound},
		{"Conflict", blog.ErrConflict, http.StatusConflict},
		{"ExpiredToken", blog.ErrExpiredToken, http.StatusGone},
		{"Unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rpcErr *zenrpc.Error
			require.ErrorAs(t, newError(tt.err), &rpcErr)
			assert.Equal(t, tt.code, rpcErr.Code)
			assert.Equal(t, tt.err.Error(), rpcErr.Message)
		})
	}

	assert.NoError(t, newError(nil))

	passed := &zenrpc.Error{Code: http.StatusBadRequest, Message: "validation failed"}
	assert.Same(t, passed, newError(passed))
}

func TestCheckInput(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		in := CommentInput{PostID: 1, AuthorName: "Ann", AuthorEmail: "ann@example.com", Content: "Nice post"}
		assert.NoError(t, checkInput(in))
	})

	t.Run("FieldErrors", func(t *testing.T) {
		url := "not a url"
		in := CommentInput{PostID: 1, AuthorName: "Ann", AuthorEmail: "ann", AuthorURL: &url}

		var rpcErr *zenrpc.Error
		require.ErrorAs(t, checkInput(in), &rpcErr)
		assert.Equal(t, http.StatusBadRequest, rpcErr.Code)
		assert.Equal(t, "validation failed", rpcErr.Message)

		fields, ok := rpcErr.Data.([]FieldError)
		require.True(t, ok)
		assert.ElementsMatch(t, []FieldError{
			{Field: "author_email", Rule: "email"},
			{Field: "author_url", Rule: "url"},
			{Field: "content", Rule: "required"},
		}, fields)
	})

	t.Run("Required", func(t *testing.T) {
		in := TagInput{Name: ""}
		var rpcErr *zenrpc.Error
		require.ErrorAs(t, checkInput(in), &rpcErr)
		fields := rpcErr.Data.([]FieldError)
		require.Len(t, fields, 1)
		assert.Equal(t, "name", fields[0].Field)
	})
}

func TestCheckVar(t *testing.T) {
	assert.NoError(t, checkVar("ipAddress", "10.0.0.1", "required,ip"))

	var rpcErr *zenrpc.Error
	require.ErrorAs(t, checkVar("limit", 500, "min=1,max=100"), &rpcErr)
	assert.Equal(t, []FieldError{{Field: "limit", Rule: "max", Param: "100"}}, rpcErr.Data)
}

func TestLimitOrDefault(t *testing.T) {
	n, err := limitOrDefault(nil, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	limit := 42
	n, err = limitOrDefault(&limit, 5)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	limit = 0
	_, err = limitOrDefault(&limit, 5)
	assert.Error(t, err)
}
