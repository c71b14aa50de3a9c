package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ blog.Storage = (*Local)(nil)
	_ blog.Storage = (*S3)(nil)
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestLocal(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	l, err := NewLocal(root, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	require.NoError(t, l.Put(ctx, "thumbnails/cover.webp", "image/webp", strings.NewReader("webp"), 4))
	_, err = os.Stat(filepath.Join(root, "thumbnails", "cover.webp"))
	require.NoError(t, err)

	rc, err := l.Get(ctx, "thumbnails/cover.webp")
	require.NoError(t, err)
	assert.Equal(t, "webp", readAll(t, rc))
	assert.Equal(t, "http://localhost:8080/uploads/thumbnails/cover.webp", l.URL("thumbnails/cover.webp"))

	require.NoError(t, l.Delete(ctx, "thumbnails/cover.webp"))
	require.NoError(t, l.Delete(ctx, "thumbnails/cover.webp"))

	_, err = l.Get(ctx, "thumbnails/cover.webp")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalRejectsEscapingKeys(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	for _, key := range []string{"", "../secret", "a/../../b", "/etc/passwd", "a//b"} {
		err := l.Put(context.Background(), key, "text/plain", strings.NewReader("x"), 1)
		assert.ErrorIs(t, err, errBadKey, key)
	}
}

func TestLocalCancelledPut(t *testing.T) {
	l, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, l.Put(ctx, "a.txt", "text/plain", strings.NewReader("x"), 1))
	_, err = l.Get(context.Background(), "a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

// fakeS3 serves path-style object requests from memory.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = string(data)
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		data, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`)
			return
		}
		_, _ = io.WriteString(w, data)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string]string{}, types: map[string]string{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	s, err := NewS3(S3Config{Endpoint: srv.URL + "/", AccessKey: "key", SecretKey: "secret", Bucket: "media"})
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "photo.png", "image/png", strings.NewReader("png"), 3))
	assert.Equal(t, "png", fake.objects["/media/photo.png"])
	assert.Equal(t, "image/png", fake.types["/media/photo.png"])

	rc, err := s.Get(ctx, "photo.png")
	require.NoError(t, err)
	assert.Equal(t, "png", readAll(t, rc))

	require.NoError(t, s.Delete(ctx, "photo.png"))
	_, err = s.Get(ctx, "photo.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3URL(t *testing.T) {
	s, err := NewS3(S3Config{Endpoint: "https://s3.example.com/", Bucket: "media"})
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/media/a.png", s.URL("a.png"))

	s, err = NewS3(S3Config{Endpoint: "https://s3.example.com", Bucket: "media", PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", s.URL("a.png"))

	_, err = NewS3(S3Config{Bucket: "media"})
	assert.Error(t, err)
}
