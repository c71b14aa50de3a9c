// Package storage keeps uploaded media files on the local filesystem or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("file not found")

var errBadKey = errors.New("invalid storage key")

// Local stores files under a root directory and serves them from baseURL.
type Local struct {
	root    string
	baseURL string
}

// NewLocal creates the root directory when missing.
func NewLocal(root, baseURL string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root is the directory the files live in.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) Put(ctx context.Context, key, _ string, body io.Reader, _ int64) error {
	name, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: body}); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("move %s into place: %w", key, err)
	}

	return nil
}

func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, error) {
	name, err := l.path(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %w", key, err)
	}

	return f, nil
}

// Delete removes a file. Missing files are not an error.
func (l *Local) Delete(_ context.Context, key string) error {
	name, err := l.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", key, err)
	}

	return nil
}

func (l *Local) URL(key string) string {
	return l.baseURL + "/" + key
}

// path maps a key to a file inside root. Keys escaping root are rejected.
func (l *Local) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if key == "" || clean == "/" || clean[1:] != key {
		return "", fmt.Errorf("%w: %q", errBadKey, key)
	}

	return filepath.Join(l.root, filepath.FromSlash(key)), nil
}

// ctxReader stops copying once the context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
