package app

import (
	"testing"

	"github.com/daniilsolovey/blog-cms/config"
	"github.com/daniilsolovey/blog-cms/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	t.Run("Local", func(t *testing.T) {
		var cfg config.Config
		cfg.Storage.Dir = t.TempDir()

		files, dir, err := newStorage(cfg)
		require.NoError(t, err)
		assert.IsType(t, &storage.Local{}, files)
		assert.Equal(t, cfg.Storage.Dir, dir)
		assert.Equal(t, "/uploads/a.png", files.URL("a.png"))
	})

	t.Run("S3", func(t *testing.T) {
		var cfg config.Config
		cfg.Storage.Driver = config.StorageS3
		cfg.Storage.S3.Endpoint = "http://localhost:9000"
		cfg.Storage.S3.Bucket = "media"

		files, dir, err := newStorage(cfg)
		require.NoError(t, err)
		assert.IsType(t, &storage.S3{}, files)
		assert.Empty(t, dir)
	})

	t.Run("Unknown", func(t *testing.T) {
		var cfg config.Config
		cfg.Storage.Driver = "ftp"

		_, _, err := newStorage(cfg)
		assert.Error(t, err)
	})
}
