package config

import (
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[Database]
Addr = "db:5432"
User = "blog"
Database = "blog"
LogQueries = true

[App]
Port = 8080
CORSOrigin = ["https://example.com"]
SchedulerInterval = "30s"

[Auth]
SessionTTL = "24h"

[Storage]
Driver = "s3"

[Storage.S3]
Bucket = "media"
`

func TestDecode(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(sample, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "db:5432", cfg.Database.Addr)
	assert.Equal(t, "blog", cfg.Database.User)
	assert.True(t, cfg.Database.LogQueries)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.App.CORSOrigin)
	assert.Equal(t, StorageS3, cfg.Storage.Driver)
	assert.Equal(t, "media", cfg.Storage.S3.Bucket)
	assert.Equal(t, 30*time.Second, cfg.SchedulerInterval())

	opts := cfg.BlogOptions()
	assert.Equal(t, 24*time.Hour, opts.SessionTTL)
	assert.Equal(t, blog.DefaultOptions().ResetTokenTTL, opts.ResetTokenTTL)
	assert.Equal(t, blog.DefaultOptions().ViewWindow, opts.ViewWindow)
}

func TestDecodeBadDuration(t *testing.T) {
	var cfg Config
	_, err := toml.Decode("[Auth]\nSessionTTL = \"week\"\n", &cfg)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, blog.DefaultOptions(), cfg.BlogOptions())
	assert.Equal(t, time.Minute, cfg.SchedulerInterval())
}
