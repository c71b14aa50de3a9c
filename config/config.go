package config

import (
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/go-pg/pg/v10"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type Config struct {
	Database Database
	App      struct {
		Host       string
		Port       int
		CORSOrigin []string
		// SchedulerInterval is how often scheduled posts are published and expired sessions removed.
		SchedulerInterval Duration
	}
	Auth struct {
		SessionTTL    Duration
		ResetTokenTTL Duration
	}
	Analytics struct {
		ViewWindow Duration
		SessionGap Duration
	}
	Storage struct {
		Driver         string
		Dir            string
		BaseURL        string
		MaxUploadSize  string
		ThumbnailWidth int
		S3             struct {
			Endpoint  string
			Region    string
			AccessKey string
			SecretKey string
			Bucket    string
			PublicURL string
		}
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	Sentry struct {
		DSN         string
		Environment string
	}
}

type Database struct {
	pg.Options
	// LogQueries logs every SQL statement at debug level.
	LogQueries bool
}

// Duration is a time.Duration written as "30m" or "168h" in the config file.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// BlogOptions returns the domain options with unset values taken from the defaults.
func (c Config) BlogOptions() blog.Options {
	opts := blog.DefaultOptions()
	if c.Auth.SessionTTL.Duration > 0 {
		opts.SessionTTL = c.Auth.SessionTTL.Duration
	}
	if c.Auth.ResetTokenTTL.Duration > 0 {
		opts.ResetTokenTTL = c.Auth.ResetTokenTTL.Duration
	}
	if c.Analytics.ViewWindow.Duration > 0 {
		opts.ViewWindow = c.Analytics.ViewWindow.Duration
	}
	if c.Analytics.SessionGap.Duration > 0 {
		opts.SessionGap = c.Analytics.SessionGap.Duration
	}
	if c.Storage.ThumbnailWidth > 0 {
		opts.ThumbnailWidth = c.Storage.ThumbnailWidth
	}
	return opts
}

func (c Config) SchedulerInterval() time.Duration {
	if c.App.SchedulerInterval.Duration > 0 {
		return c.App.SchedulerInterval.Duration
	}
	return time.Minute
}
