package blog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

type Options struct {
	SessionTTL     time.Duration
	ResetTokenTTL  time.Duration
	ViewWindow     time.Duration
	SessionGap     time.Duration
	ThumbnailWidth int
}

func DefaultOptions() Options {
	return Options{
		SessionTTL:     7 * 24 * time.Hour,
		ResetTokenTTL:  time.Hour,
		ViewWindow:     30 * time.Minute,
		SessionGap:     30 * time.Minute,
		ThumbnailWidth: 320,
	}
}

// Storage keeps uploaded media files.
type Storage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// ViewCache remembers recently seen visitors.
type ViewCache interface {
	// Seen marks key for window and reports whether it was already marked.
	Seen(ctx context.Context, key string, window time.Duration) (bool, error)
	// Forget drops the mark so the next visit is counted again.
	Forget(ctx context.Context, key string) error
}

type Deps struct {
	Storage  Storage
	Views    ViewCache
	Notifier Notifier
}

// Managers groups the domain managers of every entity family.
type Managers struct {
	Auth       *AuthManager
	Users      *UserManager
	Posts      *PostManager
	Categories *CategoryManager
	Tags       *TagManager
	Media      *MediaManager
	Comments   *CommentManager
	Settings   *SettingsManager
	Analytics  *AnalyticsManager
}

func New(repo *db.Repository, logger *slog.Logger, opts Options, deps Deps) *Managers {
	if deps.Notifier == nil {
		deps.Notifier = NewLogNotifier(logger)
	}

	b := &base{
		db:     repo,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}

	return &Managers{
		Auth:       &AuthManager{base: b, notifier: deps.Notifier},
		Users:      &UserManager{base: b, notifier: deps.Notifier},
		Posts:      &PostManager{base: b, views: deps.Views},
		Categories: &CategoryManager{base: b},
		Tags:       &TagManager{base: b},
		Media:      &MediaManager{base: b, storage: deps.Storage},
		Comments:   &CommentManager{base: b, notifier: deps.Notifier},
		Settings:   &SettingsManager{base: b},
		Analytics:  &AnalyticsManager{base: b, views: deps.Views},
	}
}

type base struct {
	db     *db.Repository
	logger *slog.Logger
	opts   Options
	now    func() time.Time
}

// seenRecently consults the optional view cache; cache failures fall through to the database.
func (b *base) seenRecently(ctx context.Context, cache ViewCache, key string) bool {
	if cache == nil {
		return false
	}

	seen, err := cache.Seen(ctx, key, b.opts.ViewWindow)
	if err != nil {
		b.logger.WarnContext(ctx, "view cache unavailable", "error", err)
		return false
	}

	return seen
}

// recordView runs record unless the cache already saw key. A failed record
// releases the cache mark so the visit is not lost for the whole window.
func (b *base) recordView(ctx context.Context, cache ViewCache, key string, record func() (bool, error)) (bool, error) {
	if b.seenRecently(ctx, cache, key) {
		return false, nil
	}

	recorded, err := record()
	if err != nil && cache != nil {
		if ferr := cache.Forget(ctx, key); ferr != nil {
			b.logger.WarnContext(ctx, "failed to release view mark", "key", key, "error", ferr)
		}
	}

	return recorded, err
}
