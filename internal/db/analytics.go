package db

import (
	"context"
	"fmt"
	"time"
)

type ViewTotals struct {
	Views       int `pg:"views"`
	UniqueViews int `pg:"unique_views"`
}

type DailyViews struct {
	Date        time.Time `pg:"date"`
	Views       int       `pg:"views"`
	UniqueViews int       `pg:"unique_views"`
}

type PopularPost struct {
	ID          int        `pg:"id"`
	Title       string     `pg:"title"`
	Slug        string     `pg:"slug"`
	Views       int        `pg:"views"`
	Comments    int        `pg:"comments"`
	PublishedAt *time.Time `pg:"published_at"`
}

type RefererCount struct {
	Referer *string `pg:"referer"`
	Visits  int     `pg:"visits"`
}

type VisitorHit struct {
	IPAddress string    `pg:"ip_address"`
	ViewedAt  time.Time `pg:"viewed_at"`
}

type KeywordCount struct {
	Keyword  string `pg:"keyword"`
	Searches int    `pg:"searches"`
}

type EntityCounts struct {
	TotalPosts      int `pg:"total_posts"`
	PublishedPosts  int `pg:"published_posts"`
	DraftPosts      int `pg:"draft_posts"`
	TotalUsers      int `pg:"total_users"`
	ActiveUsers     int `pg:"active_users"`
	TotalComments   int `pg:"total_comments"`
	PendingComments int `pg:"pending_comments"`
	TotalCategories int `pg:"total_categories"`
	TotalTags       int `pg:"total_tags"`
	TotalMedia      int `pg:"total_media"`
}

type Activity struct {
	Type      string    `pg:"type"`
	Action    string    `pg:"action"`
	Title     string    `pg:"title"`
	Timestamp time.Time `pg:"timestamp"`
}

// PostViewTotals counts views since the given time, for one post or all when postID is nil.
func (r *Repository) PostViewTotals(ctx context.Context, postID *int, since time.Time) (ViewTotals, error) {
	var totals ViewTotals
	_, err := r.db.QueryOneContext(ctx, &totals, `
		SELECT COUNT(*) AS views, COUNT(DISTINCT ip_address) AS unique_views
		FROM post_views
		WHERE viewed_at >= ? AND (?::int IS NULL OR post_id = ?::int)`,
		since, postID, postID)
	if err != nil {
		return totals, fmt.Errorf("failed to count post views: %w", err)
	}

	return totals, nil
}

// DailyPostViews returns one row per UTC day from since to until inclusive, zero days included.
func (r *Repository) DailyPostViews(ctx context.Context, postID *int, since, until time.Time) ([]DailyViews, error) {
	var days []DailyViews
	_, err := r.db.QueryContext(ctx, &days, `
		SELECT d.day AS date,
			COUNT(v.id) AS views,
			COUNT(DISTINCT v.ip_address) AS unique_views
		FROM generate_series(?::date, ?::date, INTERVAL '1 day') AS d(day)
		LEFT JOIN post_views v
			ON (v.viewed_at AT TIME ZONE 'UTC')::date = d.day::date
			AND (?::int IS NULL OR v.post_id = ?::int)
		GROUP BY d.day
		ORDER BY d.day ASC`,
		since.UTC().Format(time.DateOnly), until.UTC().Format(time.DateOnly), postID, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily post views: %w", err)
	}

	return days, nil
}

// CommentsSince counts comments created since the given time, for one post or all.
func (r *Repository) CommentsSince(ctx context.Context, postID *int, since time.Time) (int, error) {
	query := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"t"."created_at" >= ?`, since)
	if postID != nil {
		query = query.Where(`"t"."post_id" = ?`, *postID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

// PopularPosts ranks published posts by views since the given time.
func (r *Repository) PopularPosts(ctx context.Context, limit int, since time.Time) ([]PopularPost, error) {
	var posts []PopularPost
	_, err := r.db.QueryContext(ctx, &posts, `
		SELECT p.id, p.title, p.slug, p.published_at,
			COUNT(v.id) AS views,
			(SELECT COUNT(*) FROM comments c
				WHERE c.post_id = p.id AND c.is_approved AND NOT c.is_spam) AS comments
		FROM posts p
		LEFT JOIN post_views v ON v.post_id = p.id AND v.viewed_at >= ?
		WHERE p.status = ?
		GROUP BY p.id
		ORDER BY views DESC, p.published_at DESC NULLS LAST, p.id DESC
		LIMIT ?`, since, StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) RefererCounts(ctx context.Context, since time.Time) ([]RefererCount, error) {
	var rows []RefererCount
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT referer, COUNT(*) AS visits
		FROM page_views
		WHERE viewed_at >= ?
		GROUP BY referer`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query referers: %w", err)
	}

	return rows, nil
}

// VisitorHits returns page views since the given time ordered by visitor and time.
func (r *Repository) VisitorHits(ctx context.Context, since time.Time) ([]VisitorHit, error) {
	var hits []VisitorHit
	_, err := r.db.QueryContext(ctx, &hits, `
		SELECT ip_address, viewed_at
		FROM page_views
		WHERE viewed_at >= ?
		ORDER BY ip_address ASC, viewed_at ASC`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query visitor hits: %w", err)
	}

	return hits, nil
}

// RecordPageView appends a page view unless the same IP opened the path within window.
func (r *Repository) RecordPageView(ctx context.Context, view *PageView, window time.Duration) (bool, error) {
	var recorded bool
	err := r.RunInTx(ctx, func(tx *Repository) error {
		if err := tx.advisoryLock(ctx, "page_views:"+view.Path, view.IPAddress); err != nil {
			return err
		}

		seen, err := tx.db.ModelContext(ctx, (*PageView)(nil)).
			Where(`"t"."path" = ?`, view.Path).
			Where(`"t"."ip_address" = ?`, view.IPAddress).
			Where(`"t"."viewed_at" > ?`, view.ViewedAt.Add(-window)).
			Exists()
		if err != nil {
			return fmt.Errorf("failed to check recent page views: %w", err)
		} else if seen {
			return nil
		}

		if _, err := tx.db.ModelContext(ctx, view).Insert(); err != nil {
			return fmt.Errorf("failed to insert page view: %w", err)
		}

		recorded = true
		return nil
	})

	return recorded, err
}

func (r *Repository) RecordSearchQuery(ctx context.Context, query *SearchQuery) error {
	if _, err := r.db.ModelContext(ctx, query).Insert(); err != nil {
		return fmt.Errorf("failed to insert search query: %w", err)
	}
	return nil
}

// SearchKeywords returns the most frequent search queries since the given time
// and the total number of searches in that period.
func (r *Repository) SearchKeywords(ctx context.Context, limit int, since time.Time) ([]KeywordCount, int, error) {
	var keywords []KeywordCount
	_, err := r.db.QueryContext(ctx, &keywords, `
		SELECT query AS keyword, COUNT(*) AS searches
		FROM search_queries
		WHERE searched_at >= ?
		GROUP BY query
		ORDER BY searches DESC, keyword ASC
		LIMIT ?`, since, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query search keywords: %w", err)
	}

	total, err := r.db.ModelContext(ctx, (*SearchQuery)(nil)).
		Where(`"t"."searched_at" >= ?`, since).
		Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count searches: %w", err)
	}

	return keywords, total, nil
}

func (r *Repository) EntityCounts(ctx context.Context) (EntityCounts, error) {
	var counts EntityCounts
	_, err := r.db.QueryOneContext(ctx, &counts, `
		SELECT
			(SELECT COUNT(*) FROM posts) AS total_posts,
			(SELECT COUNT(*) FROM posts WHERE status = ?) AS published_posts,
			(SELECT COUNT(*) FROM posts WHERE status = ?) AS draft_posts,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users WHERE is_active) AS active_users,
			(SELECT COUNT(*) FROM comments) AS total_comments,
			(SELECT COUNT(*) FROM comments WHERE NOT is_approved AND NOT is_spam) AS pending_comments,
			(SELECT COUNT(*) FROM categories) AS total_categories,
			(SELECT COUNT(*) FROM tags) AS total_tags,
			(SELECT COUNT(*) FROM media) AS total_media`,
		StatusPublished, StatusDraft)
	if err != nil {
		return counts, fmt.Errorf("failed to count entities: %w", err)
	}

	return counts, nil
}

// RecentActivity merges the latest post, comment and user changes, newest first.
func (r *Repository) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	var activity []Activity
	_, err := r.db.QueryContext(ctx, &activity, `
		(SELECT 'post' AS type,
			CASE WHEN updated_at > created_at + INTERVAL '1 second' THEN 'updated' ELSE 'created' END AS action,
			title, updated_at AS timestamp
		FROM posts ORDER BY updated_at DESC LIMIT ?0)
		UNION ALL
		(SELECT 'comment', 'created', author_name || ': ' || LEFT(content, 60), created_at
		FROM comments ORDER BY created_at DESC LIMIT ?0)
		UNION ALL
		(SELECT 'user',
			CASE WHEN updated_at > created_at + INTERVAL '1 second' THEN 'updated' ELSE 'created' END,
			username, updated_at
		FROM users ORDER BY updated_at DESC LIMIT ?0)
		ORDER BY timestamp DESC
		LIMIT ?0`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}

	return activity, nil
}
