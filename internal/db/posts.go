package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusArchived  = "archived"
)

type PostOrder int

const (
	// PostOrderNewest sorts by creation time.
	PostOrderNewest PostOrder = iota
	// PostOrderPublished sorts by publication time, featured posts first within the same instant.
	PostOrderPublished
	// PostOrderRank sorts by full text rank of PostSearch.FullText.
	PostOrderRank
)

type PostSearch struct {
	Statuses   []string
	AuthorID   *int
	CategoryID *int
	TagID      *int
	IsFeatured *bool
	// Search is a case-insensitive substring match on title, excerpt and content.
	Search *string
	// FullText is a web-search style query against the weighted search vector.
	FullText *string
}

// Posts returns one page of posts with author, category and featured image, plus the total count.
func (r *Repository) Posts(ctx context.Context, search PostSearch, order PostOrder, pager Pager) ([]Post, int, error) {
	if err := pager.validate(); err != nil {
		return nil, 0, err
	}

	var posts []Post
	count, err := pager.apply(r.postsQuery(ctx, &posts, search, order)).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, count, nil
}

// TopPosts returns at most limit posts without counting the total.
func (r *Repository) TopPosts(ctx context.Context, search PostSearch, order PostOrder, limit int) ([]Post, error) {
	var posts []Post
	err := r.postsQuery(ctx, &posts, search, order).Limit(limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) postsQuery(ctx context.Context, posts *[]Post, search PostSearch, order PostOrder) *pg.Query {
	query := r.db.ModelContext(ctx, posts).
		Relation("Author").
		Relation("Category").
		Relation("FeaturedImage")

	if len(search.Statuses) > 0 {
		query = query.Where(`"t"."status" IN (?)`, pg.In(search.Statuses))
	}

	if search.AuthorID != nil {
		query = query.Where(`"t"."author_id" = ?`, *search.AuthorID)
	}

	if search.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *search.CategoryID)
	}

	if search.TagID != nil {
		query = query.Where(`EXISTS (SELECT 1 FROM post_tags pt WHERE pt.post_id = "t"."id" AND pt.tag_id = ?)`, *search.TagID)
	}

	if search.IsFeatured != nil {
		query = query.Where(`"t"."is_featured" = ?`, *search.IsFeatured)
	}

	if search.Search != nil && *search.Search != "" {
		like := "%" + *search.Search + "%"
		query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr(`"t"."title" ILIKE ?`, like).
				WhereOr(`"t"."excerpt" ILIKE ?`, like).
				WhereOr(`"t"."content" ILIKE ?`, like), nil
		})
	}

	if search.FullText != nil {
		query = query.Where(`"t"."search_vector" @@ websearch_to_tsquery('english', ?)`, *search.FullText)
	}

	switch {
	case order == PostOrderRank && search.FullText != nil:
		query = query.OrderExpr(`ts_rank("t"."search_vector", websearch_to_tsquery('english', ?)) DESC`, *search.FullText).
			OrderExpr(`"t"."published_at" DESC NULLS LAST, "t"."id" DESC`)
	case order == PostOrderPublished:
		query = query.OrderExpr(`"t"."published_at" DESC NULLS LAST, "t"."is_featured" DESC, "t"."id" DESC`)
	default:
		query = query.OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`)
	}

	return query
}

func (r *Repository) PostByID(ctx context.Context, id int) (*Post, error) {
	return r.onePost(ctx, `"t"."id" = ?`, id)
}

func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	return r.onePost(ctx, `"t"."slug" = ?`, slug)
}

func (r *Repository) onePost(ctx context.Context, condition string, param interface{}) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation("Author").
		Relation("Category").
		Relation("FeaturedImage").
		Where(condition, param).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *Repository) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	_, err := r.db.ModelContext(ctx, post).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

var postEditableColumns = []string{
	"title", "slug", "excerpt", "content", "featured_image_id", "author_id", "category_id",
	"status", "is_featured", "allow_comments", "meta_title", "meta_description",
	"published_at", "scheduled_at", "updated_at",
}

// LockPost locks the post row until the transaction ends and reports whether it exists.
func (r *Repository) LockPost(ctx context.Context, id int) (bool, error) {
	var ids []int
	_, err := r.db.QueryContext(ctx, &ids, `SELECT id FROM posts WHERE id = ? FOR UPDATE`, id)
	if err != nil {
		return false, fmt.Errorf("failed to lock post: %w", err)
	}

	return len(ids) > 0, nil
}

// UpdatePost writes the editable columns. view_count is left to RecordPostView.
func (r *Repository) UpdatePost(ctx context.Context, post *Post) (*Post, error) {
	post.UpdatedAt = time.Now()
	_, err := r.db.ModelContext(ctx, post).
		Column(postEditableColumns...).
		WherePK().
		Returning("*").
		Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeletePost removes the post; tag links, comments and views go with it.
func (r *Repository) DeletePost(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).Where(`"id" = ?`, id).Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CommentCounts counts comments per post. approvedOnly skips unapproved and spam comments.
func (r *Repository) CommentCounts(ctx context.Context, postIDs []int, approvedOnly bool) (map[int]int, error) {
	result := make(map[int]int, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PostID int `pg:"post_id"`
		Count  int `pg:"count"`
	}
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT post_id, COUNT(*) AS count
		FROM comments
		WHERE post_id IN (?) AND (NOT ? OR (is_approved AND NOT is_spam))
		GROUP BY post_id`, pg.In(postIDs), approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	for _, row := range rows {
		result[row.PostID] = row.Count
	}

	return result, nil
}

// PublishScheduledPosts publishes every scheduled post that is due. Rows
// already published by a concurrent run no longer match the condition.
func (r *Repository) PublishScheduledPosts(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts
		SET status = ?, published_at = ?, updated_at = ?
		WHERE status = ? AND scheduled_at IS NOT NULL AND scheduled_at <= ?`,
		StatusPublished, now, now, StatusScheduled, now)
	if err != nil {
		return 0, fmt.Errorf("failed to publish scheduled posts: %w", err)
	}

	return res.RowsAffected(), nil
}

// RecordPostView appends a view and bumps the counter unless the same IP
// viewed the post within window. It reports whether the view was counted.
func (r *Repository) RecordPostView(ctx context.Context, view *PostView, window time.Duration) (bool, error) {
	var recorded bool
	err := r.RunInTx(ctx, func(tx *Repository) error {
		if err := tx.advisoryLock(ctx, "post_views:"+strconv.Itoa(view.PostID), view.IPAddress); err != nil {
			return err
		}

		seen, err := tx.db.ModelContext(ctx, (*PostView)(nil)).
			Where(`"t"."post_id" = ?`, view.PostID).
			Where(`"t"."ip_address" = ?`, view.IPAddress).
			Where(`"t"."viewed_at" > ?`, view.ViewedAt.Add(-window)).
			Exists()
		if err != nil {
			return fmt.Errorf("failed to check recent views: %w", err)
		} else if seen {
			return nil
		}

		if _, err := tx.db.ModelContext(ctx, view).Insert(); err != nil {
			return fmt.Errorf("failed to insert post view: %w", err)
		}

		if _, err := tx.db.ExecContext(ctx, `UPDATE posts SET view_count = view_count + 1 WHERE id = ?`, view.PostID); err != nil {
			return fmt.Errorf("failed to increment view count: %w", err)
		}

		recorded = true
		return nil
	})

	return recorded, err
}
