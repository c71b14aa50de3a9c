package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const StatusPublished = "published"

type CategoryCount struct {
	Category
	PostCount int `pg:"post_count"`
}

type TagCount struct {
	Tag
	PostCount int `pg:"post_count"`
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC, "t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	return r.oneCategory(ctx, `"t"."id" = ?`, id)
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return r.oneCategory(ctx, `"t"."slug" = ?`, slug)
}

func (r *Repository) oneCategory(ctx context.Context, condition string, param interface{}) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).Where(condition, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	_, err := r.db.ModelContext(ctx, category).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return category, nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) (*Category, error) {
	category.UpdatedAt = time.Now()
	_, err := r.db.ModelContext(ctx, category).WherePK().Returning("*").Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).Where(`"id" = ?`, id).Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CategoriesWithCounts returns every category with the number of its published posts.
func (r *Repository) CategoriesWithCounts(ctx context.Context) ([]CategoryCount, error) {
	var categories []CategoryCount
	_, err := r.db.QueryContext(ctx, &categories, `
		SELECT c.*, COUNT(p.id) AS post_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id AND p.status = ?
		GROUP BY c.id
		ORDER BY c.name ASC, c.id ASC`, StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories with counts: %w", err)
	}

	return categories, nil
}

// CategoryPostsCount counts posts of any status that reference the category.
func (r *Repository) CategoryPostsCount(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."category_id" = ?`, categoryID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count category posts: %w", err)
	}

	return count, nil
}

func (r *Repository) ReassignCategoryPosts(ctx context.Context, fromID, toID int) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET category_id = ?, updated_at = NOW()
		WHERE category_id = ?`, toID, fromID)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign category posts: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC, "t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	return r.oneTag(ctx, `"t"."id" = ?`, id)
}

func (r *Repository) TagBySlug(ctx context.Context, slug string) (*Tag, error) {
	return r.oneTag(ctx, `"t"."slug" = ?`, slug)
}

func (r *Repository) oneTag(ctx context.Context, condition string, param interface{}) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).Where(condition, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return tag, nil
}

func (r *Repository) TagsByIDs(ctx context.Context, ids []int) ([]Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."id" IN (?)`, pg.In(ids)).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by ids: %w", err)
	}

	return tags, nil
}

// SearchTags matches name or slug case-insensitively.
func (r *Repository) SearchTags(ctx context.Context, query string, limit int) ([]Tag, error) {
	var tags []Tag
	like := "%" + query + "%"
	err := r.db.ModelContext(ctx, &tags).
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr(`"t"."name" ILIKE ?`, like).
				WhereOr(`"t"."slug" ILIKE ?`, like), nil
		}).
		OrderExpr(`"t"."name" ASC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) CreateTag(ctx context.Context, tag *Tag) (*Tag, error) {
	_, err := r.db.ModelContext(ctx, tag).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert tag: %w", err)
	}

	return tag, nil
}

func (r *Repository) UpdateTag(ctx context.Context, tag *Tag) (*Tag, error) {
	tag.UpdatedAt = time.Now()
	_, err := r.db.ModelContext(ctx, tag).WherePK().Returning("*").Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update tag: %w", err)
	}

	return tag, nil
}

func (r *Repository) DeleteTag(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Tag)(nil)).Where(`"id" = ?`, id).Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete tag: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// TagsWithCounts returns tags with their published post counts. byUsage orders
// the most used first; limit 0 means no limit.
func (r *Repository) TagsWithCounts(ctx context.Context, byUsage bool, limit int) ([]TagCount, error) {
	order := `t.name ASC, t.id ASC`
	if byUsage {
		order = `post_count DESC, t.name ASC`
	}

	var tags []TagCount
	_, err := r.db.QueryContext(ctx, &tags, `
		SELECT t.*, COUNT(p.id) AS post_count
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.id
		LEFT JOIN posts p ON p.id = pt.post_id AND p.status = ?
		GROUP BY t.id
		ORDER BY ?
		LIMIT ?`, StatusPublished, pg.Safe(order), limitOrAll(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query tags with counts: %w", err)
	}

	return tags, nil
}

// TagsByPostIDs loads the tags of many posts in one query.
func (r *Repository) TagsByPostIDs(ctx context.Context, postIDs []int) (map[int][]Tag, error) {
	result := make(map[int][]Tag, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		Tag
		PostID int `pg:"post_id"`
	}
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT t.*, pt.post_id
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id IN (?)
		ORDER BY t.name ASC`, pg.In(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query tags by post ids: %w", err)
	}

	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], row.Tag)
	}

	return result, nil
}

// SetPostTags replaces the tag set of a post.
func (r *Repository) SetPostTags(ctx context.Context, postID int, tagIDs []int) error {
	_, err := r.db.ModelContext(ctx, (*PostTag)(nil)).Where(`"post_id" = ?`, postID).Delete()
	if err != nil {
		return fmt.Errorf("failed to clear post tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	links := make([]PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		links = append(links, PostTag{PostID: postID, TagID: tagID})
	}

	if _, err := r.db.ModelContext(ctx, &links).OnConflict("DO NOTHING").Insert(); err != nil {
		return fmt.Errorf("failed to insert post tags: %w", err)
	}

	return nil
}

func limitOrAll(limit int) interface{} {
	if limit <= 0 {
		return pg.Safe("ALL")
	}
	return limit
}
