package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type MediaSearch struct {
	Query     *string
	MediaType *string
}

func (r *Repository) CreateMedia(ctx context.Context, media *Media) (*Media, error) {
	_, err := r.db.ModelContext(ctx, media).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert media: %w", err)
	}

	return media, nil
}

func (r *Repository) UpdateMedia(ctx context.Context, media *Media) (*Media, error) {
	_, err := r.db.ModelContext(ctx, media).WherePK().Returning("*").Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update media: %w", err)
	}

	return media, nil
}

func (r *Repository) MediaByID(ctx context.Context, id int) (*Media, error) {
	media := &Media{}
	err := r.db.ModelContext(ctx, media).Where(`"t"."id" = ?`, id).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get media by id: %w", err)
	}

	return media, nil
}

func (r *Repository) DeleteMedia(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Media)(nil)).Where(`"id" = ?`, id).Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete media: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// MediaLibrary returns one page of media, newest first, with the total count.
func (r *Repository) MediaLibrary(ctx context.Context, search MediaSearch, pager Pager) ([]Media, int, error) {
	if err := pager.validate(); err != nil {
		return nil, 0, err
	}

	var media []Media
	count, err := pager.apply(r.mediaQuery(ctx, &media, search)).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query media library: %w", err)
	}

	return media, count, nil
}

// SearchMedia matches filename, original name and alt text.
func (r *Repository) SearchMedia(ctx context.Context, search MediaSearch, limit int) ([]Media, error) {
	var media []Media
	err := r.mediaQuery(ctx, &media, search).Limit(limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search media: %w", err)
	}

	return media, nil
}

func (r *Repository) mediaQuery(ctx context.Context, media *[]Media, search MediaSearch) *pg.Query {
	query := r.db.ModelContext(ctx, media)

	if search.MediaType != nil {
		query = query.Where(`"t"."media_type" = ?`, *search.MediaType)
	}

	if search.Query != nil && *search.Query != "" {
		like := "%" + *search.Query + "%"
		query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr(`"t"."filename" ILIKE ?`, like).
				WhereOr(`"t"."original_name" ILIKE ?`, like).
				WhereOr(`"t"."alt_text" ILIKE ?`, like), nil
		})
	}

	return query.OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`)
}

// PostsWithFeaturedImage returns posts that use the media as featured image.
func (r *Repository) PostsWithFeaturedImage(ctx context.Context, mediaID int) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Column("id", "title").
		Where(`"t"."featured_image_id" = ?`, mediaID).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts by featured image: %w", err)
	}

	return posts, nil
}

// PostsReferencing returns posts whose content contains any of the needles.
func (r *Repository) PostsReferencing(ctx context.Context, needles []string) ([]Post, error) {
	if len(needles) == 0 {
		return nil, nil
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).Column("id", "title")
	query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
		for _, needle := range needles {
			q = q.WhereOr(`STRPOS("t"."content", ?) > 0`, needle)
		}
		return q, nil
	})

	err := query.OrderExpr(`"t"."id" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts referencing media: %w", err)
	}

	return posts, nil
}

func (r *Repository) ClearFeaturedImage(ctx context.Context, mediaID int) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE posts SET featured_image_id = NULL, updated_at = NOW()
		WHERE featured_image_id = ?`, mediaID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear featured image: %w", err)
	}

	return res.RowsAffected(), nil
}
