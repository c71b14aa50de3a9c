package blog

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const searchQueryLen = 200

var postStatuses = []string{db.StatusDraft, db.StatusPublished, db.StatusScheduled, db.StatusArchived}

type PostManager struct {
	*base
	views ViewCache
}

// Posts lists posts of every status for the back office. Authors only see their own posts.
func (m *PostManager) Posts(ctx context.Context, f PostFilters) (Page[Post], error) {
	search := m.search(f)
	if f.Status != nil {
		search.Statuses = []string{*f.Status}
	}

	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) {
		if p == nil {
			return Page[Post]{}, ErrUnauthorized
		}
		search.AuthorID = &p.UserID
	}

	return m.page(ctx, search, db.PostOrderNewest, f.ListParams)
}

// PublishedPosts lists published posts, newest publication first and featured first within a tie.
func (m *PostManager) PublishedPosts(ctx context.Context, f PostFilters) (Page[Post], error) {
	search := m.search(f)
	search.Statuses = []string{db.StatusPublished}

	return m.page(ctx, search, db.PostOrderPublished, f.ListParams)
}

func (m *PostManager) FeaturedPosts(ctx context.Context, limit int) ([]Post, error) {
	featured := true
	return m.top(ctx, db.PostSearch{
		Statuses:   []string{db.StatusPublished},
		IsFeatured: &featured,
	}, limit)
}

func (m *PostManager) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	return m.top(ctx, db.PostSearch{Statuses: []string{db.StatusPublished}}, limit)
}

func (m *PostManager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	}

	return m.details(ctx, post)
}

func (m *PostManager) PostByID(ctx context.Context, id int) (*Post, error) {
	post, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	}

	return m.details(ctx, post)
}

// CreatePost writes a post and its tag links. Authors may only create posts of their own.
func (m *PostManager) CreatePost(ctx context.Context, in PostInput, authorID int) (*Post, error) {
	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) && !p.Owns(authorID) {
		return nil, fmt.Errorf("%w: authors may only create their own posts", ErrForbidden)
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, invalidInput("title must not be blank")
	}
	if in.Status == "" {
		in.Status = db.StatusDraft
	}

	post := &db.Post{
		Title:           strings.TrimSpace(in.Title),
		Content:         in.Content,
		Excerpt:         clearable(in.Excerpt),
		FeaturedImageID: clearableID(in.FeaturedImageID),
		AuthorID:        authorID,
		CategoryID:      clearableID(in.CategoryID),
		IsFeatured:      in.IsFeatured,
		AllowComments:   in.AllowComments,
		MetaTitle:       clearable(in.MetaTitle),
		MetaDescription: clearable(in.MetaDescription),
		ScheduledAt:     in.ScheduledAt,
	}

	if err := m.applyStatus(post, in.Status); err != nil {
		return nil, err
	}
	fillExcerpt(post)

	var created *db.Post
	err := m.db.RunInTx(ctx, func(tx *db.Repository) error {
		author, err := tx.UserByID(ctx, post.AuthorID)
		if err != nil {
			return fmt.Errorf("db get user by id: %w", err)
		} else if author == nil || !author.IsActive {
			return ErrUserNotFound
		}

		if err := m.checkReferences(ctx, tx, post, in.TagIDs, true); err != nil {
			return err
		}

		slug, err := uniqueSlug(ctx, tx, db.Tables.Post.Name, post.Title, "post", postSlugLen, 0)
		if err != nil {
			return err
		}
		post.Slug = slug

		created, err = tx.CreatePost(ctx, post)
		if db.IsUniqueViolation(err) {
			return conflict("post slug %q is already taken", slug)
		} else if db.IsForeignKeyViolation(err) {
			return invalidInput("post references a missing author, category or image")
		} else if err != nil {
			return fmt.Errorf("db create post: %w", err)
		}

		if err := tx.SetPostTags(ctx, created.ID, uniqueIDs(in.TagIDs)); err != nil {
			return fmt.Errorf("db set post tags: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	m.logger.InfoContext(ctx, "post created", "postId", created.ID, "status", created.Status)

	return m.PostByID(ctx, created.ID)
}

// UpdatePost edits a post. A changed title regenerates the slug and a non-nil
// TagIDs replaces the tag set.
func (m *PostManager) UpdatePost(ctx context.Context, in UpdatePostInput) (*Post, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, invalidInput("title must not be blank")
	}

	err := m.db.RunInTx(ctx, func(tx *db.Repository) error {
		if found, err := tx.LockPost(ctx, in.ID); err != nil {
			return fmt.Errorf("db lock post: %w", err)
		} else if !found {
			return ErrPostNotFound
		}

		post, err := tx.PostByID(ctx, in.ID)
		if err != nil {
			return fmt.Errorf("db get post by id: %w", err)
		} else if post == nil {
			return ErrPostNotFound
		}

		if !canEditPost(PrincipalFromContext(ctx), post) {
			return ErrForbidden
		}

		retitled := false
		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			retitled = title != post.Title
			post.Title = title
		}
		if in.Content != nil {
			post.Content = *in.Content
		}
		if in.Excerpt != nil {
			post.Excerpt = clearable(in.Excerpt)
		}
		if in.FeaturedImageID != nil {
			post.FeaturedImageID = clearableID(in.FeaturedImageID)
		}
		if in.CategoryID != nil {
			post.CategoryID = clearableID(in.CategoryID)
		}
		if in.IsFeatured != nil {
			post.IsFeatured = *in.IsFeatured
		}
		if in.AllowComments != nil {
			post.AllowComments = *in.AllowComments
		}
		if in.MetaTitle != nil {
			post.MetaTitle = clearable(in.MetaTitle)
		}
		if in.MetaDescription != nil {
			post.MetaDescription = clearable(in.MetaDescription)
		}
		if in.ScheduledAt != nil {
			post.ScheduledAt = in.ScheduledAt
		}

		status := post.Status
		if in.Status != nil {
			status = *in.Status
		}
		if in.Status != nil || in.ScheduledAt != nil {
			if err := m.applyStatus(post, status); err != nil {
				return err
			}
		}
		fillExcerpt(post)

		if err := m.checkReferences(ctx, tx, post, in.TagIDs, in.FeaturedImageID != nil || in.CategoryID != nil); err != nil {
			return err
		}

		if retitled {
			slug, err := uniqueSlug(ctx, tx, db.Tables.Post.Name, post.Title, "post", postSlugLen, post.ID)
			if err != nil {
				return err
			}
			post.Slug = slug
		}

		// relations are reloaded below and must not shadow the changed ids
		post.Author, post.Category, post.FeaturedImage = nil, nil, nil

		if _, err := tx.UpdatePost(ctx, post); db.IsUniqueViolation(err) {
			return conflict("post slug %q is already taken", post.Slug)
		} else if err != nil {
			return fmt.Errorf("db update post: %w", err)
		}

		if in.TagIDs != nil {
			if err := tx.SetPostTags(ctx, post.ID, uniqueIDs(in.TagIDs)); err != nil {
				return fmt.Errorf("db set post tags: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m.PostByID(ctx, in.ID)
}

// DeletePost removes a post; tag links, comments and views cascade.
func (m *PostManager) DeletePost(ctx context.Context, id int) error {
	post, err := m.db.PostByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get post by id: %w", err)
	} else if post == nil {
		return ErrPostNotFound
	}

	if !canEditPost(PrincipalFromContext(ctx), post) {
		return ErrForbidden
	}

	if _, err := m.db.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}

	m.logger.InfoContext(ctx, "post deleted", "postId", id)

	return nil
}

// IncrementViews counts a view of a published post at most once per IP within the view window.
func (m *PostManager) IncrementViews(ctx context.Context, slug, ip string, userAgent *string) (bool, error) {
	post, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("db get post by slug: %w", err)
	} else if post == nil || post.Status != db.StatusPublished {
		return false, ErrPostNotFound
	}

	key := "view:post:" + strconv.Itoa(post.ID) + ":" + ip
	return m.recordView(ctx, m.views, key, func() (bool, error) {
		recorded, err := m.db.RecordPostView(ctx, &db.PostView{
			PostID:    post.ID,
			IPAddress: ip,
			UserAgent: clearable(userAgent),
			ViewedAt:  m.now(),
		}, m.opts.ViewWindow)
		if err != nil {
			return false, fmt.Errorf("db record post view: %w", err)
		}
		return recorded, nil
	})
}

// SearchPosts runs a ranked full text search over published posts and logs the query.
func (m *PostManager) SearchPosts(ctx context.Context, query string, f PostFilters) (Page[Post], error) {
	query = normalizeQuery(query)
	if query == "" {
		return Page[Post]{Items: []Post{}, Pagination: NewPagination(f.ListParams, 0)}, nil
	}

	search := m.search(f)
	search.Search = nil
	search.FullText = &query
	search.Statuses = m.listStatuses(ctx, f)

	result, err := m.page(ctx, search, db.PostOrderRank, f.ListParams)
	if err != nil {
		return Page[Post]{}, err
	}

	if f.Page == 1 {
		err := m.db.RecordSearchQuery(ctx, &db.SearchQuery{
			Query:        query,
			ResultsCount: result.Pagination.Total,
			SearchedAt:   m.now(),
		})
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to record search query", "error", err)
		}
	}

	return result, nil
}

func (m *PostManager) PostsByCategory(ctx context.Context, categorySlug string, f PostFilters) (Page[Post], error) {
	category, err := m.db.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get category by slug: %w", err)
	} else if category == nil {
		return Page[Post]{}, ErrCategoryNotFound
	}

	f.CategoryID = &category.ID
	return m.listing(ctx, f)
}

func (m *PostManager) PostsByTag(ctx context.Context, tagSlug string, f PostFilters) (Page[Post], error) {
	tag, err := m.db.TagBySlug(ctx, tagSlug)
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get tag by slug: %w", err)
	} else if tag == nil {
		return Page[Post]{}, ErrTagNotFound
	}

	f.TagID = &tag.ID
	return m.listing(ctx, f)
}

func (m *PostManager) PostsByAuthor(ctx context.Context, authorID int, f PostFilters) (Page[Post], error) {
	author, err := m.db.UserByID(ctx, authorID)
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get user by id: %w", err)
	} else if author == nil {
		return Page[Post]{}, ErrUserNotFound
	}

	f.AuthorID = &author.ID
	return m.listing(ctx, f)
}

// PublishScheduledPosts publishes every scheduled post that is due. Running it again is a no-op.
func (m *PostManager) PublishScheduledPosts(ctx context.Context) (int, error) {
	count, err := m.db.PublishScheduledPosts(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("db publish scheduled posts: %w", err)
	}

	if count > 0 {
		m.logger.InfoContext(ctx, "scheduled posts published", "count", count)
	}

	return count, nil
}

// listing serves the public per-category, per-tag and per-author lists.
func (m *PostManager) listing(ctx context.Context, f PostFilters) (Page[Post], error) {
	search := m.search(f)
	search.Statuses = m.listStatuses(ctx, f)

	return m.page(ctx, search, db.PostOrderPublished, f.ListParams)
}

// listStatuses honours the status filter for editors only; everyone else sees published posts.
func (m *PostManager) listStatuses(ctx context.Context, f PostFilters) []string {
	if f.Status != nil && PrincipalFromContext(ctx).Can(RoleEditor) {
		return []string{*f.Status}
	}
	return []string{db.StatusPublished}
}

func (m *PostManager) search(f PostFilters) db.PostSearch {
	return db.PostSearch{
		AuthorID:   f.AuthorID,
		CategoryID: f.CategoryID,
		TagID:      f.TagID,
		IsFeatured: f.IsFeatured,
		Search:     f.Search,
	}
}

func (m *PostManager) page(ctx context.Context, search db.PostSearch, order db.PostOrder, params ListParams) (Page[Post], error) {
	list, total, err := m.db.Posts(ctx, search, order, params.pager())
	if err != nil {
		return Page[Post]{}, fmt.Errorf("db get posts: %w", err)
	}

	posts, err := m.enrich(ctx, list)
	if err != nil {
		return Page[Post]{}, err
	}

	return Page[Post]{Items: posts, Pagination: NewPagination(params, total)}, nil
}

func (m *PostManager) top(ctx context.Context, search db.PostSearch, limit int) ([]Post, error) {
	list, err := m.db.TopPosts(ctx, search, db.PostOrderPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return m.enrich(ctx, list)
}

// details returns a single visible post with rendered content.
func (m *PostManager) details(ctx context.Context, post *db.Post) (*Post, error) {
	if post == nil || !canViewPost(PrincipalFromContext(ctx), post) {
		return nil, ErrPostNotFound
	}

	posts, err := m.enrich(ctx, []db.Post{*post})
	if err != nil {
		return nil, err
	}

	result := posts[0]
	result.ContentHTML = RenderMarkdown(result.Content)
	return &result, nil
}

// enrich attaches tags and approved comment counts.
func (m *PostManager) enrich(ctx context.Context, list []db.Post) ([]Post, error) {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}

	tags, err := m.db.TagsByPostIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get post tags: %w", err)
	}

	counts, err := m.db.CommentCounts(ctx, ids, true)
	if err != nil {
		return nil, fmt.Errorf("db count comments: %w", err)
	}

	posts := make([]Post, len(list))
	for i := range list {
		posts[i] = Post{
			Post:          list[i],
			Tags:          tags[list[i].ID],
			CommentsCount: counts[list[i].ID],
		}
		if posts[i].Tags == nil {
			posts[i].Tags = []db.Tag{}
		}
	}

	return posts, nil
}

// applyStatus moves the post to status and keeps published_at and scheduled_at consistent with it.
func (m *PostManager) applyStatus(post *db.Post, status string) error {
	if !slices.Contains(postStatuses, status) {
		return invalidInput("unknown status %q", status)
	}

	now := m.now()
	switch status {
	case db.StatusPublished:
		if post.PublishedAt == nil {
			post.PublishedAt = &now
		}
		post.ScheduledAt = nil
	case db.StatusScheduled:
		if post.ScheduledAt == nil || !post.ScheduledAt.After(now) {
			return invalidInput("scheduled posts need a scheduled_at in the future")
		}
		post.PublishedAt = nil
	case db.StatusDraft:
		post.PublishedAt = nil
		post.ScheduledAt = nil
	case db.StatusArchived:
		post.ScheduledAt = nil
	}

	post.Status = status
	return nil
}

// checkReferences verifies that the category, featured image and tags exist.
func (m *PostManager) checkReferences(ctx context.Context, tx *db.Repository, post *db.Post, tagIDs []int, checkRelations bool) error {
	if checkRelations && post.CategoryID != nil {
		category, err := tx.CategoryByID(ctx, *post.CategoryID)
		if err != nil {
			return fmt.Errorf("db get category by id: %w", err)
		} else if category == nil {
			return invalidInput("category %d does not exist", *post.CategoryID)
		}
	}

	if checkRelations && post.FeaturedImageID != nil {
		media, err := tx.MediaByID(ctx, *post.FeaturedImageID)
		if err != nil {
			return fmt.Errorf("db get media by id: %w", err)
		} else if media == nil {
			return invalidInput("media %d does not exist", *post.FeaturedImageID)
		}
	}

	ids := uniqueIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	tags, err := tx.TagsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("db get tags by ids: %w", err)
	} else if len(tags) != len(ids) {
		return invalidInput("some of the tags %v do not exist", ids)
	}

	return nil
}

func canViewPost(p *Principal, post *db.Post) bool {
	return post.Status == db.StatusPublished || p.Can(RoleEditor) || p.Owns(post.AuthorID)
}

func canEditPost(p *Principal, post *db.Post) bool {
	return p.Can(RoleEditor) || (p.Can(RoleAuthor) && p.Owns(post.AuthorID))
}

func fillExcerpt(post *db.Post) {
	if post.Excerpt == nil {
		excerpt := DeriveExcerpt(post.Content)
		if excerpt != "" {
			post.Excerpt = &excerpt
		}
	}
}

func uniqueIDs(ids []int) []int {
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}

// normalizeQuery lowercases q, collapses whitespace and cuts it to the
// length of the search log column.
func normalizeQuery(q string) string {
	q = strings.ToLower(strings.Join(strings.Fields(q), " "))
	if runes := []rune(q); len(runes) > searchQueryLen {
		q = strings.TrimSpace(string(runes[:searchQueryLen]))
	}
	return q
}
