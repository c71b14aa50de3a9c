package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

const (
	defaultFeaturedLimit = 5
	defaultRecentLimit   = 10
)

// PostService provides the blog posts.
type PostService struct {
	zenrpc.Service
	posts *blog.PostManager
	url   fileURL
}

func NewPostService(posts *blog.PostManager, url fileURL) *PostService {
	return &PostService{posts: posts, url: url}
}

// GetPosts lists posts of every status for the back office, newest first.
// Authors only see their own posts.
//
//zenrpc:filters page, limit, search, category_id, tag_id, author_id, status and is_featured filters
//zenrpc:return paginated posts with relations
func (s *PostService) GetPosts(ctx context.Context, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, s.posts.Posts)
}

// GetPublishedPosts lists published posts, latest publication first and featured first on ties.
//
//zenrpc:filters page, limit, search, category_id, tag_id, author_id and is_featured filters
//zenrpc:return paginated posts with relations
func (s *PostService) GetPublishedPosts(ctx context.Context, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, s.posts.PublishedPosts)
}

// GetFeaturedPosts returns the latest featured posts.
//
//zenrpc:limit=5 number of posts
func (s *PostService) GetFeaturedPosts(ctx context.Context, limit *int) ([]PostWithRelations, error) {
	n, err := limitOrDefault(limit, defaultFeaturedLimit)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FeaturedPosts(ctx, n)
	if err != nil {
		return nil, newError(err)
	}

	return NewPostsWithRelations(posts, s.url), nil
}

// GetRecentPosts returns the latest published posts.
//
//zenrpc:limit=10 number of posts
func (s *PostService) GetRecentPosts(ctx context.Context, limit *int) ([]PostWithRelations, error) {
	n, err := limitOrDefault(limit, defaultRecentLimit)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.RecentPosts(ctx, n)
	if err != nil {
		return nil, newError(err)
	}

	return NewPostsWithRelations(posts, s.url), nil
}

// GetPostBySlug returns a post with its relations and rendered content.
//
//zenrpc:slug post slug
//zenrpc:404 post not found
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) (*PostWithRelations, error) {
	post, err := s.posts.PostBySlug(ctx, slug)
	return s.details(post, err)
}

// GetPostByID returns a post with its relations and rendered content.
//
//zenrpc:id post id
//zenrpc:404 post not found
func (s *PostService) GetPostByID(ctx context.Context, id int) (*PostWithRelations, error) {
	post, err := s.posts.PostByID(ctx, id)
	return s.details(post, err)
}

// CreatePost writes a post with its tags. The author defaults to the caller.
//
//zenrpc:post new post
//zenrpc:authorId author of the post, the caller when omitted
//zenrpc:400 validation failed
//zenrpc:403 authors may only create their own posts
func (s *PostService) CreatePost(ctx context.Context, post PostInput, authorId *int) (*PostWithRelations, error) {
	if err := checkInput(post); err != nil {
		return nil, err
	}

	author := 0
	if authorId != nil {
		author = *authorId
	} else if p := blog.PrincipalFromContext(ctx); p != nil {
		author = p.UserID
	}

	created, err := s.posts.CreatePost(ctx, post.ToModel(), author)
	return s.details(created, err)
}

// UpdatePost changes the given fields. A new title regenerates the slug and tag_ids replaces the tag set.
//
//zenrpc:post fields to change
//zenrpc:403 post belongs to another author
//zenrpc:404 post not found
func (s *PostService) UpdatePost(ctx context.Context, post PostUpdate) (*PostWithRelations, error) {
	if err := checkInput(post); err != nil {
		return nil, err
	}

	updated, err := s.posts.UpdatePost(ctx, post.ToModel())
	return s.details(updated, err)
}

// DeletePost removes a post with its tag links and comments.
//
//zenrpc:id post id
//zenrpc:404 post not found
func (s *PostService) DeletePost(ctx context.Context, id int) (Success, error) {
	if err := s.posts.DeletePost(ctx, id); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// IncrementViews counts a view of a published post once per visitor within the view window.
//
//zenrpc:slug post slug
//zenrpc:ipAddress visitor address, the caller address when omitted
//zenrpc:userAgent visitor user agent
//zenrpc:404 post not found
func (s *PostService) IncrementViews(ctx context.Context, slug string, ipAddress, userAgent *string) (ViewResult, error) {
	ip := visitorIP(ctx, ipAddress)
	if err := checkVar("ipAddress", ip, "required,ip"); err != nil {
		return ViewResult{}, err
	}
	if userAgent == nil {
		if ua := middleware.UserAgentFromContext(ctx); ua != "" {
			userAgent = &ua
		}
	}

	counted, err := s.posts.IncrementViews(ctx, slug, ip, userAgent)
	return ViewResult{Counted: counted}, newError(err)
}

// SearchPosts runs a ranked full text search over published posts.
//
//zenrpc:query search phrase
//zenrpc:filters optional filters and paging
func (s *PostService) SearchPosts(ctx context.Context, query string, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, func(ctx context.Context, f blog.PostFilters) (blog.Page[blog.Post], error) {
		return s.posts.SearchPosts(ctx, query, f)
	})
}

// GetPostsByCategory lists published posts of a category.
//
//zenrpc:categorySlug category slug
//zenrpc:filters optional filters and paging
//zenrpc:404 category not found
func (s *PostService) GetPostsByCategory(ctx context.Context, categorySlug string, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, func(ctx context.Context, f blog.PostFilters) (blog.Page[blog.Post], error) {
		return s.posts.PostsByCategory(ctx, categorySlug, f)
	})
}

// GetPostsByTag lists published posts with a tag.
//
//zenrpc:tagSlug tag slug
//zenrpc:filters optional filters and paging
//zenrpc:404 tag not found
func (s *PostService) GetPostsByTag(ctx context.Context, tagSlug string, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, func(ctx context.Context, f blog.PostFilters) (blog.Page[blog.Post], error) {
		return s.posts.PostsByTag(ctx, tagSlug, f)
	})
}

// GetPostsByAuthor lists published posts of an author.
//
//zenrpc:authorId author id
//zenrpc:filters optional filters and paging
//zenrpc:404 user not found
func (s *PostService) GetPostsByAuthor(ctx context.Context, authorId int, filters *PostFilters) (*PostsPage, error) {
	return s.page(ctx, filters, func(ctx context.Context, f blog.PostFilters) (blog.Page[blog.Post], error) {
		return s.posts.PostsByAuthor(ctx, authorId, f)
	})
}

// PublishScheduledPosts publishes every scheduled post that is due.
//
//zenrpc:return number of published posts
func (s *PostService) PublishScheduledPosts(ctx context.Context) (Published, error) {
	count, err := s.posts.PublishScheduledPosts(ctx)
	return Published{Published: count}, newError(err)
}

func (s *PostService) page(ctx context.Context, filters *PostFilters, list func(context.Context, blog.PostFilters) (blog.Page[blog.Post], error)) (*PostsPage, error) {
	if filters != nil {
		if err := checkInput(filters); err != nil {
			return nil, err
		}
	}

	page, err := list(ctx, filters.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewPostsPage(page, s.url)
	return &result, nil
}

func (s *PostService) details(post *blog.Post, err error) (*PostWithRelations, error) {
	if err != nil {
		return nil, newError(err)
	}

	result := NewPostWithRelations(*post, s.url)
	return &result, nil
}

// limitOrDefault checks an optional list size.
func limitOrDefault(limit *int, def int) (int, error) {
	if limit == nil {
		return def, nil
	}
	if err := checkVar("limit", *limit, "min=1,max=100"); err != nil {
		return 0, err
	}

	return *limit, nil
}

// visitorIP prefers the explicit address over the one the request came from.
func visitorIP(ctx context.Context, ip *string) string {
	if ip != nil && *ip != "" {
		return *ip
	}
	return middleware.IPFromContext(ctx)
}
