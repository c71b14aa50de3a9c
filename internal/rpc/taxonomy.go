package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

const defaultPopularTagsLimit = 20

// CategoryService manages post categories.
type CategoryService struct {
	zenrpc.Service
	categories *blog.CategoryManager
}

func NewCategoryService(categories *blog.CategoryManager) *CategoryService {
	return &CategoryService{categories: categories}
}

// GetCategories returns all categories ordered by name.
func (s *CategoryService) GetCategories(ctx context.Context) ([]Category, error) {
	list, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewCategories(list), nil
}

// GetCategoriesWithCounts returns all categories with the number of published posts in each.
func (s *CategoryService) GetCategoriesWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	list, err := s.categories.CategoriesWithCounts(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, NewCategoryWithCount), nil
}

// GetCategoryBySlug returns a category.
//
//zenrpc:slug category slug
//zenrpc:404 category not found
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return categoryResult(s.categories.CategoryBySlug(ctx, slug))
}

// GetCategoryByID returns a category.
//
//zenrpc:id category id
//zenrpc:404 category not found
func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	return categoryResult(s.categories.CategoryByID(ctx, id))
}

// CreateCategory adds a category; its slug is derived from the name.
//
//zenrpc:category new category
//zenrpc:400 validation failed
func (s *CategoryService) CreateCategory(ctx context.Context, category CategoryInput) (*Category, error) {
	if err := checkInput(category); err != nil {
		return nil, err
	}

	return categoryResult(s.categories.CreateCategory(ctx, category.ToModel()))
}

// UpdateCategory changes the given fields; a new name regenerates the slug.
//
//zenrpc:category fields to change
//zenrpc:404 category not found
func (s *CategoryService) UpdateCategory(ctx context.Context, category CategoryUpdate) (*Category, error) {
	if err := checkInput(category); err != nil {
		return nil, err
	}

	return categoryResult(s.categories.UpdateCategory(ctx, category.ToModel()))
}

// DeleteCategory removes a category. Posts still in it block the deletion unless reassignTo is given.
//
//zenrpc:id category id
//zenrpc:reassignTo category that takes over the posts
//zenrpc:404 category not found
//zenrpc:409 category is used by posts
func (s *CategoryService) DeleteCategory(ctx context.Context, id int, reassignTo *int) (Success, error) {
	if err := s.categories.DeleteCategory(ctx, id, reassignTo); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

func categoryResult(c *db.Category, err error) (*Category, error) {
	if err != nil {
		return nil, newError(err)
	}

	result := NewCategory(*c)
	return &result, nil
}

// TagService manages post tags.
type TagService struct {
	zenrpc.Service
	tags *blog.TagManager
}

func NewTagService(tags *blog.TagManager) *TagService {
	return &TagService{tags: tags}
}

// GetTags returns all tags ordered by name.
func (s *TagService) GetTags(ctx context.Context) ([]Tag, error) {
	list, err := s.tags.Tags(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewTags(list), nil
}

// GetTagsWithCounts returns all tags with the number of published posts using each.
func (s *TagService) GetTagsWithCounts(ctx context.Context) ([]TagWithCount, error) {
	list, err := s.tags.TagsWithCounts(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, NewTagWithCount), nil
}

// GetPopularTags returns the most used tags.
//
//zenrpc:limit=20 number of tags
func (s *TagService) GetPopularTags(ctx context.Context, limit *int) ([]TagWithCount, error) {
	n, err := limitOrDefault(limit, defaultPopularTagsLimit)
	if err != nil {
		return nil, err
	}

	list, err := s.tags.PopularTags(ctx, n)
	if err != nil {
		return nil, newError(err)
	}

	return newList(list, NewTagWithCount), nil
}

// GetTagBySlug returns a tag.
//
//zenrpc:slug tag slug
//zenrpc:404 tag not found
func (s *TagService) GetTagBySlug(ctx context.Context, slug string) (*Tag, error) {
	return tagResult(s.tags.TagBySlug(ctx, slug))
}

// GetTagByID returns a tag.
//
//zenrpc:id tag id
//zenrpc:404 tag not found
func (s *TagService) GetTagByID(ctx context.Context, id int) (*Tag, error) {
	return tagResult(s.tags.TagByID(ctx, id))
}

// SearchTags matches tag names case-insensitively.
//
//zenrpc:query part of the name
func (s *TagService) SearchTags(ctx context.Context, query string) ([]Tag, error) {
	list, err := s.tags.SearchTags(ctx, query)
	if err != nil {
		return nil, newError(err)
	}

	return NewTags(list), nil
}

// CreateTag adds a tag; its slug is derived from the name.
//
//zenrpc:tag new tag
func (s *TagService) CreateTag(ctx context.Context, tag TagInput) (*Tag, error) {
	if err := checkInput(tag); err != nil {
		return nil, err
	}

	return tagResult(s.tags.CreateTag(ctx, tag.Name))
}

// UpdateTag renames a tag and regenerates its slug.
//
//zenrpc:tag tag id and new name
//zenrpc:404 tag not found
func (s *TagService) UpdateTag(ctx context.Context, tag TagUpdate) (*Tag, error) {
	if err := checkInput(tag); err != nil {
		return nil, err
	}

	return tagResult(s.tags.UpdateTag(ctx, tag.ID, tag.Name))
}

// DeleteTag removes a tag and its post links.
//
//zenrpc:id tag id
//zenrpc:404 tag not found
func (s *TagService) DeleteTag(ctx context.Context, id int) (Success, error) {
	if err := s.tags.DeleteTag(ctx, id); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

func tagResult(t *db.Tag, err error) (*Tag, error) {
	if err != nil {
		return nil, newError(err)
	}

	result := NewTag(*t)
	return &result, nil
}
