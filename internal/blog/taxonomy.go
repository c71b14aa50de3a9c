package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const tagSearchLimit = 20

type CategoryManager struct {
	*base
}

func (m *CategoryManager) Categories(ctx context.Context) ([]db.Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return list, nil
}

// CategoriesWithCounts returns categories with their published post counts.
func (m *CategoryManager) CategoriesWithCounts(ctx context.Context) ([]db.CategoryCount, error) {
	list, err := m.db.CategoriesWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories with counts: %w", err)
	}

	return list, nil
}

func (m *CategoryManager) CategoryBySlug(ctx context.Context, slug string) (*db.Category, error) {
	category, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if category == nil {
		return nil, ErrCategoryNotFound
	}

	return category, nil
}

func (m *CategoryManager) CategoryByID(ctx context.Context, id int) (*db.Category, error) {
	return categoryByID(ctx, m.db, id)
}

func (m *CategoryManager) CreateCategory(ctx context.Context, in CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(in.Name)
	slug, err := uniqueSlug(ctx, m.db, db.Tables.Category.Name, name, "category", categorySlugLen, 0)
	if err != nil {
		return nil, err
	}

	category, err := m.db.CreateCategory(ctx, &db.Category{
		Name:        name,
		Slug:        slug,
		Description: clearable(in.Description),
		Color:       clearable(in.Color),
	})
	if db.IsUniqueViolation(err) {
		return nil, conflict("category slug %q is already taken", slug)
	} else if err != nil {
		return nil, fmt.Errorf("db create category: %w", err)
	}

	return category, nil
}

// UpdateCategory edits a category; a new name regenerates the slug.
func (m *CategoryManager) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*db.Category, error) {
	category, err := categoryByID(ctx, m.db, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name != category.Name {
			slug, err := uniqueSlug(ctx, m.db, db.Tables.Category.Name, name, "category", categorySlugLen, category.ID)
			if err != nil {
				return nil, err
			}
			category.Name, category.Slug = name, slug
		}
	}
	if in.Description != nil {
		category.Description = clearable(in.Description)
	}
	if in.Color != nil {
		category.Color = clearable(in.Color)
	}

	updated, err := m.db.UpdateCategory(ctx, category)
	if db.IsUniqueViolation(err) {
		return nil, conflict("category slug %q is already taken", category.Slug)
	} else if err != nil {
		return nil, fmt.Errorf("db update category: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes a category. While posts still use it the call fails
// with a conflict unless reassignTo names the category those posts move to.
func (m *CategoryManager) DeleteCategory(ctx context.Context, id int, reassignTo *int) error {
	if reassignTo != nil && *reassignTo == id {
		return invalidInput("cannot reassign posts to the category being deleted")
	}

	return m.db.RunInTx(ctx, func(tx *db.Repository) error {
		if _, err := categoryByID(ctx, tx, id); err != nil {
			return err
		}

		count, err := tx.CategoryPostsCount(ctx, id)
		if err != nil {
			return fmt.Errorf("db count category posts: %w", err)
		}

		if count > 0 {
			if reassignTo == nil {
				return conflict("category is used by %d posts", count)
			}
			if _, err := categoryByID(ctx, tx, *reassignTo); err != nil {
				return err
			}
			if _, err := tx.ReassignCategoryPosts(ctx, id, *reassignTo); err != nil {
				return fmt.Errorf("db reassign category posts: %w", err)
			}
		}

		if _, err := tx.DeleteCategory(ctx, id); err != nil {
			return fmt.Errorf("db delete category: %w", err)
		}

		return nil
	})
}

func categoryByID(ctx context.Context, repo *db.Repository, id int) (*db.Category, error) {
	category, err := repo.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if category == nil {
		return nil, ErrCategoryNotFound
	}

	return category, nil
}

type TagManager struct {
	*base
}

func (m *TagManager) Tags(ctx context.Context) ([]db.Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return list, nil
}

func (m *TagManager) TagsWithCounts(ctx context.Context) ([]db.TagCount, error) {
	list, err := m.db.TagsWithCounts(ctx, false, 0)
	if err != nil {
		return nil, fmt.Errorf("db get tags with counts: %w", err)
	}

	return list, nil
}

// PopularTags returns the most used tags first.
func (m *TagManager) PopularTags(ctx context.Context, limit int) ([]db.TagCount, error) {
	list, err := m.db.TagsWithCounts(ctx, true, limit)
	if err != nil {
		return nil, fmt.Errorf("db get popular tags: %w", err)
	}

	return list, nil
}

func (m *TagManager) TagBySlug(ctx context.Context, slug string) (*db.Tag, error) {
	tag, err := m.db.TagBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get tag by slug: %w", err)
	} else if tag == nil {
		return nil, ErrTagNotFound
	}

	return tag, nil
}

func (m *TagManager) TagByID(ctx context.Context, id int) (*db.Tag, error) {
	tag, err := m.db.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get tag by id: %w", err)
	} else if tag == nil {
		return nil, ErrTagNotFound
	}

	return tag, nil
}

// SearchTags matches tag names case-insensitively by substring.
func (m *TagManager) SearchTags(ctx context.Context, query string) ([]db.Tag, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []db.Tag{}, nil
	}

	list, err := m.db.SearchTags(ctx, query, tagSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("db search tags: %w", err)
	}

	return list, nil
}

func (m *TagManager) CreateTag(ctx context.Context, name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	slug, err := uniqueSlug(ctx, m.db, db.Tables.Tag.Name, name, "tag", tagSlugLen, 0)
	if err != nil {
		return nil, err
	}

	tag, err := m.db.CreateTag(ctx, &db.Tag{Name: name, Slug: slug})
	if db.IsUniqueViolation(err) {
		return nil, conflict("tag slug %q is already taken", slug)
	} else if err != nil {
		return nil, fmt.Errorf("db create tag: %w", err)
	}

	return tag, nil
}

func (m *TagManager) UpdateTag(ctx context.Context, id int, name string) (*db.Tag, error) {
	tag, err := m.TagByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != tag.Name {
		slug, err := uniqueSlug(ctx, m.db, db.Tables.Tag.Name, name, "tag", tagSlugLen, tag.ID)
		if err != nil {
			return nil, err
		}
		tag.Name, tag.Slug = name, slug
	}

	updated, err := m.db.UpdateTag(ctx, tag)
	if db.IsUniqueViolation(err) {
		return nil, conflict("tag slug %q is already taken", tag.Slug)
	} else if err != nil {
		return nil, fmt.Errorf("db update tag: %w", err)
	}

	return updated, nil
}

// DeleteTag removes a tag together with its post associations.
func (m *TagManager) DeleteTag(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteTag(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete tag: %w", err)
	} else if !deleted {
		return ErrTagNotFound
	}

	return nil
}
