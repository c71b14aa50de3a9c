package rest

import (
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewFeedItem(p blog.Post, url func(string) string) FeedItem {
	item := FeedItem{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Tags:          NewTags(p.Tags),
		IsFeatured:    p.IsFeatured,
		ViewCount:     p.ViewCount,
		CommentsCount: p.CommentsCount,
		PublishedAt:   p.PublishedAt,
	}

	if p.Author != nil {
		item.Author = p.Author.Username
	}
	if p.Category != nil {
		category := NewCategory(*p.Category)
		item.Category = &category
	}
	if p.FeaturedImage != nil {
		image := url(p.FeaturedImage.FilePath)
		item.FeaturedImageURL = &image
	}

	return item
}

func NewFeed(p blog.Page[blog.Post], url func(string) string) Feed {
	return Feed{
		Data: Map(p.Items, func(post blog.Post) FeedItem { return NewFeedItem(post, url) }),
		Pagination: Pagination{
			Page:       p.Pagination.Page,
			Limit:      p.Pagination.Limit,
			Total:      p.Pagination.Total,
			TotalPages: p.Pagination.TotalPages,
		},
	}
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewTag(t db.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewMedia(m db.Media, url func(string) string) Media {
	media := Media{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		URL:          url(m.FilePath),
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		MediaType:    m.MediaType,
		AltText:      m.AltText,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
	}
	if m.ThumbnailPath != nil {
		thumb := url(*m.ThumbnailPath)
		media.ThumbnailURL = &thumb
	}

	return media
}
