package rpc

import (
	"encoding/json"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cdnURL(key string) string { return "https://cdn.example.com/" + key }

func TestNewListNeverNil(t *testing.T) {
	list := NewTags(nil)
	require.NotNil(t, list)

	data, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestNewPostsPage(t *testing.T) {
	thumb := "uploads/thumbs/cover.webp"
	page := blog.Page[blog.Post]{
		Items: []blog.Post{{
			Post: db.Post{
				ID:       1,
				Title:    "Hello",
				Slug:     "hello",
				AuthorID: 2,
				Author:   &db.User{ID: 2, Username: "ann", PasswordHash: "secret"},
				FeaturedImage: &db.Media{
					ID:            3,
					FilePath:      "uploads/cover.png",
					ThumbnailPath: &thumb,
				},
			},
			Tags:          []db.Tag{{ID: 4, Name: "Go", Slug: "go"}},
			CommentsCount: 2,
		}},
		Pagination: blog.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
	}

	result := NewPostsPage(page, cdnURL)
	require.Len(t, result.Data, 1)
	assert.Equal(t, Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, result.Pagination)

	post := result.Data[0]
	require.NotNil(t, post.Author)
	assert.Equal(t, "ann", post.Author.Username)
	assert.Nil(t, post.Category)
	require.NotNil(t, post.FeaturedImage)
	assert.Equal(t, "https://cdn.example.com/uploads/cover.png", post.FeaturedImage.URL)
	require.NotNil(t, post.FeaturedImage.ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/uploads/thumbs/cover.webp", *post.FeaturedImage.ThumbnailURL)
	assert.Len(t, post.Tags, 1)
	assert.Equal(t, 2, post.CommentsCount)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"total_pages":1`)
}

func TestNewCommentWithRelations(t *testing.T) {
	thread := blog.Comment{
		Comment: db.Comment{ID: 1, PostID: 9, Content: "root", IsApproved: true},
		Replies: []blog.Comment{
			{Comment: db.Comment{ID: 2, PostID: 9, Content: "reply"}},
		},
	}

	result := NewCommentWithRelations(thread)
	assert.Equal(t, 1, result.ID)
	assert.Nil(t, result.Post)
	require.Len(t, result.Replies, 1)
	assert.Equal(t, "reply", result.Replies[0].Content)
	assert.NotNil(t, result.Replies[0].Replies)
}

func TestListParams(t *testing.T) {
	assert.Equal(t, blog.ListParams{Page: 1, Limit: 20}, listParams(nil, nil, defaultLibraryLimit))

	page, limit := 3, 50
	assert.Equal(t, blog.ListParams{Page: 3, Limit: 50}, listParams(&page, &limit, defaultLimit))
}
