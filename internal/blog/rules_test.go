package blog

import (
	"context"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleEditor))
	assert.True(t, RoleEditor.AtLeast(RoleEditor))
	assert.False(t, RoleAuthor.AtLeast(RoleEditor))
	assert.True(t, RolePublic.AtLeast(RolePublic))
	assert.False(t, Role("root").AtLeast(RolePublic))
	assert.False(t, Role("root").Valid())

	var anonymous *Principal
	assert.False(t, anonymous.Can(RolePublic))
	assert.False(t, anonymous.Owns(1))

	author := &Principal{UserID: 3, Role: RoleAuthor}
	assert.True(t, author.Can(RoleAuthor))
	assert.False(t, author.Can(RoleEditor))
	assert.True(t, author.Owns(3))
	assert.False(t, author.Owns(4))
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, PrincipalFromContext(ctx))

	p := &Principal{UserID: 1, Role: RoleAdmin}
	assert.Same(t, p, PrincipalFromContext(NewContext(ctx, p)))
}

func TestPostVisibility(t *testing.T) {
	draft := &db.Post{AuthorID: 3, Status: db.StatusDraft}
	published := &db.Post{AuthorID: 3, Status: db.StatusPublished}

	author := &Principal{UserID: 3, Role: RoleAuthor}
	other := &Principal{UserID: 5, Role: RoleAuthor}
	editor := &Principal{UserID: 2, Role: RoleEditor}

	assert.True(t, canViewPost(nil, published))
	assert.False(t, canViewPost(nil, draft))
	assert.True(t, canViewPost(author, draft))
	assert.False(t, canViewPost(other, draft))
	assert.True(t, canViewPost(editor, draft))

	assert.True(t, canEditPost(author, draft))
	assert.False(t, canEditPost(other, published))
	assert.True(t, canEditPost(editor, published))
	assert.False(t, canEditPost(&Principal{UserID: 3, Role: RolePublic}, draft))
}

func TestApplyStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := &PostManager{base: &base{now: func() time.Time { return now }}}

	t.Run("PublishSetsPublishedAtOnce", func(t *testing.T) {
		post := &db.Post{Status: db.StatusDraft}
		require.NoError(t, m.applyStatus(post, db.StatusPublished))
		require.NotNil(t, post.PublishedAt)
		assert.Equal(t, now, *post.PublishedAt)

		earlier := now.Add(-time.Hour)
		post.PublishedAt = &earlier
		require.NoError(t, m.applyStatus(post, db.StatusPublished))
		assert.Equal(t, earlier, *post.PublishedAt)
	})

	t.Run("DraftClearsDates", func(t *testing.T) {
		post := &db.Post{Status: db.StatusPublished, PublishedAt: &now}
		require.NoError(t, m.applyStatus(post, db.StatusDraft))
		assert.Nil(t, post.PublishedAt)
		assert.Equal(t, db.StatusDraft, post.Status)
	})

	t.Run("ArchiveKeepsPublishedAt", func(t *testing.T) {
		post := &db.Post{Status: db.StatusPublished, PublishedAt: &now}
		require.NoError(t, m.applyStatus(post, db.StatusArchived))
		assert.NotNil(t, post.PublishedAt)
	})

	t.Run("ScheduleNeedsFutureDate", func(t *testing.T) {
		past := now.Add(-time.Minute)
		post := &db.Post{Status: db.StatusDraft, ScheduledAt: &past}
		err := m.applyStatus(post, db.StatusScheduled)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, db.StatusDraft, post.Status)

		future := now.Add(time.Hour)
		post.ScheduledAt = &future
		require.NoError(t, m.applyStatus(post, db.StatusScheduled))
		assert.Equal(t, db.StatusScheduled, post.Status)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		assert.ErrorIs(t, m.applyStatus(&db.Post{}, "deleted"), ErrInvalidInput)
	})
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		total  int
		want   int
	}{
		{"Empty", ListParams{Page: 1, Limit: 10}, 0, 0},
		{"Exact", ListParams{Page: 1, Limit: 10}, 20, 2},
		{"Remainder", ListParams{Page: 2, Limit: 10}, 25, 3},
		{"SinglePage", ListParams{Page: 1, Limit: 100}, 7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.params, tt.total)
			assert.Equal(t, tt.want, p.TotalPages)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.params.Page, p.Page)
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, uniqueIDs([]int{3, 1, 3, 2, 1}))
	assert.Equal(t, []int{}, uniqueIDs(nil))
}

func TestClearable(t *testing.T) {
	assert.Nil(t, clearable(nil))
	assert.Nil(t, clearable(strPtr("")))
	assert.Equal(t, "x", *clearable(strPtr("x")))

	zero, one := 0, 1
	assert.Nil(t, clearableID(&zero))
	assert.Equal(t, 1, *clearableID(&one))
}

func TestValidGoogleAnalyticsID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"UA-1234567-1", true},
		{"UA-1234-12", true},
		{"G-ABC123DEF0", true},
		{"UA-12-1", false},
		{"UA-1234567", false},
		{"g-abc123", false},
		{"G-AB", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidGoogleAnalyticsID(tt.id))
		})
	}
}

func TestNormalizeTheme(t *testing.T) {
	theme, err := normalizeTheme("  Dark ")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)

	_, err = normalizeTheme(" ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMediaTypeFor(t *testing.T) {
	assert.Equal(t, MediaImage, MediaTypeFor("image/png"))
	assert.Equal(t, MediaVideo, MediaTypeFor("video/mp4"))
	assert.Equal(t, MediaDocument, MediaTypeFor("application/pdf"))
	assert.Equal(t, MediaDocument, MediaTypeFor(""))
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".jpg", fileExt("Photo.JPG", "image/jpeg"))
	assert.Equal(t, ".png", fileExt("blob", "image/png"))
	assert.Equal(t, ".pdf", fileExt("report", "application/pdf"))
	assert.Equal(t, "", fileExt("notes", "text/plain"))
	assert.Equal(t, ".webp", fileExt("archive.verylongext", "image/webp"))
}

func TestPostBlankTitle(t *testing.T) {
	m := &PostManager{base: &base{now: time.Now}}
	ctx := NewContext(context.Background(), &Principal{UserID: 2, Role: RoleEditor})

	_, err := m.CreatePost(ctx, PostInput{Title: " \t ", Content: "body"}, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)

	blank := "   "
	_, err = m.UpdatePost(ctx, UpdatePostInput{ID: 1, Title: &blank})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
