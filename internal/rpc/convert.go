package rpc

import (
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

// fileURL resolves a storage key to a public address.
type fileURL func(key string) string

func NewPagination(p blog.Pagination) Pagination {
	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}

func NewUser(u db.User) User {
	return User{
		ID:            u.ID,
		Email:         u.Email,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Role:          u.Role,
		Bio:           u.Bio,
		AvatarURL:     u.AvatarURL,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func NewUserProfile(u db.User) UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func NewUsersPage(p blog.Page[db.User]) UsersPage {
	return UsersPage{
		Data:       NewUsers(p.Items),
		Pagination: NewPagination(p.Pagination),
	}
}

func NewLoginResult(s blog.Session) LoginResult {
	return LoginResult{
		User:      NewUser(s.User),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCategoryWithCount(c db.CategoryCount) CategoryWithCount {
	return CategoryWithCount{
		Category:  NewCategory(c.Category),
		PostCount: c.PostCount,
	}
}

func NewTag(t db.Tag) Tag {
	return Tag{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func NewTagWithCount(t db.TagCount) TagWithCount {
	return TagWithCount{
		Tag:       NewTag(t.Tag),
		PostCount: t.PostCount,
	}
}

func NewMedia(m db.Media, url fileURL) Media {
	media := Media{
		ID:            m.ID,
		Filename:      m.Filename,
		OriginalName:  m.OriginalName,
		FilePath:      m.FilePath,
		ThumbnailPath: m.ThumbnailPath,
		FileSize:      m.FileSize,
		MimeType:      m.MimeType,
		MediaType:     m.MediaType,
		AltText:       m.AltText,
		URL:           url(m.FilePath),
		UploadedBy:    m.UploadedBy,
		CreatedAt:     m.CreatedAt,
	}
	if m.ThumbnailPath != nil {
		thumb := url(*m.ThumbnailPath)
		media.ThumbnailURL = &thumb
	}

	return media
}

func NewMediaList(list []db.Media, url fileURL) []Media {
	return newList(list, func(m db.Media) Media { return NewMedia(m, url) })
}

func NewMediaPage(p blog.Page[db.Media], url fileURL) MediaPage {
	return MediaPage{
		Data:       NewMediaList(p.Items, url),
		Pagination: NewPagination(p.Pagination),
	}
}

func NewMediaUsage(u blog.MediaUsage) MediaUsage {
	return MediaUsage{
		Posts: newList(u.Posts, func(p blog.MediaUsagePost) MediaUsagePost {
			return MediaUsagePost{ID: p.ID, Title: p.Title, UsageType: p.UsageType}
		}),
		TotalUsage: u.TotalUsage,
	}
}

func NewPost(p db.Post) Post {
	return Post{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Excerpt:         p.Excerpt,
		Content:         p.Content,
		FeaturedImageID: p.FeaturedImageID,
		AuthorID:        p.AuthorID,
		CategoryID:      p.CategoryID,
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
		ViewCount:       p.ViewCount,
		AllowComments:   p.AllowComments,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		PublishedAt:     p.PublishedAt,
		ScheduledAt:     p.ScheduledAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func NewPostWithRelations(p blog.Post, url fileURL) PostWithRelations {
	post := PostWithRelations{
		Post:          NewPost(p.Post),
		Tags:          NewTags(p.Tags),
		CommentsCount: p.CommentsCount,
		ContentHTML:   p.ContentHTML,
	}

	if p.Author != nil {
		author := NewUserProfile(*p.Author)
		post.Author = &author
	}
	if p.Category != nil {
		category := NewCategory(*p.Category)
		post.Category = &category
	}
	if p.FeaturedImage != nil {
		image := NewMedia(*p.FeaturedImage, url)
		post.FeaturedImage = &image
	}

	return post
}

func NewPostsWithRelations(list []blog.Post, url fileURL) []PostWithRelations {
	return newList(list, func(p blog.Post) PostWithRelations { return NewPostWithRelations(p, url) })
}

func NewPostsPage(p blog.Page[blog.Post], url fileURL) PostsPage {
	return PostsPage{
		Data:       NewPostsWithRelations(p.Items, url),
		Pagination: NewPagination(p.Pagination),
	}
}

func NewComment(c db.Comment) Comment {
	return Comment{
		ID:          c.ID,
		PostID:      c.PostID,
		ParentID:    c.ParentID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		AuthorURL:   c.AuthorURL,
		Content:     c.Content,
		IsApproved:  c.IsApproved,
		IsSpam:      c.IsSpam,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCommentWithRelations(c blog.Comment) CommentWithRelations {
	comment := CommentWithRelations{
		Comment: NewComment(c.Comment),
		Replies: NewCommentsWithRelations(c.Replies),
	}
	if c.Post != nil {
		post := NewPost(*c.Post)
		comment.Post = &post
	}

	return comment
}

func NewCommentsWithRelations(list []blog.Comment) []CommentWithRelations {
	return newList(list, NewCommentWithRelations)
}

func NewCommentsPage(p blog.Page[blog.Comment]) CommentsPage {
	return CommentsPage{
		Data:       NewCommentsWithRelations(p.Items),
		Pagination: NewPagination(p.Pagination),
	}
}

func NewSiteSettings(s db.SiteSettings) SiteSettings {
	return SiteSettings{
		ID:                     s.ID,
		SiteTitle:              s.SiteTitle,
		SiteDescription:        s.SiteDescription,
		SiteLogoURL:            s.SiteLogoURL,
		Theme:                  s.Theme,
		PostsPerPage:           s.PostsPerPage,
		AllowComments:          s.AllowComments,
		RequireCommentApproval: s.RequireCommentApproval,
		GoogleAnalyticsID:      s.GoogleAnalyticsID,
		MetaKeywords:           s.MetaKeywords,
		SocialFacebook:         s.SocialFacebook,
		SocialTwitter:          s.SocialTwitter,
		SocialInstagram:        s.SocialInstagram,
		UpdatedAt:              s.UpdatedAt,
	}
}

func NewPublicSettings(s blog.PublicSettings) PublicSettings {
	return PublicSettings{
		SiteTitle:       s.SiteTitle,
		SiteDescription: s.SiteDescription,
		SiteLogoURL:     s.SiteLogoURL,
		Theme:           s.Theme,
		PostsPerPage:    s.PostsPerPage,
		AllowComments:   s.AllowComments,
		SocialFacebook:  s.SocialFacebook,
		SocialTwitter:   s.SocialTwitter,
		SocialInstagram: s.SocialInstagram,
	}
}

func NewPostAnalytics(a blog.PostAnalytics) PostAnalytics {
	return PostAnalytics{
		Views:       a.Views,
		UniqueViews: a.UniqueViews,
		Comments:    a.Comments,
		Shares:      a.Shares,
		DailyStats: newList(a.DailyStats, func(d db.DailyViews) DailyViews {
			return DailyViews{Date: d.Date, Views: d.Views, UniqueViews: d.UniqueViews}
		}),
	}
}

func NewDashboardStats(s blog.DashboardStats) DashboardStats {
	return DashboardStats{
		TotalPosts:      s.TotalPosts,
		PublishedPosts:  s.PublishedPosts,
		DraftPosts:      s.DraftPosts,
		TotalUsers:      s.TotalUsers,
		ActiveUsers:     s.ActiveUsers,
		TotalComments:   s.TotalComments,
		PendingComments: s.PendingComments,
		TotalCategories: s.TotalCategories,
		TotalTags:       s.TotalTags,
		TotalMedia:      s.TotalMedia,
		RecentActivity: newList(s.RecentActivity, func(a db.Activity) Activity {
			return Activity{Type: a.Type, Action: a.Action, Title: a.Title, Timestamp: a.Timestamp}
		}),
	}
}

func NewPopularPost(p db.PopularPost) PopularPost {
	return PopularPost{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Views:       p.Views,
		Comments:    p.Comments,
		PublishedAt: p.PublishedAt,
	}
}

func NewTrafficSource(s blog.TrafficSource) TrafficSource {
	return TrafficSource{Source: s.Source, Visits: s.Visits, Percentage: s.Percentage}
}

func NewEngagement(e blog.Engagement) Engagement {
	return Engagement{
		PageViews:          e.PageViews,
		UniqueVisitors:     e.UniqueVisitors,
		BounceRate:         e.BounceRate,
		AvgSessionDuration: e.AvgSessionDuration,
		CommentsPerPost:    e.CommentsPerPost,
	}
}

func NewKeyword(k blog.Keyword) Keyword {
	return Keyword{Keyword: k.Keyword, Searches: k.Searches, Percentage: k.Percentage}
}
