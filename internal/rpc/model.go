package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
)

const (
	defaultPage         = 1
	defaultLimit        = 10
	defaultLibraryLimit = 20
)

type Success struct {
	Success bool `json:"success"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type User struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	Bio           *string   `json:"bio"`
	AvatarURL     *string   `json:"avatar_url"`
	IsActive      bool      `json:"is_active"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UserProfile is the public part of an account.
type UserProfile struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

type UsersPage struct {
	Data       []User     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type LoginResult struct {
	User      User      `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryWithCount struct {
	Category
	PostCount int `json:"post_count"`
}

type Tag struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TagWithCount struct {
	Tag
	PostCount int `json:"post_count"`
}

type Media struct {
	ID            int       `json:"id"`
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"original_name"`
	FilePath      string    `json:"file_path"`
	ThumbnailPath *string   `json:"thumbnail_path"`
	FileSize      int       `json:"file_size"`
	MimeType      string    `json:"mime_type"`
	MediaType     string    `json:"media_type"`
	AltText       *string   `json:"alt_text"`
	URL           string    `json:"url"`
	ThumbnailURL  *string   `json:"thumbnail_url"`
	UploadedBy    int       `json:"uploaded_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type MediaPage struct {
	Data       []Media    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type MediaUsagePost struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	UsageType string `json:"usage_type"`
}

type MediaUsage struct {
	Posts      []MediaUsagePost `json:"posts"`
	TotalUsage int              `json:"total_usage"`
}

type Thumbnail struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

type Post struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImageID *int       `json:"featured_image_id"`
	AuthorID        int        `json:"author_id"`
	CategoryID      *int       `json:"category_id"`
	Status          string     `json:"status"`
	IsFeatured      bool       `json:"is_featured"`
	ViewCount       int        `json:"view_count"`
	AllowComments   bool       `json:"allow_comments"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
	PublishedAt     *time.Time `json:"published_at"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PostWithRelations is a post with its author, category, featured image, tags and approved comment count.
type PostWithRelations struct {
	Post
	Author        *UserProfile `json:"author"`
	Category      *Category    `json:"category"`
	FeaturedImage *Media       `json:"featured_image"`
	Tags          []Tag        `json:"tags"`
	CommentsCount int          `json:"comments_count"`
	ContentHTML   string       `json:"content_html,omitempty"`
}

type PostsPage struct {
	Data       []PostWithRelations `json:"data"`
	Pagination Pagination          `json:"pagination"`
}

type Published struct {
	Published int `json:"published"`
}

type ViewResult struct {
	Counted bool `json:"counted"`
}

type Comment struct {
	ID          int       `json:"id"`
	PostID      int       `json:"post_id"`
	ParentID    *int      `json:"parent_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorURL   *string   `json:"author_url"`
	Content     string    `json:"content"`
	IsApproved  bool      `json:"is_approved"`
	IsSpam      bool      `json:"is_spam"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentWithRelations is a comment with its post and the thread of replies below it.
type CommentWithRelations struct {
	Comment
	Post    *Post                  `json:"post,omitempty"`
	Replies []CommentWithRelations `json:"replies"`
}

type CommentsPage struct {
	Data       []CommentWithRelations `json:"data"`
	Pagination Pagination             `json:"pagination"`
}

type Approved struct {
	Approved int `json:"approved"`
}

type Deleted struct {
	Deleted int `json:"deleted"`
}

type SiteSettings struct {
	ID                     int       `json:"id"`
	SiteTitle              string    `json:"site_title"`
	SiteDescription        *string   `json:"site_description"`
	SiteLogoURL            *string   `json:"site_logo_url"`
	Theme                  string    `json:"theme"`
	PostsPerPage           int       `json:"posts_per_page"`
	AllowComments          bool      `json:"allow_comments"`
	RequireCommentApproval bool      `json:"require_comment_approval"`
	GoogleAnalyticsID      *string   `json:"google_analytics_id"`
	MetaKeywords           *string   `json:"meta_keywords"`
	SocialFacebook         *string   `json:"social_facebook"`
	SocialTwitter          *string   `json:"social_twitter"`
	SocialInstagram        *string   `json:"social_instagram"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type PublicSettings struct {
	SiteTitle       string  `json:"site_title"`
	SiteDescription *string `json:"site_description"`
	SiteLogoURL     *string `json:"site_logo_url"`
	Theme           string  `json:"theme"`
	PostsPerPage    int     `json:"posts_per_page"`
	AllowComments   bool    `json:"allow_comments"`
	SocialFacebook  *string `json:"social_facebook"`
	SocialTwitter   *string `json:"social_twitter"`
	SocialInstagram *string `json:"social_instagram"`
}

type Validity struct {
	Valid bool `json:"valid"`
}

type DailyViews struct {
	Date        time.Time `json:"date"`
	Views       int       `json:"views"`
	UniqueViews int       `json:"unique_views"`
}

type PostAnalytics struct {
	Views       int          `json:"views"`
	UniqueViews int          `json:"unique_views"`
	Comments    int          `json:"comments"`
	Shares      int          `json:"shares"`
	DailyStats  []DailyViews `json:"daily_stats"`
}

type Activity struct {
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardStats struct {
	TotalPosts      int        `json:"total_posts"`
	PublishedPosts  int        `json:"published_posts"`
	DraftPosts      int        `json:"draft_posts"`
	TotalUsers      int        `json:"total_users"`
	ActiveUsers     int        `json:"active_users"`
	TotalComments   int        `json:"total_comments"`
	PendingComments int        `json:"pending_comments"`
	TotalCategories int        `json:"total_categories"`
	TotalTags       int        `json:"total_tags"`
	TotalMedia      int        `json:"total_media"`
	RecentActivity  []Activity `json:"recent_activity"`
}

type PopularPost struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Views       int        `json:"views"`
	Comments    int        `json:"comments"`
	PublishedAt *time.Time `json:"published_at"`
}

type TrafficSource struct {
	Source     string  `json:"source"`
	Visits     int     `json:"visits"`
	Percentage float64 `json:"percentage"`
}

type Engagement struct {
	PageViews          int     `json:"page_views"`
	UniqueVisitors     int     `json:"unique_visitors"`
	BounceRate         float64 `json:"bounce_rate"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	CommentsPerPost    float64 `json:"comments_per_post"`
}

type Keyword struct {
	Keyword    string  `json:"keyword"`
	Searches   int     `json:"searches"`
	Percentage float64 `json:"percentage"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Inputs.

type UserInput struct {
	Email     string  `json:"email" validate:"required,email"`
	Username  string  `json:"username" validate:"required,min=3,max=50"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"first_name" validate:"required,min=1"`
	LastName  string  `json:"last_name" validate:"required,min=1"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=admin editor author public_user"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

func (u UserInput) ToModel() blog.CreateUserInput {
	return blog.CreateUserInput{
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      blog.Role(u.Role),
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

type UserUpdate struct {
	ID        int     `json:"id" validate:"required,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=admin editor author public_user"`
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

func (u UserUpdate) ToModel() blog.UpdateUserInput {
	in := blog.UpdateUserInput{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
	}
	if u.Role != nil {
		role := blog.Role(*u.Role)
		in.Role = &role
	}

	return in
}

type UserFilters struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty" validate:"omitempty,min=1,max=100000"`
	//limit=10 items per page
	Limit    *int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Search   *string `json:"search,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin editor author public_user"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (f UserFilters) ToModel() blog.UserFilters {
	return blog.UserFilters{
		ListParams: listParams(f.Page, f.Limit, defaultLimit),
		Search:     f.Search,
		Role:       f.Role,
		IsActive:   f.IsActive,
	}
}

type PostFilters struct {
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty" validate:"omitempty,min=1,max=100000"`
	//limit=10 items per page
	Limit      *int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Search     *string `json:"search,omitempty"`
	CategoryID *int    `json:"category_id,omitempty"`
	TagID      *int    `json:"tag_id,omitempty"`
	AuthorID   *int    `json:"author_id,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=draft published scheduled archived"`
	IsFeatured *bool   `json:"is_featured,omitempty"`
}

// ToModel converts optional filters; nil means the defaults.
func (f *PostFilters) ToModel() blog.PostFilters {
	if f == nil {
		return blog.PostFilters{ListParams: listParams(nil, nil, defaultLimit)}
	}

	return blog.PostFilters{
		ListParams: listParams(f.Page, f.Limit, defaultLimit),
		Search:     f.Search,
		CategoryID: f.CategoryID,
		TagID:      f.TagID,
		AuthorID:   f.AuthorID,
		Status:     f.Status,
		IsFeatured: f.IsFeatured,
	}
}

type PostInput struct {
	Title           string     `json:"title" validate:"required,min=1,max=200"`
	Content         string     `json:"content" validate:"required,min=1"`
	Excerpt         *string    `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	FeaturedImageID *int       `json:"featured_image_id,omitempty"`
	CategoryID      *int       `json:"category_id,omitempty"`
	Status          string     `json:"status,omitempty" validate:"omitempty,oneof=draft published scheduled archived"`
	IsFeatured      bool       `json:"is_featured,omitempty"`
	AllowComments   *bool      `json:"allow_comments,omitempty"`
	MetaTitle       *string    `json:"meta_title,omitempty" validate:"omitempty,max=60"`
	MetaDescription *string    `json:"meta_description,omitempty" validate:"omitempty,max=160"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	TagIDs          []int      `json:"tag_ids,omitempty" validate:"omitempty,dive,min=1"`
}

func (p PostInput) ToModel() blog.PostInput {
	allowComments := true
	if p.AllowComments != nil {
		allowComments = *p.AllowComments
	}

	return blog.PostInput{
		Title:           p.Title,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		FeaturedImageID: p.FeaturedImageID,
		CategoryID:      p.CategoryID,
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
		AllowComments:   allowComments,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		ScheduledAt:     p.ScheduledAt,
		TagIDs:          p.TagIDs,
	}
}

// PostUpdate changes the fields that are present. Empty strings and zero ids clear optional columns.
type PostUpdate struct {
	ID              int        `json:"id" validate:"required,min=1"`
	Title           *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content         *string    `json:"content,omitempty" validate:"omitempty,min=1"`
	Excerpt         *string    `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	FeaturedImageID *int       `json:"featured_image_id,omitempty"`
	CategoryID      *int       `json:"category_id,omitempty"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=draft published scheduled archived"`
	IsFeatured      *bool      `json:"is_featured,omitempty"`
	AllowComments   *bool      `json:"allow_comments,omitempty"`
	MetaTitle       *string    `json:"meta_title,omitempty" validate:"omitempty,max=60"`
	MetaDescription *string    `json:"meta_description,omitempty" validate:"omitempty,max=160"`
	ScheduledAt     *time.Time `json:"scheduled_at,omitempty"`
	TagIDs          []int      `json:"tag_ids,omitempty" validate:"omitempty,dive,min=1"`
}

func (p PostUpdate) ToModel() blog.UpdatePostInput {
	return blog.UpdatePostInput{
		ID:              p.ID,
		Title:           p.Title,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		FeaturedImageID: p.FeaturedImageID,
		CategoryID:      p.CategoryID,
		Status:          p.Status,
		IsFeatured:      p.IsFeatured,
		AllowComments:   p.AllowComments,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		ScheduledAt:     p.ScheduledAt,
		TagIDs:          p.TagIDs,
	}
}

type CategoryInput struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitempty,len=7,hexcolor"`
}

func (c CategoryInput) ToModel() blog.CategoryInput {
	return blog.CategoryInput{
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
}

type CategoryUpdate struct {
	ID          int     `json:"id" validate:"required,min=1"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitempty,len=7,hexcolor"`
}

func (c CategoryUpdate) ToModel() blog.UpdateCategoryInput {
	return blog.UpdateCategoryInput{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Color:       c.Color,
	}
}

type TagInput struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type TagUpdate struct {
	ID   int    `json:"id" validate:"required,min=1"`
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type MediaInput struct {
	Filename     string  `json:"filename" validate:"required"`
	OriginalName string  `json:"original_name" validate:"required"`
	FilePath     string  `json:"file_path" validate:"required"`
	FileSize     int     `json:"file_size" validate:"required,min=1"`
	MimeType     string  `json:"mime_type" validate:"required"`
	MediaType    string  `json:"media_type,omitempty" validate:"omitempty,oneof=image video document"`
	AltText      *string `json:"alt_text,omitempty"`
}

func (m MediaInput) ToModel() blog.UploadMediaInput {
	return blog.UploadMediaInput{
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		FileSize:     m.FileSize,
		MimeType:     m.MimeType,
		MediaType:    m.MediaType,
		AltText:      m.AltText,
	}
}

type CommentInput struct {
	PostID      int     `json:"post_id" validate:"required,min=1"`
	AuthorName  string  `json:"author_name" validate:"required,min=1,max=100"`
	AuthorEmail string  `json:"author_email" validate:"required,email"`
	AuthorURL   *string `json:"author_url,omitempty" validate:"omitempty,url"`
	Content     string  `json:"content" validate:"required,min=1,max=1000"`
	ParentID    *int    `json:"parent_id,omitempty" validate:"omitempty,min=1"`
}

func (c CommentInput) ToModel(ip string) blog.CommentInput {
	in := blog.CommentInput{
		PostID:      c.PostID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		AuthorURL:   c.AuthorURL,
		Content:     c.Content,
		ParentID:    c.ParentID,
	}
	if ip != "" {
		in.IPAddress = &ip
	}

	return in
}

type CommentUpdate struct {
	ID         int     `json:"id" validate:"required,min=1"`
	Content    *string `json:"content,omitempty" validate:"omitempty,min=1,max=1000"`
	IsApproved *bool   `json:"is_approved,omitempty"`
}

func (c CommentUpdate) ToModel() blog.UpdateCommentInput {
	return blog.UpdateCommentInput{
		ID:         c.ID,
		Content:    c.Content,
		IsApproved: c.IsApproved,
	}
}

type SettingsUpdate struct {
	SiteTitle              *string `json:"site_title,omitempty" validate:"omitempty,min=1,max=100"`
	SiteDescription        *string `json:"site_description,omitempty" validate:"omitempty,max=500"`
	SiteLogoURL            *string `json:"site_logo_url,omitempty" validate:"omitempty,url"`
	Theme                  *string `json:"theme,omitempty" validate:"omitempty,max=50"`
	PostsPerPage           *int    `json:"posts_per_page,omitempty" validate:"omitempty,min=1,max=50"`
	AllowComments          *bool   `json:"allow_comments,omitempty"`
	RequireCommentApproval *bool   `json:"require_comment_approval,omitempty"`
	GoogleAnalyticsID      *string `json:"google_analytics_id,omitempty"`
	MetaKeywords           *string `json:"meta_keywords,omitempty"`
	SocialFacebook         *string `json:"social_facebook,omitempty" validate:"omitempty,url"`
	SocialTwitter          *string `json:"social_twitter,omitempty" validate:"omitempty,url"`
	SocialInstagram        *string `json:"social_instagram,omitempty" validate:"omitempty,url"`
}

func (s SettingsUpdate) ToModel() blog.UpdateSettingsInput {
	return blog.UpdateSettingsInput{
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
	}
}

// listParams applies the paging defaults.
func listParams(page, limit *int, defLimit int) blog.ListParams {
	p := blog.ListParams{Page: defaultPage, Limit: defLimit}
	if page != nil {
		p.Page = *page
	}
	if limit != nil {
		p.Limit = *limit
	}

	return p
}
