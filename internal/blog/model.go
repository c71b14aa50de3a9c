package blog

import (
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaDocument = "document"

	UsageFeatured = "featured"
	UsageContent  = "content"
)

// ListParams is a 1-based page request.
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) pager() db.Pager {
	return db.Pager{Page: p.Page, PageSize: p.Limit}
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func NewPagination(p ListParams, total int) Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}

	return Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: pages,
	}
}

// Page is one page of a list with its pagination envelope.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

type Post struct {
	db.Post
	Tags          []db.Tag
	CommentsCount int
	ContentHTML   string
}

type Comment struct {
	db.Comment
	Replies []Comment
}

type Session struct {
	User      db.User
	Token     string
	ExpiresAt time.Time
}

type MediaUsagePost struct {
	ID        int
	Title     string
	UsageType string
}

type MediaUsage struct {
	Posts      []MediaUsagePost
	TotalUsage int
}

type PostFilters struct {
	ListParams
	Search     *string
	CategoryID *int
	TagID      *int
	AuthorID   *int
	Status     *string
	IsFeatured *bool
}

type UserFilters struct {
	ListParams
	Search   *string
	Role     *string
	IsActive *bool
}

type CreateUserInput struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      Role
	Bio       *string
	AvatarURL *string
}

// UpdateUserInput changes the non-nil fields. An empty Bio or AvatarURL clears it.
type UpdateUserInput struct {
	ID        int
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Role      *Role
	Bio       *string
	AvatarURL *string
	IsActive  *bool
}

type CategoryInput struct {
	Name        string
	Description *string
	Color       *string
}

// UpdateCategoryInput changes the non-nil fields. An empty Description or Color clears it.
type UpdateCategoryInput struct {
	ID          int
	Name        *string
	Description *string
	Color       *string
}

type UploadMediaInput struct {
	Filename     string
	OriginalName string
	FilePath     string
	FileSize     int
	MimeType     string
	MediaType    string
	AltText      *string
}

type PostInput struct {
	Title           string
	Content         string
	Excerpt         *string
	FeaturedImageID *int
	CategoryID      *int
	Status          string
	IsFeatured      bool
	AllowComments   bool
	MetaTitle       *string
	MetaDescription *string
	ScheduledAt     *time.Time
	TagIDs          []int
}

// UpdatePostInput changes the non-nil fields. Zero FeaturedImageID or CategoryID
// and empty strings clear the optional columns; a non-nil TagIDs replaces the tag set.
type UpdatePostInput struct {
	ID              int
	Title           *string
	Content         *string
	Excerpt         *string
	FeaturedImageID *int
	CategoryID      *int
	Status          *string
	IsFeatured      *bool
	AllowComments   *bool
	MetaTitle       *string
	MetaDescription *string
	ScheduledAt     *time.Time
	TagIDs          []int
}

type CommentInput struct {
	PostID      int
	AuthorName  string
	AuthorEmail string
	AuthorURL   *string
	Content     string
	ParentID    *int
	IPAddress   *string
}

type UpdateCommentInput struct {
	ID         int
	Content    *string
	IsApproved *bool
}

// UpdateSettingsInput changes the non-nil fields. Empty optional strings clear them.
type UpdateSettingsInput struct {
	SiteTitle              *string
	SiteDescription        *string
	SiteLogoURL            *string
	Theme                  *string
	PostsPerPage           *int
	AllowComments          *bool
	RequireCommentApproval *bool
	GoogleAnalyticsID      *string
	MetaKeywords           *string
	SocialFacebook         *string
	SocialTwitter          *string
	SocialInstagram        *string
}

type PageViewInput struct {
	Path      string
	IPAddress string
	UserAgent *string
	Referer   *string
}

type PostAnalytics struct {
	Views       int
	UniqueViews int
	Comments    int
	Shares      int
	DailyStats  []db.DailyViews
}

type DashboardStats struct {
	db.EntityCounts
	RecentActivity []db.Activity
}

type TrafficSource struct {
	Source     string
	Visits     int
	Percentage float64
}

type Engagement struct {
	PageViews          int
	UniqueVisitors     int
	BounceRate         float64
	AvgSessionDuration float64
	CommentsPerPost    float64
}

type Keyword struct {
	Keyword    string
	Searches   int
	Percentage float64
}

// clearable turns an empty string into nil so the column is set to NULL.
func clearable(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func clearableID(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return roundTo(float64(part)*100/float64(total), 2)
}
