// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	User struct {
		ID, Email, Username, PasswordHash, FirstName, LastName, Role, Bio, AvatarURL, IsActive, EmailVerified, EmailVerificationToken, PasswordResetToken, PasswordResetExpires, CreatedAt, UpdatedAt string
	}
	Category struct {
		ID, Name, Slug, Description, Color, CreatedAt, UpdatedAt string
	}
	Tag struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}
	Media struct {
		ID, Filename, OriginalName, FilePath, FileSize, MimeType, MediaType, AltText, ThumbnailPath, UploadedBy, CreatedAt string

		Uploader string
	}
	Post struct {
		ID, Title, Slug, Excerpt, Content, FeaturedImageID, AuthorID, CategoryID, Status, IsFeatured, ViewCount, AllowComments, MetaTitle, MetaDescription, PublishedAt, ScheduledAt, CreatedAt, UpdatedAt string

		Author, Category, FeaturedImage string
	}
	PostTag struct {
		ID, PostID, TagID, CreatedAt string
	}
	Comment struct {
		ID, PostID, ParentID, AuthorName, AuthorEmail, AuthorURL, Content, IsApproved, IsSpam, IPAddress, CreatedAt, UpdatedAt string

		Post string
	}
	SiteSettings struct {
		ID, SiteTitle, SiteDescription, SiteLogoURL, Theme, PostsPerPage, AllowComments, RequireCommentApproval, GoogleAnalyticsID, MetaKeywords, SocialFacebook, SocialTwitter, SocialInstagram, UpdatedAt string
	}
	UserSession struct {
		ID, UserID, SessionToken, ExpiresAt, CreatedAt string

		User string
	}
	PostView struct {
		ID, PostID, IPAddress, UserAgent, ViewedAt string
	}
	PageView struct {
		ID, Path, IPAddress, UserAgent, Referer, ViewedAt string
	}
	SearchQuery struct {
		ID, Query, ResultsCount, SearchedAt string
	}
}{
	User: struct {
		ID, Email, Username, PasswordHash, FirstName, LastName, Role, Bio, AvatarURL, IsActive, EmailVerified, EmailVerificationToken, PasswordResetToken, PasswordResetExpires, CreatedAt, UpdatedAt string
	}{
		ID:                     "id",
		Email:                  "email",
		Username:               "username",
		PasswordHash:           "password_hash",
		FirstName:              "first_name",
		LastName:               "last_name",
		Role:                   "role",
		Bio:                    "bio",
		AvatarURL:              "avatar_url",
		IsActive:               "is_active",
		EmailVerified:          "email_verified",
		EmailVerificationToken: "email_verification_token",
		PasswordResetToken:     "password_reset_token",
		PasswordResetExpires:   "password_reset_expires",
		CreatedAt:              "created_at",
		UpdatedAt:              "updated_at",
	},
	Category: struct {
		ID, Name, Slug, Description, Color, CreatedAt, UpdatedAt string
	}{
		ID:          "id",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		Color:       "color",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	},
	Tag: struct {
		ID, Name, Slug, CreatedAt, UpdatedAt string
	}{
		ID:        "id",
		Name:      "name",
		Slug:      "slug",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",
	},
	Media: struct {
		ID, Filename, OriginalName, FilePath, FileSize, MimeType, MediaType, AltText, ThumbnailPath, UploadedBy, CreatedAt string

		Uploader string
	}{
		ID:            "id",
		Filename:      "filename",
		OriginalName:  "original_name",
		FilePath:      "file_path",
		FileSize:      "file_size",
		MimeType:      "mime_type",
		MediaType:     "media_type",
		AltText:       "alt_text",
		ThumbnailPath: "thumbnail_path",
		UploadedBy:    "uploaded_by",
		CreatedAt:     "created_at",

		Uploader: "Uploader",
	},
	Post: struct {
		ID, Title, Slug, Excerpt, Content, FeaturedImageID, AuthorID, CategoryID, Status, IsFeatured, ViewCount, AllowComments, MetaTitle, MetaDescription, PublishedAt, ScheduledAt, CreatedAt, UpdatedAt string

		Author, Category, FeaturedImage string
	}{
		ID:              "id",
		Title:           "title",
		Slug:            "slug",
		Excerpt:         "excerpt",
		Content:         "content",
		FeaturedImageID: "featured_image_id",
		AuthorID:        "author_id",
		CategoryID:      "category_id",
		Status:          "status",
		IsFeatured:      "is_featured",
		ViewCount:       "view_count",
		AllowComments:   "allow_comments",
		MetaTitle:       "meta_title",
		MetaDescription: "meta_description",
		PublishedAt:     "published_at",
		ScheduledAt:     "scheduled_at",
		CreatedAt:       "created_at",
		UpdatedAt:       "updated_at",

		Author:        "Author",
		Category:      "Category",
		FeaturedImage: "FeaturedImage",
	},
	PostTag: struct {
		ID, PostID, TagID, CreatedAt string
	}{
		ID:        "id",
		PostID:    "post_id",
		TagID:     "tag_id",
		CreatedAt: "created_at",
	},
	Comment: struct {
		ID, PostID, ParentID, AuthorName, AuthorEmail, AuthorURL, Content, IsApproved, IsSpam, IPAddress, CreatedAt, UpdatedAt string

		Post string
	}{
		ID:          "id",
		PostID:      "post_id",
		ParentID:    "parent_id",
		AuthorName:  "author_name",
		AuthorEmail: "author_email",
		AuthorURL:   "author_url",
		Content:     "content",
		IsApproved:  "is_approved",
		IsSpam:      "is_spam",
		IPAddress:   "ip_address",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",

		Post: "Post",
	},
	SiteSettings: struct {
		ID, SiteTitle, SiteDescription, SiteLogoURL, Theme, PostsPerPage, AllowComments, RequireCommentApproval, GoogleAnalyticsID, MetaKeywords, SocialFacebook, SocialTwitter, SocialInstagram, UpdatedAt string
	}{
		ID:                     "id",
		SiteTitle:              "site_title",
		SiteDescription:        "site_description",
		SiteLogoURL:            "site_logo_url",
		Theme:                  "theme",
		PostsPerPage:           "posts_per_page",
		AllowComments:          "allow_comments",
		RequireCommentApproval: "require_comment_approval",
		GoogleAnalyticsID:      "google_analytics_id",
		MetaKeywords:           "meta_keywords",
		SocialFacebook:         "social_facebook",
		SocialTwitter:          "social_twitter",
		SocialInstagram:        "social_instagram",
		UpdatedAt:              "updated_at",
	},
	UserSession: struct {
		ID, UserID, SessionToken, ExpiresAt, CreatedAt string

		User string
	}{
		ID:           "id",
		UserID:       "user_id",
		SessionToken: "session_token",
		ExpiresAt:    "expires_at",
		CreatedAt:    "created_at",

		User: "User",
	},
	PostView: struct {
		ID, PostID, IPAddress, UserAgent, ViewedAt string
	}{
		ID:        "id",
		PostID:    "post_id",
		IPAddress: "ip_address",
		UserAgent: "user_agent",
		ViewedAt:  "viewed_at",
	},
	PageView: struct {
		ID, Path, IPAddress, UserAgent, Referer, ViewedAt string
	}{
		ID:        "id",
		Path:      "path",
		IPAddress: "ip_address",
		UserAgent: "user_agent",
		Referer:   "referer",
		ViewedAt:  "viewed_at",
	},
	SearchQuery: struct {
		ID, Query, ResultsCount, SearchedAt string
	}{
		ID:           "id",
		Query:        "query",
		ResultsCount: "results_count",
		SearchedAt:   "searched_at",
	},
}

var Tables = struct {
	User struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	Media struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	PostTag struct {
		Name, Alias string
	}
	Comment struct {
		Name, Alias string
	}
	SiteSettings struct {
		Name, Alias string
	}
	UserSession struct {
		Name, Alias string
	}
	PostView struct {
		Name, Alias string
	}
	PageView struct {
		Name, Alias string
	}
	SearchQuery struct {
		Name, Alias string
	}
}{
	User: struct {
		Name, Alias string
	}{
		Name:  "users",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	Media: struct {
		Name, Alias string
	}{
		Name:  "media",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	PostTag: struct {
		Name, Alias string
	}{
		Name:  "post_tags",
		Alias: "t",
	},
	Comment: struct {
		Name, Alias string
	}{
		Name:  "comments",
		Alias: "t",
	},
	SiteSettings: struct {
		Name, Alias string
	}{
		Name:  "site_settings",
		Alias: "t",
	},
	UserSession: struct {
		Name, Alias string
	}{
		Name:  "user_sessions",
		Alias: "t",
	},
	PostView: struct {
		Name, Alias string
	}{
		Name:  "post_views",
		Alias: "t",
	},
	PageView: struct {
		Name, Alias string
	}{
		Name:  "page_views",
		Alias: "t",
	},
	SearchQuery: struct {
		Name, Alias string
	}{
		Name:  "search_queries",
		Alias: "t",
	},
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID                     int        `pg:"id,pk"`
	Email                  string     `pg:"email,use_zero"`
	Username               string     `pg:"username,use_zero"`
	PasswordHash           string     `pg:"password_hash,use_zero"`
	FirstName              string     `pg:"first_name,use_zero"`
	LastName               string     `pg:"last_name,use_zero"`
	Role                   string     `pg:"role,use_zero"`
	Bio                    *string    `pg:"bio"`
	AvatarURL              *string    `pg:"avatar_url"`
	IsActive               bool       `pg:"is_active,use_zero"`
	EmailVerified          bool       `pg:"email_verified,use_zero"`
	EmailVerificationToken *string    `pg:"email_verification_token"`
	PasswordResetToken     *string    `pg:"password_reset_token"`
	PasswordResetExpires   *time.Time `pg:"password_reset_expires"`
	CreatedAt              time.Time  `pg:"created_at"`
	UpdatedAt              time.Time  `pg:"updated_at"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Name        string    `pg:"name,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Description *string   `pg:"description"`
	Color       *string   `pg:"color"`
	CreatedAt   time.Time `pg:"created_at"`
	UpdatedAt   time.Time `pg:"updated_at"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Slug      string    `pg:"slug,use_zero"`
	CreatedAt time.Time `pg:"created_at"`
	UpdatedAt time.Time `pg:"updated_at"`
}

type Media struct {
	tableName struct{} `pg:"media,alias:t,discard_unknown_columns"`

	ID            int       `pg:"id,pk"`
	Filename      string    `pg:"filename,use_zero"`
	OriginalName  string    `pg:"original_name,use_zero"`
	FilePath      string    `pg:"file_path,use_zero"`
	FileSize      int       `pg:"file_size,use_zero"`
	MimeType      string    `pg:"mime_type,use_zero"`
	MediaType     string    `pg:"media_type,use_zero"`
	AltText       *string   `pg:"alt_text"`
	ThumbnailPath *string   `pg:"thumbnail_path"`
	UploadedBy    int       `pg:"uploaded_by,use_zero"`
	CreatedAt     time.Time `pg:"created_at"`

	Uploader *User `pg:"fk:uploaded_by,rel:has-one"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID              int        `pg:"id,pk"`
	Title           string     `pg:"title,use_zero"`
	Slug            string     `pg:"slug,use_zero"`
	Excerpt         *string    `pg:"excerpt"`
	Content         string     `pg:"content,use_zero"`
	FeaturedImageID *int       `pg:"featured_image_id"`
	AuthorID        int        `pg:"author_id,use_zero"`
	CategoryID      *int       `pg:"category_id"`
	Status          string     `pg:"status,use_zero"`
	IsFeatured      bool       `pg:"is_featured,use_zero"`
	ViewCount       int        `pg:"view_count,use_zero"`
	AllowComments   bool       `pg:"allow_comments,use_zero"`
	MetaTitle       *string    `pg:"meta_title"`
	MetaDescription *string    `pg:"meta_description"`
	PublishedAt     *time.Time `pg:"published_at"`
	ScheduledAt     *time.Time `pg:"scheduled_at"`
	CreatedAt       time.Time  `pg:"created_at"`
	UpdatedAt       time.Time  `pg:"updated_at"`

	Author        *User     `pg:"fk:author_id,rel:has-one"`
	Category      *Category `pg:"fk:category_id,rel:has-one"`
	FeaturedImage *Media    `pg:"fk:featured_image_id,rel:has-one"`
}

type PostTag struct {
	tableName struct{} `pg:"post_tags,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	PostID    int       `pg:"post_id,use_zero"`
	TagID     int       `pg:"tag_id,use_zero"`
	CreatedAt time.Time `pg:"created_at"`
}

type Comment struct {
	tableName struct{} `pg:"comments,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	PostID      int       `pg:"post_id,use_zero"`
	ParentID    *int      `pg:"parent_id"`
	AuthorName  string    `pg:"author_name,use_zero"`
	AuthorEmail string    `pg:"author_email,use_zero"`
	AuthorURL   *string   `pg:"author_url"`
	Content     string    `pg:"content,use_zero"`
	IsApproved  bool      `pg:"is_approved,use_zero"`
	IsSpam      bool      `pg:"is_spam,use_zero"`
	IPAddress   *string   `pg:"ip_address"`
	CreatedAt   time.Time `pg:"created_at"`
	UpdatedAt   time.Time `pg:"updated_at"`

	Post *Post `pg:"fk:post_id,rel:has-one"`
}

type SiteSettings struct {
	tableName struct{} `pg:"site_settings,alias:t,discard_unknown_columns"`

	ID                     int       `pg:"id,pk"`
	SiteTitle              string    `pg:"site_title,use_zero"`
	SiteDescription        *string   `pg:"site_description"`
	SiteLogoURL            *string   `pg:"site_logo_url"`
	Theme                  string    `pg:"theme,use_zero"`
	PostsPerPage           int       `pg:"posts_per_page,use_zero"`
	AllowComments          bool      `pg:"allow_comments,use_zero"`
	RequireCommentApproval bool      `pg:"require_comment_approval,use_zero"`
	GoogleAnalyticsID      *string   `pg:"google_analytics_id"`
	MetaKeywords           *string   `pg:"meta_keywords"`
	SocialFacebook         *string   `pg:"social_facebook"`
	SocialTwitter          *string   `pg:"social_twitter"`
	SocialInstagram        *string   `pg:"social_instagram"`
	UpdatedAt              time.Time `pg:"updated_at"`
}

type UserSession struct {
	tableName struct{} `pg:"user_sessions,alias:t,discard_unknown_columns"`

	ID           int       `pg:"id,pk"`
	UserID       int       `pg:"user_id,use_zero"`
	SessionToken string    `pg:"session_token,use_zero"`
	ExpiresAt    time.Time `pg:"expires_at,use_zero"`
	CreatedAt    time.Time `pg:"created_at"`

	User *User `pg:"fk:user_id,rel:has-one"`
}

type PostView struct {
	tableName struct{} `pg:"post_views,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	PostID    int       `pg:"post_id,use_zero"`
	IPAddress string    `pg:"ip_address,use_zero"`
	UserAgent *string   `pg:"user_agent"`
	ViewedAt  time.Time `pg:"viewed_at"`
}

type PageView struct {
	tableName struct{} `pg:"page_views,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Path      string    `pg:"path,use_zero"`
	IPAddress string    `pg:"ip_address,use_zero"`
	UserAgent *string   `pg:"user_agent"`
	Referer   *string   `pg:"referer"`
	ViewedAt  time.Time `pg:"viewed_at"`
}

type SearchQuery struct {
	tableName struct{} `pg:"search_queries,alias:t,discard_unknown_columns"`

	ID           int       `pg:"id,pk"`
	Query        string    `pg:"query,use_zero"`
	ResultsCount int       `pg:"results_count,use_zero"`
	SearchedAt   time.Time `pg:"searched_at"`
}
