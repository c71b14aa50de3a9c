package rest

import "time"

// FeedRequest holds the query of GET /v1/feed; fields are decoded by their snake_case names.
type FeedRequest struct {
	Page       int
	Limit      int
	Search     string
	CategoryID int
	TagID      int
	AuthorID   int
	Featured   bool
}

type FeedItem struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Excerpt          *string    `json:"excerpt"`
	Author           string     `json:"author"`
	Category         *Category  `json:"category"`
	Tags             []Tag      `json:"tags"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	IsFeatured       bool       `json:"is_featured"`
	ViewCount        int        `json:"view_count"`
	CommentsCount    int        `json:"comments_count"`
	PublishedAt      *time.Time `json:"published_at"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Feed struct {
	Data       []FeedItem `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Media struct {
	ID           int       `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	FilePath     string    `json:"file_path"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	FileSize     int       `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	MediaType    string    `json:"media_type"`
	AltText      *string   `json:"alt_text"`
	UploadedBy   int       `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type Health struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
