package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/vmkteam/zenrpc/v2"
)

// MediaService manages the media library.
type MediaService struct {
	zenrpc.Service
	media *blog.MediaManager
}

func NewMediaService(media *blog.MediaManager) *MediaService {
	return &MediaService{media: media}
}

// UploadMedia registers a file that is already in storage. Multipart uploads go to POST /v1/media.
//
//zenrpc:media stored file description
//zenrpc:uploaderId owner of the file, the caller when omitted
//zenrpc:403 media can only be uploaded on your own behalf
func (s *MediaService) UploadMedia(ctx context.Context, media MediaInput, uploaderId *int) (*Media, error) {
	if err := checkInput(media); err != nil {
		return nil, err
	}

	uploader := 0
	if uploaderId != nil {
		uploader = *uploaderId
	} else if p := blog.PrincipalFromContext(ctx); p != nil {
		uploader = p.UserID
	}

	return s.result(s.media.UploadMedia(ctx, media.ToModel(), uploader))
}

// GetMediaLibrary lists media files, newest first.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:limit=20 items per page
//zenrpc:mediaType optional image, video or document filter
func (s *MediaService) GetMediaLibrary(ctx context.Context, page, limit *int, mediaType *string) (*MediaPage, error) {
	if err := checkPaging(page, limit); err != nil {
		return nil, err
	}
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	list, err := s.media.MediaLibrary(ctx, listParams(page, limit, defaultLibraryLimit), mediaType)
	if err != nil {
		return nil, newError(err)
	}

	result := NewMediaPage(list, s.media.FileURL)
	return &result, nil
}

// GetMediaByID returns a media file.
//
//zenrpc:id media id
//zenrpc:404 media not found
func (s *MediaService) GetMediaByID(ctx context.Context, id int) (*Media, error) {
	return s.result(s.media.MediaByID(ctx, id))
}

// UpdateMedia changes the alt text. An empty text clears it.
//
//zenrpc:id media id
//zenrpc:altText new alt text
//zenrpc:403 media belongs to another user
//zenrpc:404 media not found
func (s *MediaService) UpdateMedia(ctx context.Context, id int, altText *string) (*Media, error) {
	return s.result(s.media.UpdateMedia(ctx, id, altText))
}

// DeleteMedia removes a file. A featured image is only removed with force.
//
//zenrpc:id media id
//zenrpc:force detach the file from posts that feature it
//zenrpc:404 media not found
//zenrpc:409 media is a featured image
func (s *MediaService) DeleteMedia(ctx context.Context, id int, force *bool) (Success, error) {
	if err := s.media.DeleteMedia(ctx, id, force != nil && *force); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// GetMediaUsage lists the posts that feature or embed a file.
//
//zenrpc:id media id
//zenrpc:404 media not found
func (s *MediaService) GetMediaUsage(ctx context.Context, id int) (*MediaUsage, error) {
	usage, err := s.media.MediaUsage(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewMediaUsage(usage)
	return &result, nil
}

// SearchMedia matches file names and alt text.
//
//zenrpc:query search phrase
//zenrpc:mediaType optional image, video or document filter
func (s *MediaService) SearchMedia(ctx context.Context, query string, mediaType *string) ([]Media, error) {
	if err := checkMediaType(mediaType); err != nil {
		return nil, err
	}

	list, err := s.media.SearchMedia(ctx, query, mediaType)
	if err != nil {
		return nil, newError(err)
	}

	return NewMediaList(list, s.media.FileURL), nil
}

// GenerateThumbnail renders the thumbnail of an image.
//
//zenrpc:id media id
//zenrpc:400 thumbnails are only available for images
//zenrpc:404 media not found
func (s *MediaService) GenerateThumbnail(ctx context.Context, id int) (*Thumbnail, error) {
	url, err := s.media.GenerateThumbnail(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	return &Thumbnail{ThumbnailURL: url}, nil
}

func (s *MediaService) result(m *db.Media, err error) (*Media, error) {
	if err != nil {
		return nil, newError(err)
	}

	result := NewMedia(*m, s.media.FileURL)
	return &result, nil
}

func checkMediaType(mediaType *string) error {
	if mediaType == nil {
		return nil
	}
	return checkVar("mediaType", *mediaType, "oneof=image video document")
}

func checkPaging(page, limit *int) error {
	if page != nil {
		if err := checkVar("page", *page, "min=1,max=100000"); err != nil {
			return err
		}
	}
	if limit != nil {
		return checkVar("limit", *limit, "min=1,max=100")
	}

	return nil
}
