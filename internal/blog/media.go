package blog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/daniilsolovey/blog-cms/internal/imaging"
	"github.com/google/uuid"
)

const (
	mediaSearchLimit = 50
	thumbnailPrefix  = "thumbnails/"
)

var errNoStorage = errors.New("media storage is not configured")

// Upload is a file received over HTTP.
type Upload struct {
	Body         io.Reader
	Size         int64
	OriginalName string
	ContentType  string
	AltText      *string
}

type MediaManager struct {
	*base
	storage Storage
}

// UploadMedia registers a file that is already in storage.
func (m *MediaManager) UploadMedia(ctx context.Context, in UploadMediaInput, uploaderID int) (*db.Media, error) {
	if err := checkUploader(ctx, uploaderID); err != nil {
		return nil, err
	}

	mediaType := in.MediaType
	if mediaType == "" {
		mediaType = MediaTypeFor(in.MimeType)
	}

	media, err := m.db.CreateMedia(ctx, &db.Media{
		Filename:     in.Filename,
		OriginalName: in.OriginalName,
		FilePath:     in.FilePath,
		FileSize:     in.FileSize,
		MimeType:     in.MimeType,
		MediaType:    mediaType,
		AltText:      clearable(in.AltText),
		UploadedBy:   uploaderID,
	})
	if db.IsForeignKeyViolation(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db create media: %w", err)
	}

	return media, nil
}

// StoreUpload saves the file, registers it and renders a thumbnail for images.
func (m *MediaManager) StoreUpload(ctx context.Context, up Upload, uploaderID int) (*db.Media, error) {
	if m.storage == nil {
		return nil, errNoStorage
	}
	if err := checkUploader(ctx, uploaderID); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(up.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	} else if len(data) == 0 {
		return nil, invalidInput("file is empty")
	}

	contentType := up.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	contentType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])

	key := uuid.NewString() + fileExt(up.OriginalName, contentType)
	if err := m.storage.Put(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	media, err := m.UploadMedia(ctx, UploadMediaInput{
		Filename:     key,
		OriginalName: path.Base(up.OriginalName),
		FilePath:     key,
		FileSize:     len(data),
		MimeType:     contentType,
		AltText:      up.AltText,
	}, uploaderID)
	if err != nil {
		if delErr := m.storage.Delete(ctx, key); delErr != nil {
			m.logger.ErrorContext(ctx, "failed to remove orphaned upload", "key", key, "error", delErr)
		}
		return nil, err
	}

	if media.MediaType == MediaImage {
		if _, err := m.renderThumbnail(ctx, media, bytes.NewReader(data)); err != nil {
			m.logger.WarnContext(ctx, "thumbnail generation failed", "mediaId", media.ID, "error", err)
		}
	}

	return media, nil
}

func (m *MediaManager) MediaLibrary(ctx context.Context, params ListParams, mediaType *string) (Page[db.Media], error) {
	list, total, err := m.db.MediaLibrary(ctx, db.MediaSearch{MediaType: mediaType}, params.pager())
	if err != nil {
		return Page[db.Media]{}, fmt.Errorf("db get media library: %w", err)
	}

	return Page[db.Media]{Items: list, Pagination: NewPagination(params, total)}, nil
}

func (m *MediaManager) MediaByID(ctx context.Context, id int) (*db.Media, error) {
	media, err := m.db.MediaByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get media by id: %w", err)
	} else if media == nil {
		return nil, ErrMediaNotFound
	}

	return media, nil
}

// UpdateMedia changes the alt text. Only the uploader or an editor may do it.
func (m *MediaManager) UpdateMedia(ctx context.Context, id int, altText *string) (*db.Media, error) {
	media, err := m.ownedMedia(ctx, id)
	if err != nil {
		return nil, err
	}

	media.AltText = clearable(altText)
	updated, err := m.db.UpdateMedia(ctx, media)
	if err != nil {
		return nil, fmt.Errorf("db update media: %w", err)
	}

	return updated, nil
}

// DeleteMedia removes a media file. A file used as a featured image is only
// removed with force, which detaches it from those posts first.
func (m *MediaManager) DeleteMedia(ctx context.Context, id int, force bool) error {
	media, err := m.ownedMedia(ctx, id)
	if err != nil {
		return err
	}

	err = m.db.RunInTx(ctx, func(tx *db.Repository) error {
		posts, err := tx.PostsWithFeaturedImage(ctx, id)
		if err != nil {
			return fmt.Errorf("db get posts with featured image: %w", err)
		}

		if len(posts) > 0 {
			if !force {
				return conflict("media is the featured image of %d posts", len(posts))
			}
			if _, err := tx.ClearFeaturedImage(ctx, id); err != nil {
				return fmt.Errorf("db clear featured image: %w", err)
			}
		}

		if _, err := tx.DeleteMedia(ctx, id); err != nil {
			return fmt.Errorf("db delete media: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if m.storage != nil {
		keys := []string{media.FilePath}
		if media.ThumbnailPath != nil {
			keys = append(keys, *media.ThumbnailPath)
		}
		for _, key := range keys {
			if err := m.storage.Delete(ctx, key); err != nil {
				m.logger.WarnContext(ctx, "failed to delete stored file", "key", key, "error", err)
			}
		}
	}

	return nil
}

// MediaUsage lists posts that show the file as featured image or reference it in their content.
func (m *MediaManager) MediaUsage(ctx context.Context, id int) (MediaUsage, error) {
	media, err := m.MediaByID(ctx, id)
	if err != nil {
		return MediaUsage{}, err
	}

	featured, err := m.db.PostsWithFeaturedImage(ctx, id)
	if err != nil {
		return MediaUsage{}, fmt.Errorf("db get posts with featured image: %w", err)
	}

	referencing, err := m.db.PostsReferencing(ctx, m.usageNeedles(media))
	if err != nil {
		return MediaUsage{}, fmt.Errorf("db get posts referencing media: %w", err)
	}

	usage := MediaUsage{Posts: make([]MediaUsagePost, 0, len(featured)+len(referencing))}
	for _, p := range featured {
		usage.Posts = append(usage.Posts, MediaUsagePost{ID: p.ID, Title: p.Title, UsageType: UsageFeatured})
	}
	for _, p := range referencing {
		usage.Posts = append(usage.Posts, MediaUsagePost{ID: p.ID, Title: p.Title, UsageType: UsageContent})
	}
	usage.TotalUsage = len(usage.Posts)

	return usage, nil
}

// SearchMedia matches file names and alt text.
func (m *MediaManager) SearchMedia(ctx context.Context, query string, mediaType *string) ([]db.Media, error) {
	query = strings.TrimSpace(query)
	list, err := m.db.SearchMedia(ctx, db.MediaSearch{Query: &query, MediaType: mediaType}, mediaSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("db search media: %w", err)
	}

	return list, nil
}

// GenerateThumbnail renders the thumbnail of an image and returns its URL.
func (m *MediaManager) GenerateThumbnail(ctx context.Context, id int) (string, error) {
	if m.storage == nil {
		return "", errNoStorage
	}

	media, err := m.MediaByID(ctx, id)
	if err != nil {
		return "", err
	} else if media.MediaType != MediaImage {
		return "", invalidInput("thumbnails are only available for images")
	}

	original, err := m.storage.Get(ctx, media.FilePath)
	if err != nil {
		return "", fmt.Errorf("load original: %w", err)
	}
	defer original.Close()

	data, err := io.ReadAll(original)
	if err != nil {
		return "", fmt.Errorf("read original: %w", err)
	}

	return m.renderThumbnail(ctx, media, bytes.NewReader(data))
}

func (m *MediaManager) renderThumbnail(ctx context.Context, media *db.Media, src io.ReadSeeker) (string, error) {
	thumb, err := imaging.Render(src, m.opts.ThumbnailWidth)
	if err != nil {
		return "", invalidInput("cannot render thumbnail: %v", err)
	}

	key := thumbnailPrefix + strings.TrimSuffix(media.FilePath, path.Ext(media.FilePath)) + thumb.Ext
	if err := m.storage.Put(ctx, key, thumb.ContentType, bytes.NewReader(thumb.Data), int64(len(thumb.Data))); err != nil {
		return "", fmt.Errorf("store thumbnail: %w", err)
	}

	media.ThumbnailPath = &key
	if _, err := m.db.UpdateMedia(ctx, media); err != nil {
		return "", fmt.Errorf("db update media: %w", err)
	}

	return m.storage.URL(key), nil
}

// FileURL returns the public address of a stored file.
func (m *MediaManager) FileURL(key string) string {
	if m.storage == nil {
		return key
	}
	return m.storage.URL(key)
}

func (m *MediaManager) ownedMedia(ctx context.Context, id int) (*db.Media, error) {
	media, err := m.MediaByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) && !p.Owns(media.UploadedBy) {
		return nil, ErrForbidden
	}

	return media, nil
}

func (m *MediaManager) usageNeedles(media *db.Media) []string {
	needles := []string{media.FilePath}
	if m.storage != nil {
		if url := m.storage.URL(media.FilePath); url != media.FilePath {
			needles = append(needles, url)
		}
	}
	return needles
}

func checkUploader(ctx context.Context, uploaderID int) error {
	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) && !p.Owns(uploaderID) {
		return fmt.Errorf("%w: media can only be uploaded on your own behalf", ErrForbidden)
	}
	return nil
}

// MediaTypeFor maps a MIME type to a media kind.
func MediaTypeFor(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaVideo
	default:
		return MediaDocument
	}
}

func fileExt(name, contentType string) string {
	if ext := strings.ToLower(path.Ext(name)); ext != "" && len(ext) <= 6 {
		return ext
	}

	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "application/pdf":
		return ".pdf"
	}
	return ""
}
