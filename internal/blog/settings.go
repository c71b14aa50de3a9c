package blog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

var gaIDRe = regexp.MustCompile(`^UA-\d{4,10}-\d{1,4}$|^G-[A-Z0-9]{4,12}$`)

// ValidGoogleAnalyticsID accepts Universal Analytics (UA-XXXX-Y) and GA4 (G-XXXXXXXX) measurement IDs.
func ValidGoogleAnalyticsID(id string) bool {
	return gaIDRe.MatchString(id)
}

// PublicSettings is the part of the site settings anonymous visitors may read.
type PublicSettings struct {
	SiteTitle       string
	SiteDescription *string
	SiteLogoURL     *string
	Theme           string
	PostsPerPage    int
	AllowComments   bool
	SocialFacebook  *string
	SocialTwitter   *string
	SocialInstagram *string
}

type SettingsManager struct {
	*base
}

// SiteSettings returns the stored settings or the defaults when none were saved yet.
func (m *SettingsManager) SiteSettings(ctx context.Context) (*db.SiteSettings, error) {
	return loadSettings(ctx, m.db)
}

func (m *SettingsManager) PublicSettings(ctx context.Context) (*PublicSettings, error) {
	s, err := loadSettings(ctx, m.db)
	if err != nil {
		return nil, err
	}

	return &PublicSettings{
		SiteTitle:       s.SiteTitle,
		SiteDescription: s.SiteDescription,
		SiteLogoURL:     s.SiteLogoURL,
		Theme:           s.Theme,
		PostsPerPage:    s.PostsPerPage,
		AllowComments:   s.AllowComments,
		SocialFacebook:  s.SocialFacebook,
		SocialTwitter:   s.SocialTwitter,
		SocialInstagram: s.SocialInstagram,
	}, nil
}

func (m *SettingsManager) UpdateSiteSettings(ctx context.Context, in UpdateSettingsInput) (*db.SiteSettings, error) {
	if in.GoogleAnalyticsID != nil && *in.GoogleAnalyticsID != "" && !ValidGoogleAnalyticsID(*in.GoogleAnalyticsID) {
		return nil, invalidInput("invalid Google Analytics ID %q", *in.GoogleAnalyticsID)
	}

	var saved *db.SiteSettings
	err := m.db.RunInTx(ctx, func(tx *db.Repository) error {
		s, err := tx.SiteSettingsForUpdate(ctx)
		if err != nil {
			return fmt.Errorf("db get site settings: %w", err)
		} else if s == nil {
			defaults := db.DefaultSiteSettings()
			s = &defaults
		}

		if in.SiteTitle != nil {
			s.SiteTitle = strings.TrimSpace(*in.SiteTitle)
		}
		if in.Theme != nil {
			if s.Theme, err = normalizeTheme(*in.Theme); err != nil {
				return err
			}
		}
		if in.PostsPerPage != nil {
			s.PostsPerPage = *in.PostsPerPage
		}
		if in.AllowComments != nil {
			s.AllowComments = *in.AllowComments
		}
		if in.RequireCommentApproval != nil {
			s.RequireCommentApproval = *in.RequireCommentApproval
		}

		for dst, src := range map[**string]*string{
			&s.SiteDescription:   in.SiteDescription,
			&s.SiteLogoURL:       in.SiteLogoURL,
			&s.GoogleAnalyticsID: in.GoogleAnalyticsID,
			&s.MetaKeywords:      in.MetaKeywords,
			&s.SocialFacebook:    in.SocialFacebook,
			&s.SocialTwitter:     in.SocialTwitter,
			&s.SocialInstagram:   in.SocialInstagram,
		} {
			if src != nil {
				*dst = clearable(src)
			}
		}

		saved, err = tx.SaveSiteSettings(ctx, s)
		if err != nil {
			return fmt.Errorf("db save site settings: %w", err)
		}

		return nil
	})

	return saved, err
}

// ResetToDefault overwrites every setting with its default value.
func (m *SettingsManager) ResetToDefault(ctx context.Context) (*db.SiteSettings, error) {
	defaults := db.DefaultSiteSettings()

	saved, err := m.db.SaveSiteSettings(ctx, &defaults)
	if err != nil {
		return nil, fmt.Errorf("db save site settings: %w", err)
	}

	m.logger.InfoContext(ctx, "site settings reset to defaults")
	return saved, nil
}

func (m *SettingsManager) UpdateTheme(ctx context.Context, theme string) error {
	_, err := m.UpdateSiteSettings(ctx, UpdateSettingsInput{Theme: &theme})
	return err
}

func normalizeTheme(theme string) (string, error) {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if theme == "" || len(theme) > 50 {
		return "", invalidInput("theme must be 1-50 characters")
	}
	return theme, nil
}

func loadSettings(ctx context.Context, repo *db.Repository) (*db.SiteSettings, error) {
	s, err := repo.SiteSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get site settings: %w", err)
	} else if s == nil {
		defaults := db.DefaultSiteSettings()
		return &defaults, nil
	}

	return s, nil
}
