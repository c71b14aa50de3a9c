package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

// SettingsService manages the site settings.
type SettingsService struct {
	zenrpc.Service
	settings *blog.SettingsManager
}

func NewSettingsService(settings *blog.SettingsManager) *SettingsService {
	return &SettingsService{settings: settings}
}

// GetSiteSettings returns all settings.
func (s *SettingsService) GetSiteSettings(ctx context.Context) (*SiteSettings, error) {
	settings, err := s.settings.SiteSettings(ctx)
	if err != nil {
		return nil, newError(err)
	}

	result := NewSiteSettings(*settings)
	return &result, nil
}

// GetPublicSettings returns the settings visitors may read.
func (s *SettingsService) GetPublicSettings(ctx context.Context) (*PublicSettings, error) {
	settings, err := s.settings.PublicSettings(ctx)
	if err != nil {
		return nil, newError(err)
	}

	result := NewPublicSettings(*settings)
	return &result, nil
}

// UpdateSiteSettings changes the given settings. Empty optional values clear them.
//
//zenrpc:settings fields to change
//zenrpc:400 validation failed
func (s *SettingsService) UpdateSiteSettings(ctx context.Context, settings SettingsUpdate) (*SiteSettings, error) {
	if err := checkInput(settings); err != nil {
		return nil, err
	}

	updated, err := s.settings.UpdateSiteSettings(ctx, settings.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewSiteSettings(*updated)
	return &result, nil
}

// ResetToDefault restores the default settings.
func (s *SettingsService) ResetToDefault(ctx context.Context) (*SiteSettings, error) {
	settings, err := s.settings.ResetToDefault(ctx)
	if err != nil {
		return nil, newError(err)
	}

	result := NewSiteSettings(*settings)
	return &result, nil
}

// UpdateTheme switches the site theme.
//
//zenrpc:theme theme name
func (s *SettingsService) UpdateTheme(ctx context.Context, theme string) (Success, error) {
	if err := s.settings.UpdateTheme(ctx, theme); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// ValidateGoogleAnalytics checks the format of a Google Analytics id.
//
//zenrpc:gaId UA-XXXXXXX-X or G-XXXXXXXXXX id
func (s *SettingsService) ValidateGoogleAnalytics(_ context.Context, gaId string) (Validity, error) {
	return Validity{Valid: blog.ValidGoogleAnalyticsID(gaId)}, nil
}
