package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// SiteSettingsID is the primary key of the only site_settings row.
const SiteSettingsID = 1

func (r *Repository) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	return r.siteSettings(ctx, false)
}

// SiteSettingsForUpdate reads the settings row and locks it until the transaction ends.
func (r *Repository) SiteSettingsForUpdate(ctx context.Context) (*SiteSettings, error) {
	return r.siteSettings(ctx, true)
}

func (r *Repository) siteSettings(ctx context.Context, lock bool) (*SiteSettings, error) {
	settings := &SiteSettings{}
	q := r.db.ModelContext(ctx, settings).
		Where(`"t"."id" = ?`, SiteSettingsID)
	if lock {
		q = q.For("UPDATE")
	}

	err := q.Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return settings, nil
}

// SaveSiteSettings writes the singleton row, creating it when missing.
func (r *Repository) SaveSiteSettings(ctx context.Context, settings *SiteSettings) (*SiteSettings, error) {
	settings.ID = SiteSettingsID
	settings.UpdatedAt = time.Now()

	_, err := r.db.ModelContext(ctx, settings).
		OnConflict("(id) DO UPDATE").
		Returning("*").
		Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to save site settings: %w", err)
	}

	return settings, nil
}

// DefaultSiteSettings mirrors the column defaults of site_settings.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:                     SiteSettingsID,
		SiteTitle:              "My Blog",
		Theme:                  "light",
		PostsPerPage:           10,
		AllowComments:          true,
		RequireCommentApproval: true,
	}
}
