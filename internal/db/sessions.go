package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) CreateSession(ctx context.Context, session *UserSession) (*UserSession, error) {
	_, err := r.db.ModelContext(ctx, session).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return session, nil
}

// SessionByToken returns the session with its user, expired or not.
func (r *Repository) SessionByToken(ctx context.Context, token string) (*UserSession, error) {
	session := &UserSession{}
	err := r.db.ModelContext(ctx, session).
		Relation("User").
		Where(`"t"."session_token" = ?`, token).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session, nil
}

func (r *Repository) DeleteSession(ctx context.Context, token string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*UserSession)(nil)).
		Where(`"session_token" = ?`, token).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) DeleteUserSessions(ctx context.Context, userID int) error {
	_, err := r.db.ModelContext(ctx, (*UserSession)(nil)).
		Where(`"user_id" = ?`, userID).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}

	return nil
}

func (r *Repository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ModelContext(ctx, (*UserSession)(nil)).
		Where(`"expires_at" <= ?`, now).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return res.RowsAffected(), nil
}
