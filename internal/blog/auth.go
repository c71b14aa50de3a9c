package blog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

type AuthManager struct {
	*base
	notifier Notifier
}

// Register creates an account with the public_user role. Only an admin caller may pick another role.
func (m *AuthManager) Register(ctx context.Context, in CreateUserInput) (*db.User, error) {
	if !PrincipalFromContext(ctx).Can(RoleAdmin) || in.Role == "" {
		in.Role = RolePublic
	}

	return createUser(ctx, m.base, m.notifier, in)
}

// Login checks the credentials and opens a new session.
func (m *AuthManager) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := m.db.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	}

	if user == nil || !user.IsActive || !checkPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := randomToken()
	if err != nil {
		return nil, err
	}

	session, err := m.db.CreateSession(ctx, &db.UserSession{
		UserID:       user.ID,
		SessionToken: token,
		ExpiresAt:    m.now().Add(m.opts.SessionTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("db create session: %w", err)
	}

	m.logger.InfoContext(ctx, "user logged in", "userId", user.ID)

	return &Session{User: *user, Token: session.SessionToken, ExpiresAt: session.ExpiresAt}, nil
}

// Logout removes the session and reports whether it existed.
func (m *AuthManager) Logout(ctx context.Context, token string) (bool, error) {
	deleted, err := m.db.DeleteSession(ctx, token)
	if err != nil {
		return false, fmt.Errorf("db delete session: %w", err)
	}

	return deleted, nil
}

func (m *AuthManager) VerifyEmail(ctx context.Context, token string) error {
	user, err := m.db.UserByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("db get user by verification token: %w", err)
	} else if user == nil {
		return ErrExpiredToken
	}

	user.EmailVerified = true
	user.EmailVerificationToken = nil

	if _, err := m.db.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("db update user: %w", err)
	}

	return nil
}

// RequestPasswordReset issues a reset token. It succeeds whether or not the account exists.
func (m *AuthManager) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := m.db.UserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return fmt.Errorf("db get user by email: %w", err)
	} else if user == nil || !user.IsActive {
		return nil
	}

	token, err := randomToken()
	if err != nil {
		return err
	}

	expires := m.now().Add(m.opts.ResetTokenTTL)
	user.PasswordResetToken = &token
	user.PasswordResetExpires = &expires

	if _, err := m.db.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("db update user: %w", err)
	}

	if err := m.notifier.PasswordReset(ctx, *user, token); err != nil {
		m.logger.ErrorContext(ctx, "failed to send password reset", "userId", user.ID, "error", err)
	}

	return nil
}

// ResetPassword sets a new password and signs the user out everywhere.
func (m *AuthManager) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	return m.db.RunInTx(ctx, func(tx *db.Repository) error {
		user, err := tx.UserByResetToken(ctx, token)
		if err != nil {
			return fmt.Errorf("db get user by reset token: %w", err)
		}

		if user == nil || user.PasswordResetExpires == nil || !user.PasswordResetExpires.After(m.now()) {
			return ErrExpiredToken
		}

		user.PasswordHash = hash
		user.PasswordResetToken = nil
		user.PasswordResetExpires = nil

		if _, err := tx.UpdateUser(ctx, user); err != nil {
			return fmt.Errorf("db update user: %w", err)
		}

		if err := tx.DeleteUserSessions(ctx, user.ID); err != nil {
			return fmt.Errorf("db delete user sessions: %w", err)
		}

		return nil
	})
}

// CurrentUser returns the owner of a live session, or nil.
func (m *AuthManager) CurrentUser(ctx context.Context, token string) (*db.User, error) {
	_, user, err := m.Authenticate(ctx, token)
	return user, err
}

// Authenticate resolves a session token. Unknown, expired or deactivated sessions yield nil.
func (m *AuthManager) Authenticate(ctx context.Context, token string) (*Principal, *db.User, error) {
	if token == "" {
		return nil, nil, nil
	}

	session, err := m.db.SessionByToken(ctx, token)
	if err != nil {
		return nil, nil, fmt.Errorf("db get session: %w", err)
	} else if session == nil || session.User == nil {
		return nil, nil, nil
	}

	if !session.ExpiresAt.After(m.now()) {
		if _, err := m.db.DeleteSession(ctx, token); err != nil {
			m.logger.WarnContext(ctx, "failed to drop expired session", "error", err)
		}
		return nil, nil, nil
	}

	if !session.User.IsActive {
		return nil, nil, nil
	}

	principal := &Principal{
		UserID: session.UserID,
		Role:   Role(session.User.Role),
		Token:  token,
	}

	return principal, session.User, nil
}

// CleanupSessions removes every expired session.
func (m *AuthManager) CleanupSessions(ctx context.Context) (int, error) {
	count, err := m.db.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("db delete expired sessions: %w", err)
	}

	return count, nil
}

func createUser(ctx context.Context, b *base, notifier Notifier, in CreateUserInput) (*db.User, error) {
	if !in.Role.Valid() {
		return nil, invalidInput("unknown role %q", in.Role)
	}

	email := normalizeEmail(in.Email)
	existing, err := b.db.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get user by email: %w", err)
	} else if existing != nil {
		return nil, conflict("email is already registered")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	token, err := randomToken()
	if err != nil {
		return nil, err
	}

	user, err := b.db.CreateUser(ctx, &db.User{
		Email:                  email,
		Username:               strings.TrimSpace(in.Username),
		PasswordHash:           hash,
		FirstName:              in.FirstName,
		LastName:               in.LastName,
		Role:                   string(in.Role),
		Bio:                    clearable(in.Bio),
		AvatarURL:              clearable(in.AvatarURL),
		IsActive:               true,
		EmailVerificationToken: &token,
	})
	if db.IsUniqueViolation(err) {
		return nil, conflict("email or username is already taken")
	} else if err != nil {
		return nil, fmt.Errorf("db create user: %w", err)
	}

	if err := notifier.EmailVerification(ctx, *user, token); err != nil {
		b.logger.ErrorContext(ctx, "failed to send email verification", "userId", user.ID, "error", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", invalidInput("password is too long")
	} else if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func randomToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return hex.EncodeToString(b), nil
}
