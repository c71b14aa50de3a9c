package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

// AuthService provides account registration and sessions.
type AuthService struct {
	zenrpc.Service
	auth *blog.AuthManager
}

func NewAuthService(auth *blog.AuthManager) *AuthService {
	return &AuthService{auth: auth}
}

// Register creates an account with the public_user role unless an admin picks another one.
//
//zenrpc:user new account
//zenrpc:return created user
//zenrpc:400 validation failed
//zenrpc:409 email or username is taken
func (s *AuthService) Register(ctx context.Context, user UserInput) (*User, error) {
	if err := checkInput(user); err != nil {
		return nil, err
	}

	created, err := s.auth.Register(ctx, user.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewUser(*created)
	return &result, nil
}

// Login checks the credentials and opens a session.
//
//zenrpc:email account email
//zenrpc:password account password
//zenrpc:return user and session token
//zenrpc:401 invalid email or password
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := checkVar("email", email, "required,email"); err != nil {
		return nil, err
	}

	session, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, newError(err)
	}

	result := NewLoginResult(*session)
	return &result, nil
}

// Logout closes a session. Without a token the session of the caller is closed.
//
//zenrpc:token session token
func (s *AuthService) Logout(ctx context.Context, token *string) (Success, error) {
	t := sessionToken(ctx, token)
	if err := checkVar("token", t, "required"); err != nil {
		return Success{}, err
	}

	ok, err := s.auth.Logout(ctx, t)
	return Success{Success: ok}, newError(err)
}

// VerifyEmail confirms the email address the token was sent to.
//
//zenrpc:token verification token
//zenrpc:410 token is invalid or expired
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (Success, error) {
	if err := s.auth.VerifyEmail(ctx, token); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// RequestPasswordReset sends a reset token. It always succeeds.
//
//zenrpc:email account email
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (Success, error) {
	if err := checkVar("email", email, "required,email"); err != nil {
		return Success{}, err
	}

	if err := s.auth.RequestPasswordReset(ctx, email); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// ResetPassword sets a new password using a reset token.
//
//zenrpc:token reset token
//zenrpc:newPassword new password, at least 8 characters
//zenrpc:410 token is invalid or expired
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (Success, error) {
	if err := checkVar("newPassword", newPassword, "required,min=8"); err != nil {
		return Success{}, err
	}

	if err := s.auth.ResetPassword(ctx, token, newPassword); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// GetCurrentUser returns the owner of the session or null.
//
//zenrpc:token session token, the bearer token when omitted
//zenrpc:return user or null
func (s *AuthService) GetCurrentUser(ctx context.Context, token *string) (*User, error) {
	t := sessionToken(ctx, token)

	user, err := s.auth.CurrentUser(ctx, t)
	if err != nil {
		return nil, newError(err)
	} else if user == nil {
		return nil, nil
	}

	result := NewUser(*user)
	return &result, nil
}

// sessionToken prefers an explicit token over the bearer token of the call.
func sessionToken(ctx context.Context, token *string) string {
	if token != nil {
		return *token
	}
	if p := blog.PrincipalFromContext(ctx); p != nil {
		return p.Token
	}
	return ""
}
