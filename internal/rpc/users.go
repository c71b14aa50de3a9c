package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

// UserService manages accounts.
type UserService struct {
	zenrpc.Service
	users *blog.UserManager
}

func NewUserService(users *blog.UserManager) *UserService {
	return &UserService{users: users}
}

// GetUsers lists accounts, newest first.
//
//zenrpc:filters role, active flag and search filters with paging
//zenrpc:return paginated users
func (s *UserService) GetUsers(ctx context.Context, filters *UserFilters) (*UsersPage, error) {
	if filters == nil {
		filters = &UserFilters{}
	}
	if err := checkInput(filters); err != nil {
		return nil, err
	}

	page, err := s.users.Users(ctx, filters.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewUsersPage(page)
	return &result, nil
}

// GetUserByID returns a full account. Users may read themselves, editors anyone.
//
//zenrpc:id user id
//zenrpc:404 user not found
func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewUser(*user)
	return &result, nil
}

// GetUserProfile returns the public profile of an active user.
//
//zenrpc:id user id
//zenrpc:404 user not found
func (s *UserService) GetUserProfile(ctx context.Context, id int) (*UserProfile, error) {
	user, err := s.users.UserProfile(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewUserProfile(*user)
	return &result, nil
}

// CreateUser creates an account with any role.
//
//zenrpc:user new account
//zenrpc:409 email or username is taken
func (s *UserService) CreateUser(ctx context.Context, user UserInput) (*User, error) {
	if err := checkInput(user); err != nil {
		return nil, err
	}

	created, err := s.users.CreateUser(ctx, user.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewUser(*created)
	return &result, nil
}

// UpdateUser changes the given fields of an account.
//
//zenrpc:user fields to change
//zenrpc:403 only admins may change other users, roles or the active flag
//zenrpc:404 user not found
//zenrpc:409 email or username is taken
func (s *UserService) UpdateUser(ctx context.Context, user UserUpdate) (*User, error) {
	if err := checkInput(user); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateUser(ctx, user.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewUser(*updated)
	return &result, nil
}

// DeleteUser deactivates an account and signs it out.
//
//zenrpc:id user id
//zenrpc:404 user not found
//zenrpc:409 you cannot deactivate your own account
func (s *UserService) DeleteUser(ctx context.Context, id int) (Success, error) {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}
