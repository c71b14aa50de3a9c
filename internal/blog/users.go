package blog

import (
	"context"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

type UserManager struct {
	*base
	notifier Notifier
}

func (m *UserManager) Users(ctx context.Context, filters UserFilters) (Page[db.User], error) {
	users, total, err := m.db.Users(ctx, db.UserSearch{
		Search:   filters.Search,
		Role:     filters.Role,
		IsActive: filters.IsActive,
	}, filters.pager())
	if err != nil {
		return Page[db.User]{}, fmt.Errorf("db get users: %w", err)
	}

	return Page[db.User]{Items: users, Pagination: NewPagination(filters.ListParams, total)}, nil
}

// UserByID returns the full account. Callers other than the user need editor rights.
func (m *UserManager) UserByID(ctx context.Context, id int) (*db.User, error) {
	p := PrincipalFromContext(ctx)
	if !p.Owns(id) && !p.Can(RoleEditor) {
		return nil, ErrForbidden
	}

	return m.user(ctx, id)
}

// UserProfile returns an active user for public display.
func (m *UserManager) UserProfile(ctx context.Context, id int) (*db.User, error) {
	user, err := m.user(ctx, id)
	if err != nil {
		return nil, err
	} else if !user.IsActive {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (m *UserManager) CreateUser(ctx context.Context, in CreateUserInput) (*db.User, error) {
	if in.Role == "" {
		in.Role = RolePublic
	}

	return createUser(ctx, m.base, m.notifier, in)
}

// UpdateUser edits an account. Users may edit themselves except for role and
// active flag; admins may edit anyone.
func (m *UserManager) UpdateUser(ctx context.Context, in UpdateUserInput) (*db.User, error) {
	p := PrincipalFromContext(ctx)
	isAdmin := p.Can(RoleAdmin)

	if !p.Owns(in.ID) && !isAdmin {
		return nil, ErrForbidden
	}
	if !isAdmin && (in.Role != nil || in.IsActive != nil) {
		return nil, fmt.Errorf("%w: only an admin may change role or active flag", ErrForbidden)
	}

	user, err := m.user(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != user.Email {
			user.Email = email
			user.EmailVerified = false
		}
	}
	if in.Username != nil {
		user.Username = strings.TrimSpace(*in.Username)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, invalidInput("unknown role %q", *in.Role)
		}
		user.Role = string(*in.Role)
	}
	if in.Bio != nil {
		user.Bio = clearable(in.Bio)
	}
	if in.AvatarURL != nil {
		user.AvatarURL = clearable(in.AvatarURL)
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}

	err = m.db.RunInTx(ctx, func(tx *db.Repository) error {
		updated, err := tx.UpdateUser(ctx, user)
		if db.IsUniqueViolation(err) {
			return conflict("email or username is already taken")
		} else if err != nil {
			return fmt.Errorf("db update user: %w", err)
		}
		user = updated

		if !user.IsActive {
			if err := tx.DeleteUserSessions(ctx, user.ID); err != nil {
				return fmt.Errorf("db delete user sessions: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deactivates the account and revokes its sessions. Rows it authored are kept.
func (m *UserManager) DeleteUser(ctx context.Context, id int) error {
	if PrincipalFromContext(ctx).Owns(id) {
		return conflict("you cannot deactivate your own account")
	}

	active := false
	_, err := m.UpdateUser(ctx, UpdateUserInput{ID: id, IsActive: &active})
	return err
}

func (m *UserManager) user(ctx context.Context, id int) (*db.User, error) {
	user, err := m.db.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get user by id: %w", err)
	} else if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
