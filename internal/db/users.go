package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type UserSearch struct {
	Search   *string
	Role     *string
	IsActive *bool
}

func (r *Repository) CreateUser(ctx context.Context, user *User) (*User, error) {
	_, err := r.db.ModelContext(ctx, user).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *User) (*User, error) {
	user.UpdatedAt = time.Now()
	_, err := r.db.ModelContext(ctx, user).WherePK().Returning("*").Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (r *Repository) UserByID(ctx context.Context, id int) (*User, error) {
	return r.oneUser(ctx, `"t"."id" = ?`, id)
}

func (r *Repository) UserByEmail(ctx context.Context, email string) (*User, error) {
	return r.oneUser(ctx, `LOWER("t"."email") = LOWER(?)`, email)
}

func (r *Repository) UserByVerificationToken(ctx context.Context, token string) (*User, error) {
	return r.oneUser(ctx, `"t"."email_verification_token" = ?`, token)
}

func (r *Repository) UserByResetToken(ctx context.Context, token string) (*User, error) {
	return r.oneUser(ctx, `"t"."password_reset_token" = ?`, token)
}

func (r *Repository) oneUser(ctx context.Context, condition string, param interface{}) (*User, error) {
	user := &User{}
	err := r.db.ModelContext(ctx, user).Where(condition, param).Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Users returns one page of users matching search, newest first, with the total count.
func (r *Repository) Users(ctx context.Context, search UserSearch, pager Pager) ([]User, int, error) {
	if err := pager.validate(); err != nil {
		return nil, 0, err
	}

	var users []User
	query := r.db.ModelContext(ctx, &users)

	if search.Search != nil && *search.Search != "" {
		like := "%" + *search.Search + "%"
		query = query.WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			return q.WhereOr(`"t"."username" ILIKE ?`, like).
				WhereOr(`"t"."email" ILIKE ?`, like).
				WhereOr(`"t"."first_name" ILIKE ?`, like).
				WhereOr(`"t"."last_name" ILIKE ?`, like), nil
		})
	}

	if search.Role != nil {
		query = query.Where(`"t"."role" = ?`, *search.Role)
	}

	if search.IsActive != nil {
		query = query.Where(`"t"."is_active" = ?`, *search.IsActive)
	}

	count, err := pager.apply(query.OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`)).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}

	return users, count, nil
}
