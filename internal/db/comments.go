package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

type CommentSearch struct {
	PostID   *int
	ParentID *int
	Approved *bool
	Spam     *bool
}

func (r *Repository) CreateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	_, err := r.db.ModelContext(ctx, comment).Returning("*").Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	comment.UpdatedAt = time.Now()
	_, err := r.db.ModelContext(ctx, comment).WherePK().Returning("*").Update()
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// CommentByID returns the comment with its post.
func (r *Repository) CommentByID(ctx context.Context, id int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation("Post").
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

// Comments returns comments matching search with their posts, oldest first.
func (r *Repository) Comments(ctx context.Context, search CommentSearch) ([]Comment, error) {
	var comments []Comment
	err := r.commentsQuery(ctx, &comments, search).
		Relation("Post").
		OrderExpr(`"t"."created_at" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// CommentsPage returns one page of comments with their posts, newest first, plus the total count.
func (r *Repository) CommentsPage(ctx context.Context, search CommentSearch, pager Pager) ([]Comment, int, error) {
	if err := pager.validate(); err != nil {
		return nil, 0, err
	}

	var comments []Comment
	query := r.commentsQuery(ctx, &comments, search).
		Relation("Post").
		OrderExpr(`"t"."created_at" DESC, "t"."id" DESC`)

	count, err := pager.apply(query).SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments page: %w", err)
	}

	return comments, count, nil
}

func (r *Repository) commentsQuery(ctx context.Context, comments *[]Comment, search CommentSearch) *pg.Query {
	query := r.db.ModelContext(ctx, comments)

	if search.PostID != nil {
		query = query.Where(`"t"."post_id" = ?`, *search.PostID)
	}

	if search.ParentID != nil {
		query = query.Where(`"t"."parent_id" = ?`, *search.ParentID)
	}

	if search.Approved != nil {
		query = query.Where(`"t"."is_approved" = ?`, *search.Approved)
	}

	if search.Spam != nil {
		query = query.Where(`"t"."is_spam" = ?`, *search.Spam)
	}

	return query
}

// RepliesOf returns the direct replies of the given comments, oldest first, keyed by parent id.
func (r *Repository) RepliesOf(ctx context.Context, parentIDs []int) (map[int][]Comment, error) {
	result := make(map[int][]Comment, len(parentIDs))
	if len(parentIDs) == 0 {
		return result, nil
	}

	var replies []Comment
	err := r.db.ModelContext(ctx, &replies).
		Where(`"t"."parent_id" IN (?)`, pg.In(parentIDs)).
		OrderExpr(`"t"."created_at" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}

	for _, reply := range replies {
		result[*reply.ParentID] = append(result[*reply.ParentID], reply)
	}

	return result, nil
}

func (r *Repository) DeleteComment(ctx context.Context, id int) (bool, error) {
	n, err := r.DeleteComments(ctx, []int{id})
	return n > 0, err
}

// DeleteComments removes the comments and, through the parent key, all their replies.
// The count covers the listed ids only.
func (r *Repository) DeleteComments(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"id" IN (?)`, pg.In(ids)).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}

	return res.RowsAffected(), nil
}

// ApproveComments approves the listed comments that are not approved yet and clears their spam flag.
func (r *Repository) ApproveComments(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE comments SET is_approved = TRUE, is_spam = FALSE, updated_at = NOW()
		WHERE id IN (?) AND (NOT is_approved OR is_spam)`, pg.In(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to approve comments: %w", err)
	}

	return res.RowsAffected(), nil
}

// HasApprovedComment reports whether the email already has an approved comment.
func (r *Repository) HasApprovedComment(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`LOWER("t"."author_email") = LOWER(?)`, email).
		Where(`"t"."is_approved"`).
		Where(`NOT "t"."is_spam"`).
		Exists()
	if err != nil {
		return false, fmt.Errorf("failed to check approved comments: %w", err)
	}

	return exists, nil
}
