package blog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

type CommentManager struct {
	*base
	notifier Notifier
}

// CommentsByPost returns the reply tree of a post. Only editors may ask for
// unapproved comments; everyone else sees approved, non-spam comments, and a
// hidden comment hides its replies too.
func (m *CommentManager) CommentsByPost(ctx context.Context, postID int, approved bool) ([]Comment, error) {
	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) {
		approved = true
	}

	post, err := m.db.PostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if post == nil || !canViewPost(p, post) {
		return nil, ErrPostNotFound
	}

	list, err := m.db.Comments(ctx, db.CommentSearch{PostID: &postID})
	if err != nil {
		return nil, fmt.Errorf("db get comments: %w", err)
	}

	visible := func(*db.Comment) bool { return true }
	if approved {
		visible = isPublicComment
	}

	return BuildThread(list, visible), nil
}

// Comments lists comments for moderation, newest first, with their direct replies.
func (m *CommentManager) Comments(ctx context.Context, params ListParams, approved *bool) (Page[Comment], error) {
	list, total, err := m.db.CommentsPage(ctx, db.CommentSearch{Approved: approved}, params.pager())
	if err != nil {
		return Page[Comment]{}, fmt.Errorf("db get comments: %w", err)
	}

	comments, err := m.withReplies(ctx, list)
	if err != nil {
		return Page[Comment]{}, err
	}

	return Page[Comment]{Items: comments, Pagination: NewPagination(params, total)}, nil
}

// PendingComments returns comments awaiting moderation, oldest first. Spam is excluded.
func (m *CommentManager) PendingComments(ctx context.Context) ([]Comment, error) {
	approved, spam := false, false
	list, err := m.db.Comments(ctx, db.CommentSearch{Approved: &approved, Spam: &spam})
	if err != nil {
		return nil, fmt.Errorf("db get pending comments: %w", err)
	}

	return m.withReplies(ctx, list)
}

func (m *CommentManager) CommentByID(ctx context.Context, id int) (*Comment, error) {
	comment, err := m.comment(ctx, id)
	if err != nil {
		return nil, err
	}

	p := PrincipalFromContext(ctx)
	if !p.Can(RoleEditor) && (!isPublicComment(comment) || comment.Post == nil || !canViewPost(p, comment.Post)) {
		return nil, ErrCommentNotFound
	}

	result, err := m.withReplies(ctx, []db.Comment{*comment})
	if err != nil {
		return nil, err
	}

	if !p.Can(RoleEditor) {
		result[0].Replies = slices.DeleteFunc(result[0].Replies, func(c Comment) bool {
			return !isPublicComment(&c.Comment)
		})
	}

	return &result[0], nil
}

// CreateComment stores a visitor comment. Spam is flagged and never approved;
// other comments are approved automatically when the site does not require
// moderation or the author already has an approved comment.
func (m *CommentManager) CreateComment(ctx context.Context, in CommentInput) (*db.Comment, error) {
	post, err := m.db.PostByID(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if post == nil || post.Status != db.StatusPublished {
		return nil, ErrPostNotFound
	}

	settings, err := loadSettings(ctx, m.db)
	if err != nil {
		return nil, err
	}

	if !settings.AllowComments || !post.AllowComments {
		return nil, fmt.Errorf("%w: comments are closed", ErrForbidden)
	}

	if in.ParentID != nil {
		parent, err := m.db.CommentByID(ctx, *in.ParentID)
		if err != nil {
			return nil, fmt.Errorf("db get comment by id: %w", err)
		} else if parent == nil || parent.PostID != post.ID {
			return nil, invalidInput("parent comment does not belong to post %d", post.ID)
		}
	}

	comment := &db.Comment{
		PostID:      post.ID,
		ParentID:    in.ParentID,
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorEmail: normalizeEmail(in.AuthorEmail),
		AuthorURL:   clearable(in.AuthorURL),
		Content:     strings.TrimSpace(in.Content),
		IPAddress:   clearable(in.IPAddress),
	}

	if reason := SpamReason(comment.Content, comment.AuthorURL); reason != "" {
		comment.IsSpam = true
		m.logger.InfoContext(ctx, "comment flagged as spam", "postId", post.ID, "reason", reason)
	} else {
		comment.IsApproved, err = m.autoApprove(ctx, settings, comment.AuthorEmail)
		if err != nil {
			return nil, err
		}
	}

	created, err := m.db.CreateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("db create comment: %w", err)
	}

	if !created.IsSpam {
		if err := m.notifier.CommentPosted(ctx, *post, *created); err != nil {
			m.logger.ErrorContext(ctx, "failed to notify about comment", "commentId", created.ID, "error", err)
		}
	}

	return created, nil
}

// UpdateComment edits content or approval. Approving clears the spam flag.
func (m *CommentManager) UpdateComment(ctx context.Context, in UpdateCommentInput) (*db.Comment, error) {
	comment, err := m.comment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Content != nil {
		comment.Content = strings.TrimSpace(*in.Content)
	}
	if in.IsApproved != nil {
		comment.IsApproved = *in.IsApproved
		if comment.IsApproved {
			comment.IsSpam = false
		}
	}

	return m.save(ctx, comment)
}

// DeleteComment removes a comment and every reply below it.
func (m *CommentManager) DeleteComment(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteComment(ctx, id)
	if err != nil {
		return fmt.Errorf("db delete comment: %w", err)
	} else if !deleted {
		return ErrCommentNotFound
	}

	return nil
}

func (m *CommentManager) ApproveComment(ctx context.Context, id int) (*db.Comment, error) {
	comment, err := m.comment(ctx, id)
	if err != nil {
		return nil, err
	}

	wasApproved := comment.IsApproved
	comment.IsApproved, comment.IsSpam = true, false

	saved, err := m.save(ctx, comment)
	if err != nil {
		return nil, err
	}

	if !wasApproved {
		if err := m.notifier.CommentApproved(ctx, *saved); err != nil {
			m.logger.ErrorContext(ctx, "failed to notify about approval", "commentId", saved.ID, "error", err)
		}
	}

	return saved, nil
}

func (m *CommentManager) RejectComment(ctx context.Context, id int) (*db.Comment, error) {
	comment, err := m.comment(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.IsApproved = false
	return m.save(ctx, comment)
}

func (m *CommentManager) MarkAsSpam(ctx context.Context, id int) error {
	comment, err := m.comment(ctx, id)
	if err != nil {
		return err
	}

	comment.IsApproved, comment.IsSpam = false, true
	_, err = m.save(ctx, comment)
	return err
}

// BulkApprove approves the listed comments and returns how many changed.
func (m *CommentManager) BulkApprove(ctx context.Context, ids []int) (int, error) {
	count, err := m.db.ApproveComments(ctx, uniqueIDs(ids))
	if err != nil {
		return 0, fmt.Errorf("db approve comments: %w", err)
	}

	return count, nil
}

// BulkDelete removes the listed comments with their replies and returns how many of the listed ids existed.
func (m *CommentManager) BulkDelete(ctx context.Context, ids []int) (int, error) {
	count, err := m.db.DeleteComments(ctx, uniqueIDs(ids))
	if err != nil {
		return 0, fmt.Errorf("db delete comments: %w", err)
	}

	return count, nil
}

func (m *CommentManager) autoApprove(ctx context.Context, settings *db.SiteSettings, email string) (bool, error) {
	if !settings.RequireCommentApproval || PrincipalFromContext(ctx).Can(RoleEditor) {
		return true, nil
	}

	known, err := m.db.HasApprovedComment(ctx, email)
	if err != nil {
		return false, fmt.Errorf("db check approved comments: %w", err)
	}

	return known, nil
}

func (m *CommentManager) comment(ctx context.Context, id int) (*db.Comment, error) {
	comment, err := m.db.CommentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get comment by id: %w", err)
	} else if comment == nil {
		return nil, ErrCommentNotFound
	}

	return comment, nil
}

func (m *CommentManager) save(ctx context.Context, comment *db.Comment) (*db.Comment, error) {
	post := comment.Post
	comment.Post = nil

	saved, err := m.db.UpdateComment(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("db update comment: %w", err)
	}

	saved.Post = post
	return saved, nil
}

func (m *CommentManager) withReplies(ctx context.Context, list []db.Comment) ([]Comment, error) {
	ids := make([]int, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}

	replies, err := m.db.RepliesOf(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get replies: %w", err)
	}

	result := make([]Comment, len(list))
	for i := range list {
		result[i] = Comment{Comment: list[i], Replies: make([]Comment, 0, len(replies[list[i].ID]))}
		for _, reply := range replies[list[i].ID] {
			result[i].Replies = append(result[i].Replies, Comment{Comment: reply, Replies: []Comment{}})
		}
	}

	return result, nil
}

func isPublicComment(c *db.Comment) bool {
	return c.IsApproved && !c.IsSpam
}

// BuildThread arranges a flat list of comments into reply trees, keeping the
// input order among siblings. Comments that fail visible are dropped along
// with their replies. The walk uses an explicit stack and visits each comment
// once, so parent cycles cannot loop.
func BuildThread(list []db.Comment, visible func(*db.Comment) bool) []Comment {
	index := make(map[int]int, len(list))
	for i := range list {
		index[list[i].ID] = i
	}

	children := make(map[int][]int, len(list))
	var roots []int
	for i := range list {
		parent := list[i].ParentID
		if parent == nil {
			roots = append(roots, i)
			continue
		}
		if _, ok := index[*parent]; !ok {
			roots = append(roots, i)
			continue
		}
		children[*parent] = append(children[*parent], i)
	}

	// pre-order walk; children are pushed in reverse to pop in input order
	visited := make([]bool, len(list))
	order := make([]int, 0, len(list))
	stack := make([]int, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, roots[i])
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[i] {
			continue
		}
		visited[i] = true

		if !visible(&list[i]) {
			continue
		}
		order = append(order, i)

		kids := children[list[i].ID]
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, kids[k])
		}
	}

	// reverse pre-order builds every child before its parent
	built := make(map[int]Comment, len(order))
	for j := len(order) - 1; j >= 0; j-- {
		i := order[j]
		node := Comment{Comment: list[i], Replies: []Comment{}}
		for _, k := range children[list[i].ID] {
			if child, ok := built[k]; ok {
				node.Replies = append(node.Replies, child)
				delete(built, k)
			}
		}
		built[i] = node
	}

	result := make([]Comment, 0, len(roots))
	for _, i := range roots {
		if node, ok := built[i]; ok {
			result = append(result, node)
		}
	}

	return result
}
