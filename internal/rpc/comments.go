package rpc

import (
	"context"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

// CommentService manages post comments and their moderation.
type CommentService struct {
	zenrpc.Service
	comments *blog.CommentManager
}

func NewCommentService(comments *blog.CommentManager) *CommentService {
	return &CommentService{comments: comments}
}

// GetCommentsByPost returns the comment thread of a post. Only editors may ask for unapproved comments.
//
//zenrpc:postId post id
//zenrpc:approved=true approved comments only
//zenrpc:404 post not found
func (s *CommentService) GetCommentsByPost(ctx context.Context, postId int, approved *bool) ([]CommentWithRelations, error) {
	list, err := s.comments.CommentsByPost(ctx, postId, approved == nil || *approved)
	if err != nil {
		return nil, newError(err)
	}

	return NewCommentsWithRelations(list), nil
}

// GetComments lists comments for moderation, newest first.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:limit=20 items per page
//zenrpc:approved optional approval filter
func (s *CommentService) GetComments(ctx context.Context, page, limit *int, approved *bool) (*CommentsPage, error) {
	if err := checkPaging(page, limit); err != nil {
		return nil, err
	}

	list, err := s.comments.Comments(ctx, listParams(page, limit, defaultLibraryLimit), approved)
	if err != nil {
		return nil, newError(err)
	}

	result := NewCommentsPage(list)
	return &result, nil
}

// GetPendingComments returns comments waiting for approval, oldest first.
func (s *CommentService) GetPendingComments(ctx context.Context) ([]CommentWithRelations, error) {
	list, err := s.comments.PendingComments(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return NewCommentsWithRelations(list), nil
}

// GetCommentByID returns a comment with its post and replies.
//
//zenrpc:id comment id
//zenrpc:404 comment not found
func (s *CommentService) GetCommentByID(ctx context.Context, id int) (*CommentWithRelations, error) {
	comment, err := s.comments.CommentByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewCommentWithRelations(*comment)
	return &result, nil
}

// CreateComment posts a comment. It is approved right away when the site allows it.
//
//zenrpc:comment new comment
//zenrpc:400 validation failed
//zenrpc:403 comments are closed
//zenrpc:404 post not found
func (s *CommentService) CreateComment(ctx context.Context, comment CommentInput) (*Comment, error) {
	if err := checkInput(comment); err != nil {
		return nil, err
	}

	return commentResult(s.comments.CreateComment(ctx, comment.ToModel(middleware.IPFromContext(ctx))))
}

// UpdateComment edits content or approval. Approving clears the spam flag.
//
//zenrpc:comment fields to change
//zenrpc:404 comment not found
func (s *CommentService) UpdateComment(ctx context.Context, comment CommentUpdate) (*Comment, error) {
	if err := checkInput(comment); err != nil {
		return nil, err
	}

	return commentResult(s.comments.UpdateComment(ctx, comment.ToModel()))
}

// DeleteComment removes a comment with all replies below it.
//
//zenrpc:id comment id
//zenrpc:404 comment not found
func (s *CommentService) DeleteComment(ctx context.Context, id int) (Success, error) {
	if err := s.comments.DeleteComment(ctx, id); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// ApproveComment publishes a comment.
//
//zenrpc:id comment id
//zenrpc:404 comment not found
func (s *CommentService) ApproveComment(ctx context.Context, id int) (*Comment, error) {
	return commentResult(s.comments.ApproveComment(ctx, id))
}

// RejectComment hides a comment.
//
//zenrpc:id comment id
//zenrpc:404 comment not found
func (s *CommentService) RejectComment(ctx context.Context, id int) (*Comment, error) {
	return commentResult(s.comments.RejectComment(ctx, id))
}

// MarkAsSpam hides a comment as spam.
//
//zenrpc:id comment id
//zenrpc:404 comment not found
func (s *CommentService) MarkAsSpam(ctx context.Context, id int) (Success, error) {
	if err := s.comments.MarkAsSpam(ctx, id); err != nil {
		return Success{}, newError(err)
	}

	return Success{Success: true}, nil
}

// BulkApprove approves the listed comments.
//
//zenrpc:ids comment ids
//zenrpc:return number of comments approved
func (s *CommentService) BulkApprove(ctx context.Context, ids []int) (Approved, error) {
	if err := checkVar("ids", ids, "required,max=100,dive,min=1"); err != nil {
		return Approved{}, err
	}

	count, err := s.comments.BulkApprove(ctx, ids)
	return Approved{Approved: count}, newError(err)
}

// BulkDelete removes the listed comments and their replies.
//
//zenrpc:ids comment ids
//zenrpc:return number of listed comments deleted
func (s *CommentService) BulkDelete(ctx context.Context, ids []int) (Deleted, error) {
	if err := checkVar("ids", ids, "required,max=100,dive,min=1"); err != nil {
		return Deleted{}, err
	}

	count, err := s.comments.BulkDelete(ctx, ids)
	return Deleted{Deleted: count}, newError(err)
}

func commentResult(c *db.Comment, err error) (*Comment, error) {
	if err != nil {
		return nil, newError(err)
	}

	result := NewComment(*c)
	return &result, nil
}
