package blog

import (
	"context"
	"log/slog"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

// Notifier delivers account and moderation messages.
type Notifier interface {
	EmailVerification(ctx context.Context, user db.User, token string) error
	PasswordReset(ctx context.Context, user db.User, token string) error
	CommentPosted(ctx context.Context, post db.Post, comment db.Comment) error
	CommentApproved(ctx context.Context, comment db.Comment) error
}

// LogNotifier writes every message to the log instead of sending mail.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) EmailVerification(ctx context.Context, user db.User, token string) error {
	n.logger.InfoContext(ctx, "email verification requested", "userId", user.ID, "email", user.Email, "token", token)
	return nil
}

func (n *LogNotifier) PasswordReset(ctx context.Context, user db.User, token string) error {
	n.logger.InfoContext(ctx, "password reset requested", "userId", user.ID, "email", user.Email, "token", token)
	return nil
}

func (n *LogNotifier) CommentPosted(ctx context.Context, post db.Post, comment db.Comment) error {
	n.logger.InfoContext(ctx, "new comment", "postId", post.ID, "authorId", post.AuthorID, "commentId", comment.ID, "approved", comment.IsApproved)
	return nil
}

func (n *LogNotifier) CommentApproved(ctx context.Context, comment db.Comment) error {
	n.logger.InfoContext(ctx, "comment approved", "commentId", comment.ID, "email", comment.AuthorEmail)
	return nil
}
