//go:build integration

package blog

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/db"
)

func TestAuthManager_Integration(t *testing.T) {
	t.Run("RegisterForcesPublicRole", func(t *testing.T) {
		ctx, env := withTx(t)

		user, err := env.Auth.Register(ctx, CreateUserInput{
			Email: " New@Example.com ", Username: "newbie", Password: "secret-pass",
			FirstName: "New", LastName: "User", Role: RoleAdmin,
		})
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if user.Role != string(RolePublic) {
			t.Errorf("expected role public_user, got %s", user.Role)
		}
		if user.Email != "new@example.com" {
			t.Errorf("expected normalised email, got %q", user.Email)
		}
		if user.EmailVerified {
			t.Error("new user must not be verified")
		}

		token := env.notifier.verifications["new@example.com"]
		if token == "" {
			t.Fatal("verification token was not sent")
		}
		if err := env.Auth.VerifyEmail(ctx, token); err != nil {
			t.Fatalf("verify email: %v", err)
		}
		if err := env.Auth.VerifyEmail(ctx, token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken on reuse, got %v", err)
		}

		_, err = env.Auth.Register(ctx, CreateUserInput{Email: "new@example.com", Username: "other", Password: "secret-pass"})
		if !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict for duplicate email, got %v", err)
		}
	})

	t.Run("AdminMayPickRole", func(t *testing.T) {
		ctx, env := withTx(t)

		user, err := env.Auth.Register(asAdmin(ctx), CreateUserInput{
			Email: "staff@example.com", Username: "staff", Password: "secret-pass", Role: RoleEditor,
		})
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if user.Role != string(RoleEditor) {
			t.Errorf("expected editor, got %s", user.Role)
		}
	})

	t.Run("LoginLogout", func(t *testing.T) {
		ctx, env := withTx(t)

		session, err := env.Auth.Login(ctx, "AUTHOR@example.com", db.TestPassword)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if len(session.Token) != tokenBytes*2 {
			t.Errorf("unexpected token length %d", len(session.Token))
		}

		principal, user, err := env.Auth.Authenticate(ctx, session.Token)
		if err != nil {
			t.Fatalf("authenticate: %v", err)
		}
		if principal == nil || principal.UserID != db.TestAuthorID || principal.Role != RoleAuthor {
			t.Fatalf("unexpected principal %+v", principal)
		}
		if user.Username != "author" {
			t.Errorf("unexpected user %q", user.Username)
		}

		if ok, err := env.Auth.Logout(ctx, session.Token); err != nil || !ok {
			t.Fatalf("logout: %v, %v", ok, err)
		}
		if ok, _ := env.Auth.Logout(ctx, session.Token); ok {
			t.Error("second logout must report a missing session")
		}
		if p, _, _ := env.Auth.Authenticate(ctx, session.Token); p != nil {
			t.Error("session must be gone after logout")
		}
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		ctx, env := withTx(t)

		for _, tc := range []struct{ email, password string }{
			{"author@example.com", "wrong-password"},
			{"nobody@example.com", db.TestPassword},
			{"gone@example.com", db.TestPassword},
		} {
			if _, err := env.Auth.Login(ctx, tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("%s: expected ErrInvalidCredentials, got %v", tc.email, err)
			}
		}
	})

	t.Run("PasswordReset", func(t *testing.T) {
		ctx, env := withTx(t)

		session, err := env.Auth.Login(ctx, "reader@example.com", db.TestPassword)
		if err != nil {
			t.Fatalf("login: %v", err)
		}

		if err := env.Auth.RequestPasswordReset(ctx, "unknown@example.com"); err != nil {
			t.Errorf("reset for unknown email must succeed, got %v", err)
		}
		if err := env.Auth.RequestPasswordReset(ctx, "reader@example.com"); err != nil {
			t.Fatalf("request reset: %v", err)
		}

		token := env.notifier.resets["reader@example.com"]
		if token == "" {
			t.Fatal("reset token was not sent")
		}

		if err := env.Auth.ResetPassword(ctx, "bogus", "new-password"); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
		if err := env.Auth.ResetPassword(ctx, token, "new-password"); err != nil {
			t.Fatalf("reset password: %v", err)
		}

		if p, _, _ := env.Auth.Authenticate(ctx, session.Token); p != nil {
			t.Error("sessions must be revoked after a password reset")
		}
		if _, err := env.Auth.Login(ctx, "reader@example.com", db.TestPassword); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("old password must stop working, got %v", err)
		}
		if _, err := env.Auth.Login(ctx, "reader@example.com", "new-password"); err != nil {
			t.Errorf("login with new password: %v", err)
		}
	})
}

func TestUserManager_Integration(t *testing.T) {
	t.Run("SelfUpdateCannotChangeRole", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asAuthor(ctx)

		admin := RoleAdmin
		if _, err := env.Users.UpdateUser(ctx, UpdateUserInput{ID: db.TestAuthorID, Role: &admin}); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if _, err := env.Users.UpdateUser(ctx, UpdateUserInput{ID: db.TestWriterID, FirstName: strPtr("X")}); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden for another user, got %v", err)
		}

		user, err := env.Users.UpdateUser(ctx, UpdateUserInput{ID: db.TestAuthorID, Bio: strPtr("Writes about Go")})
		if err != nil {
			t.Fatalf("update self: %v", err)
		}
		if user.Bio == nil || *user.Bio != "Writes about Go" {
			t.Errorf("bio was not updated: %v", user.Bio)
		}

		user, err = env.Users.UpdateUser(ctx, UpdateUserInput{ID: db.TestAuthorID, Bio: strPtr("")})
		if err != nil {
			t.Fatalf("clear bio: %v", err)
		}
		if user.Bio != nil {
			t.Errorf("bio must be cleared, got %q", *user.Bio)
		}
	})

	t.Run("SoftDelete", func(t *testing.T) {
		ctx, env := withTx(t)

		session, err := env.Auth.Login(ctx, "writer@example.com", db.TestPassword)
		if err != nil {
			t.Fatalf("login: %v", err)
		}

		admin := asAdmin(ctx)
		if err := env.Users.DeleteUser(admin, db.TestAdminID); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict deleting yourself, got %v", err)
		}
		if err := env.Users.DeleteUser(admin, db.TestWriterID); err != nil {
			t.Fatalf("delete user: %v", err)
		}

		if p, _, _ := env.Auth.Authenticate(ctx, session.Token); p != nil {
			t.Error("sessions of a deactivated user must be revoked")
		}
		if _, err := env.Users.UserProfile(ctx, db.TestWriterID); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("deactivated profile must be hidden, got %v", err)
		}

		user, err := env.Users.UserByID(admin, db.TestWriterID)
		if err != nil {
			t.Fatalf("user by id: %v", err)
		}
		if user.IsActive {
			t.Error("user must be inactive")
		}
	})

	t.Run("ListFilters", func(t *testing.T) {
		ctx, env := withTx(t)

		role := string(RoleAuthor)
		page, err := env.Users.Users(asAdmin(ctx), UserFilters{
			ListParams: ListParams{Page: 1, Limit: 10},
			Role:       &role,
			IsActive:   boolPtr(true),
		})
		if err != nil {
			t.Fatalf("users: %v", err)
		}
		if page.Pagination.Total != 2 {
			t.Errorf("expected 2 active authors, got %d", page.Pagination.Total)
		}
	})
}

func TestPostManager_Integration(t *testing.T) {
	t.Run("CreateWithSlugSuffixAndExcerpt", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asAuthor(ctx)

		post, err := env.Posts.CreatePost(ctx, PostInput{
			Title:         "Getting Started with Go",
			Content:       "# Part two\n\nMore **Go** basics.",
			Status:        db.StatusPublished,
			AllowComments: true,
			CategoryID:    intPtr(db.TestCategoryTech),
			TagIDs:        []int{db.TestTagGo, db.TestTagGo, db.TestTagDatabases},
		}, db.TestAuthorID)
		if err != nil {
			t.Fatalf("create post: %v", err)
		}

		if post.Slug != "getting-started-with-go-2" {
			t.Errorf("expected suffixed slug, got %q", post.Slug)
		}
		if post.Excerpt == nil || *post.Excerpt != "Part two More Go basics." {
			t.Errorf("unexpected excerpt %v", post.Excerpt)
		}
		if post.PublishedAt == nil {
			t.Error("published post must have published_at")
		}
		if len(post.Tags) != 2 {
			t.Errorf("expected 2 distinct tags, got %d", len(post.Tags))
		}
		if !strings.Contains(post.ContentHTML, "<strong>Go</strong>") {
			t.Errorf("content html not rendered: %q", post.ContentHTML)
		}
	})

	t.Run("AuthorsOnlyWriteOwnPosts", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asAuthor(ctx)

		if _, err := env.Posts.CreatePost(ctx, PostInput{Title: "X", Content: "x"}, db.TestWriterID); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden creating for another author, got %v", err)
		}
		if _, err := env.Posts.UpdatePost(ctx, UpdatePostInput{ID: db.TestPostTravel, Title: strPtr("Mine")}); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden updating another author's post, got %v", err)
		}

		page, err := env.Posts.Posts(ctx, PostFilters{ListParams: ListParams{Page: 1, Limit: 20}})
		if err != nil {
			t.Fatalf("posts: %v", err)
		}
		for _, p := range page.Items {
			if p.AuthorID != db.TestAuthorID {
				t.Errorf("author sees post %d of author %d", p.ID, p.AuthorID)
			}
		}

		if _, err := env.Posts.Posts(t.Context(), PostFilters{ListParams: ListParams{Page: 1, Limit: 20}}); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized for anonymous back-office listing, got %v", err)
		}
	})

	t.Run("UpdateRetitlesAndReplacesTags", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		post, err := env.Posts.UpdatePost(ctx, UpdatePostInput{
			ID:         db.TestPostIndexing,
			Title:      strPtr("Indexing in Depth"),
			CategoryID: intPtr(0),
			TagIDs:     []int{db.TestTagUnused},
		})
		if err != nil {
			t.Fatalf("update post: %v", err)
		}

		if post.Slug != "indexing-in-depth" {
			t.Errorf("expected regenerated slug, got %q", post.Slug)
		}
		if post.CategoryID != nil {
			t.Errorf("category must be cleared, got %d", *post.CategoryID)
		}
		if len(post.Tags) != 1 || post.Tags[0].ID != db.TestTagUnused {
			t.Errorf("tags must be replaced, got %+v", post.Tags)
		}

		post, err = env.Posts.UpdatePost(ctx, UpdatePostInput{ID: db.TestPostIndexing, Status: strPtr(db.StatusDraft)})
		if err != nil {
			t.Fatalf("unpublish: %v", err)
		}
		if post.PublishedAt != nil {
			t.Error("draft must not keep published_at")
		}
	})

	t.Run("PublicVisibility", func(t *testing.T) {
		ctx, env := withTx(t)

		if _, err := env.Posts.PostBySlug(ctx, "draft-ideas"); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("draft must be hidden from the public, got %v", err)
		}
		if _, err := env.Posts.PostBySlug(asAuthor(ctx), "draft-ideas"); err != nil {
			t.Errorf("owner must see the draft: %v", err)
		}

		post, err := env.Posts.PostBySlug(ctx, "getting-started-with-go")
		if err != nil {
			t.Fatalf("post by slug: %v", err)
		}
		if post.CommentsCount != 4 {
			t.Errorf("expected 4 approved comments, got %d", post.CommentsCount)
		}

		page, err := env.Posts.PublishedPosts(ctx, PostFilters{ListParams: ListParams{Page: 1, Limit: 10}})
		if err != nil {
			t.Fatalf("published posts: %v", err)
		}
		if page.Pagination.Total != 3 {
			t.Errorf("expected 3 published posts, got %d", page.Pagination.Total)
		}

		draft := db.StatusDraft
		page, err = env.Posts.PostsByTag(ctx, "go", PostFilters{ListParams: ListParams{Page: 1, Limit: 10}, Status: &draft})
		if err != nil {
			t.Fatalf("posts by tag: %v", err)
		}
		for _, p := range page.Items {
			if p.Status != db.StatusPublished {
				t.Errorf("public tag listing returned %s post %d", p.Status, p.ID)
			}
		}
	})

	t.Run("IncrementViewsDeduplicates", func(t *testing.T) {
		ctx, env := withTx(t)

		for i, want := range []bool{true, false} {
			counted, err := env.Posts.IncrementViews(ctx, "getting-started-with-go", "192.0.2.1", nil)
			if err != nil {
				t.Fatalf("increment views: %v", err)
			}
			if counted != want {
				t.Errorf("call %d: expected %v, got %v", i+1, want, counted)
			}
		}

		if _, err := env.Posts.IncrementViews(ctx, "draft-ideas", "192.0.2.1", nil); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("expected ErrPostNotFound for a draft, got %v", err)
		}
	})

	t.Run("SearchLogsKeywords", func(t *testing.T) {
		ctx, env := withTx(t)

		page, err := env.Posts.SearchPosts(ctx, "  Indexing ", PostFilters{ListParams: ListParams{Page: 1, Limit: 10}})
		if err != nil {
			t.Fatalf("search posts: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].ID != db.TestPostIndexing {
			t.Fatalf("unexpected search result %+v", page.Items)
		}

		keywords, err := env.Analytics.SearchKeywords(asAdmin(ctx), 10, 1)
		if err != nil {
			t.Fatalf("search keywords: %v", err)
		}
		if len(keywords) != 1 || keywords[0].Keyword != "indexing" || keywords[0].Percentage != 100 {
			t.Errorf("unexpected keywords %+v", keywords)
		}
	})

	t.Run("PublishScheduled", func(t *testing.T) {
		ctx, env := withTx(t)

		count, err := env.Posts.PublishScheduledPosts(ctx)
		if err != nil {
			t.Fatalf("publish scheduled: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 post published, got %d", count)
		}

		post, err := env.Posts.PostBySlug(ctx, "scheduled-announcement")
		if err != nil {
			t.Fatalf("post by slug: %v", err)
		}
		if post.Status != db.StatusPublished || post.PublishedAt == nil {
			t.Errorf("post was not published: %s", post.Status)
		}
	})
}

func TestCommentManager_Integration(t *testing.T) {
	t.Run("ThreadForPublic", func(t *testing.T) {
		ctx, env := withTx(t)

		thread, err := env.Comments.CommentsByPost(ctx, db.TestPostGo, false)
		if err != nil {
			t.Fatalf("comments by post: %v", err)
		}
		if ids := commentIDs(thread); len(ids) != 1 || ids[0] != db.TestCommentRoot {
			t.Fatalf("expected only the approved root, got %v", ids)
		}
		if r := thread[0].Replies; len(r) != 1 || len(r[0].Replies) != 1 || r[0].Replies[0].ID != db.TestCommentNested {
			t.Errorf("unexpected reply tree %+v", r)
		}

		thread, err = env.Comments.CommentsByPost(asEditor(ctx), db.TestPostGo, false)
		if err != nil {
			t.Fatalf("comments by post: %v", err)
		}
		if len(thread) != 3 {
			t.Errorf("editor must see 3 roots, got %v", commentIDs(thread))
		}
	})

	t.Run("CreateApprovalRules", func(t *testing.T) {
		ctx, env := withTx(t)

		known, err := env.Comments.CreateComment(ctx, CommentInput{
			PostID: db.TestPostGo, AuthorName: "Alice", AuthorEmail: "ALICE@example.com", Content: "Back again",
		})
		if err != nil {
			t.Fatalf("create comment: %v", err)
		}
		if !known.IsApproved {
			t.Error("comment from a known commenter must be approved")
		}

		fresh, err := env.Comments.CreateComment(ctx, CommentInput{
			PostID: db.TestPostGo, ParentID: intPtr(db.TestCommentRoot),
			AuthorName: "Zed", AuthorEmail: "zed@example.com", Content: "First time here",
		})
		if err != nil {
			t.Fatalf("create comment: %v", err)
		}
		if fresh.IsApproved {
			t.Error("comment from a new commenter must wait for approval")
		}

		spam, err := env.Comments.CreateComment(ctx, CommentInput{
			PostID: db.TestPostGo, AuthorName: "Bot", AuthorEmail: "alice@example.com", Content: "Buy cheap watches",
		})
		if err != nil {
			t.Fatalf("create comment: %v", err)
		}
		if !spam.IsSpam || spam.IsApproved {
			t.Errorf("spam must be flagged and unapproved: %+v", spam)
		}

		if len(env.notifier.posted) != 2 {
			t.Errorf("expected 2 notifications, got %v", env.notifier.posted)
		}

		approved, err := env.Comments.ApproveComment(asEditor(ctx), fresh.ID)
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if !approved.IsApproved || len(env.notifier.approved) != 1 {
			t.Errorf("approval was not applied or notified")
		}
	})

	t.Run("CreateRejections", func(t *testing.T) {
		ctx, env := withTx(t)

		in := CommentInput{AuthorName: "Ann", AuthorEmail: "ann@example.com", Content: "Hi"}

		in.PostID = db.TestPostTravel
		if _, err := env.Comments.CreateComment(ctx, in); !errors.Is(err, ErrForbidden) {
			t.Errorf("closed post: expected ErrForbidden, got %v", err)
		}

		in.PostID = db.TestPostDraft
		if _, err := env.Comments.CreateComment(ctx, in); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("draft post: expected ErrPostNotFound, got %v", err)
		}

		in.PostID, in.ParentID = db.TestPostGo, intPtr(db.TestCommentIndexing)
		if _, err := env.Comments.CreateComment(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("foreign parent: expected ErrInvalidInput, got %v", err)
		}

		in.ParentID = nil
		if _, err := env.Settings.UpdateSiteSettings(asAdmin(ctx), UpdateSettingsInput{AllowComments: boolPtr(false)}); err != nil {
			t.Fatalf("update settings: %v", err)
		}
		if _, err := env.Comments.CreateComment(ctx, in); !errors.Is(err, ErrForbidden) {
			t.Errorf("site comments disabled: expected ErrForbidden, got %v", err)
		}
	})

	t.Run("DeleteCascades", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		if err := env.Comments.DeleteComment(ctx, db.TestCommentRoot); err != nil {
			t.Fatalf("delete comment: %v", err)
		}
		if _, err := env.Comments.CommentByID(ctx, db.TestCommentNested); !errors.Is(err, ErrCommentNotFound) {
			t.Errorf("nested reply must be deleted, got %v", err)
		}
		if err := env.Comments.DeleteComment(ctx, db.TestCommentRoot); !errors.Is(err, ErrCommentNotFound) {
			t.Errorf("expected ErrCommentNotFound on second delete, got %v", err)
		}
	})

	t.Run("BulkOperations", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		approved, err := env.Comments.BulkApprove(ctx, []int{db.TestCommentPending, db.TestCommentSpam, db.TestCommentRoot, 999})
		if err != nil {
			t.Fatalf("bulk approve: %v", err)
		}
		if approved != 2 {
			t.Errorf("expected 2 approved, got %d", approved)
		}

		deleted, err := env.Comments.BulkDelete(ctx, []int{db.TestCommentPending, db.TestCommentIndexing, 999})
		if err != nil {
			t.Fatalf("bulk delete: %v", err)
		}
		if deleted != 2 {
			t.Errorf("expected 2 deleted, got %d", deleted)
		}
	})

	t.Run("ModerationQueue", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		pending, err := env.Comments.PendingComments(ctx)
		if err != nil {
			t.Fatalf("pending comments: %v", err)
		}
		if ids := commentIDs(pending); len(ids) != 1 || ids[0] != db.TestCommentPending {
			t.Fatalf("expected only comment %d pending, got %v", db.TestCommentPending, ids)
		}
		if pending[0].Post == nil || len(pending[0].Replies) != 1 {
			t.Errorf("pending comment must carry its post and replies: %+v", pending[0])
		}

		if err := env.Comments.MarkAsSpam(ctx, db.TestCommentPending); err != nil {
			t.Fatalf("mark as spam: %v", err)
		}
		pending, err = env.Comments.PendingComments(ctx)
		if err != nil {
			t.Fatalf("pending comments: %v", err)
		}
		if len(pending) != 0 {
			t.Errorf("spam must leave the queue, got %v", commentIDs(pending))
		}
	})
}

func TestTaxonomy_Integration(t *testing.T) {
	t.Run("CategoryDeletePolicy", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		if err := env.Categories.DeleteCategory(ctx, db.TestCategoryTech, nil); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
		if err := env.Categories.DeleteCategory(ctx, db.TestCategoryTech, intPtr(db.TestCategoryTech)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if err := env.Categories.DeleteCategory(ctx, db.TestCategoryTech, intPtr(db.TestCategoryTravel)); err != nil {
			t.Fatalf("delete with reassign: %v", err)
		}

		post, err := env.Posts.PostByID(ctx, db.TestPostGo)
		if err != nil {
			t.Fatalf("post by id: %v", err)
		}
		if post.CategoryID == nil || *post.CategoryID != db.TestCategoryTravel {
			t.Errorf("post must move to travel, got %v", post.CategoryID)
		}

		if err := env.Categories.DeleteCategory(ctx, db.TestCategoryEmpty, nil); err != nil {
			t.Errorf("delete empty category: %v", err)
		}
		if err := env.Categories.DeleteCategory(ctx, db.TestCategoryEmpty, nil); !errors.Is(err, ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("CategorySlugs", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		category, err := env.Categories.CreateCategory(ctx, CategoryInput{Name: "Technology"})
		if err != nil {
			t.Fatalf("create category: %v", err)
		}
		if category.Slug != "technology-2" {
			t.Errorf("expected technology-2, got %q", category.Slug)
		}

		category, err = env.Categories.UpdateCategory(ctx, UpdateCategoryInput{ID: category.ID, Name: strPtr("Science & Tech")})
		if err != nil {
			t.Fatalf("update category: %v", err)
		}
		if category.Slug != "science-tech" {
			t.Errorf("expected science-tech, got %q", category.Slug)
		}
	})

	t.Run("Tags", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		found, err := env.Tags.SearchTags(ctx, "DATA")
		if err != nil {
			t.Fatalf("search tags: %v", err)
		}
		if len(found) != 1 || found[0].ID != db.TestTagDatabases {
			t.Errorf("unexpected search result %+v", found)
		}

		popular, err := env.Tags.PopularTags(ctx, 1)
		if err != nil {
			t.Fatalf("popular tags: %v", err)
		}
		if len(popular) != 1 || popular[0].ID != db.TestTagGo {
			t.Errorf("expected go as most popular, got %+v", popular)
		}

		if err := env.Tags.DeleteTag(ctx, db.TestTagGo); err != nil {
			t.Fatalf("delete tag: %v", err)
		}
		post, err := env.Posts.PostByID(ctx, db.TestPostGo)
		if err != nil {
			t.Fatalf("post by id: %v", err)
		}
		if len(post.Tags) != 0 {
			t.Errorf("tag links must cascade, got %+v", post.Tags)
		}
	})
}

func TestMediaManager_Integration(t *testing.T) {
	t.Run("UsageAndDeletePolicy", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asEditor(ctx)

		usage, err := env.Media.MediaUsage(ctx, db.TestMediaCover)
		if err != nil {
			t.Fatalf("media usage: %v", err)
		}
		if usage.TotalUsage != 2 || usage.Posts[0].UsageType != UsageFeatured || usage.Posts[1].UsageType != UsageContent {
			t.Errorf("unexpected usage %+v", usage)
		}

		if err := env.Media.DeleteMedia(ctx, db.TestMediaCover, false); !errors.Is(err, ErrConflict) {
			t.Errorf("expected ErrConflict, got %v", err)
		}
		if err := env.Media.DeleteMedia(ctx, db.TestMediaCover, true); err != nil {
			t.Fatalf("force delete: %v", err)
		}

		post, err := env.Posts.PostByID(ctx, db.TestPostGo)
		if err != nil {
			t.Fatalf("post by id: %v", err)
		}
		if post.FeaturedImageID != nil {
			t.Error("featured image must be detached")
		}
	})

	t.Run("OwnershipChecks", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asAuthor(ctx)

		if _, err := env.Media.UpdateMedia(ctx, db.TestMediaGuide, strPtr("mine now")); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}
		if _, err := env.Media.UploadMedia(ctx, UploadMediaInput{Filename: "a.txt", FilePath: "a.txt", MimeType: "text/plain"}, db.TestEditorID); !errors.Is(err, ErrForbidden) {
			t.Errorf("expected ErrForbidden, got %v", err)
		}

		media, err := env.Media.UpdateMedia(ctx, db.TestMediaCover, strPtr(""))
		if err != nil {
			t.Fatalf("update own media: %v", err)
		}
		if media.AltText != nil {
			t.Error("alt text must be cleared")
		}
	})

	t.Run("StoreUploadRendersThumbnail", func(t *testing.T) {
		ctx, env := withTx(t)
		ctx = asAuthor(ctx)

		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 320))); err != nil {
			t.Fatalf("encode png: %v", err)
		}

		media, err := env.Media.StoreUpload(ctx, Upload{
			Body:         &buf,
			OriginalName: "../../etc/Screenshot.PNG",
			ContentType:  "application/octet-stream",
		}, db.TestAuthorID)
		if err != nil {
			t.Fatalf("store upload: %v", err)
		}

		if media.MediaType != MediaImage || media.MimeType != "image/png" {
			t.Errorf("unexpected media kind %s %s", media.MediaType, media.MimeType)
		}
		if media.OriginalName != "Screenshot.PNG" {
			t.Errorf("original name must drop directories, got %q", media.OriginalName)
		}
		if !strings.HasSuffix(media.FilePath, ".png") || !env.storage.has(media.FilePath) {
			t.Errorf("file was not stored under %q", media.FilePath)
		}
		if media.ThumbnailPath == nil || !env.storage.has(*media.ThumbnailPath) {
			t.Fatalf("thumbnail was not stored: %v", media.ThumbnailPath)
		}

		url, err := env.Media.GenerateThumbnail(ctx, media.ID)
		if err != nil {
			t.Fatalf("generate thumbnail: %v", err)
		}
		if url != "/uploads/"+*media.ThumbnailPath {
			t.Errorf("unexpected thumbnail url %q", url)
		}

		if _, err := env.Media.GenerateThumbnail(ctx, db.TestMediaGuide); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for a document, got %v", err)
		}
	})
}

func TestSettingsManager_Integration(t *testing.T) {
	ctx, env := withTx(t)
	ctx = asAdmin(ctx)

	if _, err := env.Settings.UpdateSiteSettings(ctx, UpdateSettingsInput{GoogleAnalyticsID: strPtr("GA-123")}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	settings, err := env.Settings.UpdateSiteSettings(ctx, UpdateSettingsInput{
		SiteTitle:         strPtr("Gopher Notes"),
		GoogleAnalyticsID: strPtr("G-ABCDEF12"),
		PostsPerPage:      intPtr(20),
	})
	if err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if settings.SiteTitle != "Gopher Notes" || settings.PostsPerPage != 20 || !settings.RequireCommentApproval {
		t.Errorf("unexpected settings %+v", settings)
	}

	if err := env.Settings.UpdateTheme(ctx, "Dark"); err != nil {
		t.Fatalf("update theme: %v", err)
	}

	public, err := env.Settings.PublicSettings(t.Context())
	if err != nil {
		t.Fatalf("public settings: %v", err)
	}
	if public.SiteTitle != "Gopher Notes" || public.Theme != "dark" {
		t.Errorf("unexpected public settings %+v", public)
	}

	settings, err = env.Settings.ResetToDefault(ctx)
	if err != nil {
		t.Fatalf("reset settings: %v", err)
	}
	if settings.SiteTitle != "My Blog" || settings.GoogleAnalyticsID != nil {
		t.Errorf("settings were not reset: %+v", settings)
	}
}

func TestAnalyticsManager_Integration(t *testing.T) {
	ctx, env := withTx(t)
	ctx = asAdmin(ctx)

	for i, want := range []bool{true, false} {
		recorded, err := env.Analytics.RecordPageView(ctx, PageViewInput{
			Path: "/posts/getting-started-with-go", IPAddress: "198.51.100.7",
			Referer: strPtr("https://www.google.com/"),
		})
		if err != nil {
			t.Fatalf("record page view: %v", err)
		}
		if recorded != want {
			t.Errorf("call %d: expected %v, got %v", i+1, want, recorded)
		}
	}

	sources, err := env.Analytics.TrafficSources(ctx, 7)
	if err != nil {
		t.Fatalf("traffic sources: %v", err)
	}
	if len(sources) != 1 || sources[0].Source != SourceSearch || sources[0].Percentage != 100 {
		t.Errorf("unexpected sources %+v", sources)
	}

	engagement, err := env.Analytics.UserEngagement(ctx, 7)
	if err != nil {
		t.Fatalf("user engagement: %v", err)
	}
	if engagement.PageViews != 1 || engagement.UniqueVisitors != 1 || engagement.BounceRate != 100 {
		t.Errorf("unexpected engagement %+v", engagement)
	}

	if _, err := env.Posts.IncrementViews(ctx, "postgresql-indexing-tips", "198.51.100.7", nil); err != nil {
		t.Fatalf("increment views: %v", err)
	}

	stats, err := env.Analytics.PostAnalytics(ctx, intPtr(db.TestPostIndexing), 7)
	if err != nil {
		t.Fatalf("post analytics: %v", err)
	}
	if stats.Views != 1 || stats.UniqueViews != 1 || len(stats.DailyStats) != 7 {
		t.Errorf("unexpected post analytics %+v", stats)
	}
	if last := stats.DailyStats[len(stats.DailyStats)-1]; last.Views != 1 {
		t.Errorf("today's views must be 1, got %d", last.Views)
	}

	if _, err := env.Analytics.PostAnalytics(ctx, intPtr(999), 7); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}

	dashboard, err := env.Analytics.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("dashboard stats: %v", err)
	}
	if dashboard.TotalPosts != 6 || dashboard.PublishedPosts != 3 || dashboard.PendingComments != 1 {
		t.Errorf("unexpected dashboard %+v", dashboard.EntityCounts)
	}
	if len(dashboard.RecentActivity) == 0 || len(dashboard.RecentActivity) > recentActivityLimit {
		t.Errorf("unexpected activity size %d", len(dashboard.RecentActivity))
	}

	popular, err := env.Analytics.PopularPosts(ctx, 1, 7)
	if err != nil {
		t.Fatalf("popular posts: %v", err)
	}
	if len(popular) != 1 || popular[0].ID != db.TestPostIndexing {
		t.Errorf("expected indexing post on top, got %+v", popular)
	}

}
