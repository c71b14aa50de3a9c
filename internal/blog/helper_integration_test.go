//go:build integration

package blog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

type testEnv struct {
	*Managers
	notifier *recordingNotifier
	storage  *memStorage
}

// withTx builds managers over a transaction that is rolled back when the test ends.
func withTx(t *testing.T) (context.Context, *testEnv) {
	t.Helper()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	env := &testEnv{notifier: &recordingNotifier{}, storage: newMemStorage()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	env.Managers = New(db.New(tx), logger, DefaultOptions(), Deps{
		Storage:  env.storage,
		Notifier: env.notifier,
	})

	return context.Background(), env
}

func as(ctx context.Context, userID int, role Role) context.Context {
	return NewContext(ctx, &Principal{UserID: userID, Role: role})
}

func asAdmin(ctx context.Context) context.Context  { return as(ctx, db.TestAdminID, RoleAdmin) }
func asEditor(ctx context.Context) context.Context { return as(ctx, db.TestEditorID, RoleEditor) }
func asAuthor(ctx context.Context) context.Context { return as(ctx, db.TestAuthorID, RoleAuthor) }

type recordingNotifier struct {
	mu            sync.Mutex
	verifications map[string]string
	resets        map[string]string
	posted        []int
	approved      []int
}

func (n *recordingNotifier) EmailVerification(_ context.Context, user db.User, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.verifications == nil {
		n.verifications = make(map[string]string)
	}
	n.verifications[user.Email] = token
	return nil
}

func (n *recordingNotifier) PasswordReset(_ context.Context, user db.User, token string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.resets == nil {
		n.resets = make(map[string]string)
	}
	n.resets[user.Email] = token
	return nil
}

func (n *recordingNotifier) CommentPosted(_ context.Context, _ db.Post, comment db.Comment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posted = append(n.posted, comment.ID)
	return nil
}

func (n *recordingNotifier) CommentApproved(_ context.Context, comment db.Comment) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.approved = append(n.approved, comment.ID)
	return nil
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string][]byte)}
}

func (s *memStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %q not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStorage) URL(key string) string {
	return "/uploads/" + key
}

func (s *memStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

func commentIDs(comments []Comment) []int {
	ids := make([]int, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}

func boolPtr(b bool) *bool { return &b }
