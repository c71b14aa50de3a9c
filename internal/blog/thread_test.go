package blog

import (
	"testing"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func threadFixture() []db.Comment {
	return []db.Comment{
		{ID: 1, Content: "root", IsApproved: true},
		{ID: 2, ParentID: intPtr(1), Content: "reply", IsApproved: true},
		{ID: 3, ParentID: intPtr(2), Content: "nested", IsApproved: true},
		{ID: 4, Content: "pending"},
		{ID: 5, ParentID: intPtr(4), Content: "under pending", IsApproved: true},
		{ID: 6, Content: "spam", IsSpam: true},
		{ID: 7, ParentID: intPtr(1), Content: "second reply", IsApproved: true},
	}
}

// shape renders a thread as nested ids for compact comparison.
func shape(comments []Comment) []any {
	result := make([]any, 0, len(comments))
	for _, c := range comments {
		if len(c.Replies) == 0 {
			result = append(result, c.ID)
			continue
		}
		result = append(result, map[int][]any{c.ID: shape(c.Replies)})
	}
	return result
}

func TestBuildThread(t *testing.T) {
	all := func(*db.Comment) bool { return true }

	t.Run("AllComments", func(t *testing.T) {
		thread := BuildThread(threadFixture(), all)

		want := []any{
			map[int][]any{1: {map[int][]any{2: {3}}, 7}},
			map[int][]any{4: {5}},
			6,
		}
		assert.Equal(t, want, shape(thread))
	})

	t.Run("PublicHidesSubtrees", func(t *testing.T) {
		thread := BuildThread(threadFixture(), isPublicComment)

		want := []any{map[int][]any{1: {map[int][]any{2: {3}}, 7}}}
		assert.Equal(t, want, shape(thread))
	})

	t.Run("HiddenMiddleHidesDescendants", func(t *testing.T) {
		list := threadFixture()
		list[1].IsApproved = false

		thread := BuildThread(list, isPublicComment)
		require.Len(t, thread, 1)
		assert.Equal(t, []any{map[int][]any{1: {7}}}, shape(thread))
	})

	t.Run("OrphanBecomesRoot", func(t *testing.T) {
		list := []db.Comment{
			{ID: 10, ParentID: intPtr(99), IsApproved: true},
			{ID: 11, ParentID: intPtr(10), IsApproved: true},
		}

		assert.Equal(t, []any{map[int][]any{10: {11}}}, shape(BuildThread(list, all)))
	})

	t.Run("CycleTerminates", func(t *testing.T) {
		list := []db.Comment{
			{ID: 1, ParentID: intPtr(2)},
			{ID: 2, ParentID: intPtr(1)},
			{ID: 3},
		}

		assert.Equal(t, []any{3}, shape(BuildThread(list, all)))
	})

	t.Run("Empty", func(t *testing.T) {
		thread := BuildThread(nil, all)
		assert.NotNil(t, thread)
		assert.Empty(t, thread)
	})

	t.Run("DeepChain", func(t *testing.T) {
		list := make([]db.Comment, 10000)
		for i := range list {
			list[i] = db.Comment{ID: i + 1, CreatedAt: time.Unix(int64(i), 0)}
			if i > 0 {
				list[i].ParentID = intPtr(i)
			}
		}

		thread := BuildThread(list, all)
		require.Len(t, thread, 1)

		depth, node := 1, thread[0]
		for len(node.Replies) > 0 {
			node = node.Replies[0]
			depth++
		}
		assert.Equal(t, len(list), depth)
	})
}
