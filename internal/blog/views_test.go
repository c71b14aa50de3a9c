package blog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryViews map[string]bool

func (c memoryViews) Seen(_ context.Context, key string, _ time.Duration) (bool, error) {
	seen := c[key]
	c[key] = true
	return seen, nil
}

func (c memoryViews) Forget(_ context.Context, key string) error {
	delete(c, key)
	return nil
}

func TestRecordView(t *testing.T) {
	ctx := context.Background()
	b := &base{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), opts: DefaultOptions()}

	t.Run("SecondVisitSkipsStore", func(t *testing.T) {
		cache := memoryViews{}
		var writes int
		record := func() (bool, error) { writes++; return true, nil }

		recorded, err := b.recordView(ctx, cache, "view:post:1:10.0.0.1", record)
		require.NoError(t, err)
		assert.True(t, recorded)

		recorded, err = b.recordView(ctx, cache, "view:post:1:10.0.0.1", record)
		require.NoError(t, err)
		assert.False(t, recorded)
		assert.Equal(t, 1, writes)
	})

	t.Run("FailedWriteReleasesMark", func(t *testing.T) {
		cache := memoryViews{}
		_, err := b.recordView(ctx, cache, "view:page:/about:10.0.0.1", func() (bool, error) {
			return false, errors.New("connection reset")
		})
		require.Error(t, err)
		assert.NotContains(t, cache, "view:page:/about:10.0.0.1")

		recorded, err := b.recordView(ctx, cache, "view:page:/about:10.0.0.1", func() (bool, error) { return true, nil })
		require.NoError(t, err)
		assert.True(t, recorded)
	})

	t.Run("NoCache", func(t *testing.T) {
		recorded, err := b.recordView(ctx, nil, "view:post:1:10.0.0.1", func() (bool, error) { return true, nil })
		require.NoError(t, err)
		assert.True(t, recorded)
	})
}
