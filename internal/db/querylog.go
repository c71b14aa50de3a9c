package db

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-pg/pg/v10"
)

// QueryLogger implements pg.QueryHook and logs every executed statement at debug level.
type QueryLogger struct {
	logger *slog.Logger
}

func NewQueryLogger(logger *slog.Logger) *QueryLogger {
	return &QueryLogger{
		logger: logger,
	}
}

func (h *QueryLogger) BeforeQuery(ctx context.Context, _ *pg.QueryEvent) (context.Context, error) {
	return ctx, nil
}

func (h *QueryLogger) AfterQuery(ctx context.Context, event *pg.QueryEvent) error {
	query, err := event.FormattedQuery()
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to format query", "error", err)
		return nil
	}

	args := []any{
		"query", string(query),
		"duration", time.Since(event.StartTime),
	}
	if event.Err != nil {
		args = append(args, "error", event.Err)
	}

	h.logger.DebugContext(ctx, "SQL query executed", args...)

	return nil
}
