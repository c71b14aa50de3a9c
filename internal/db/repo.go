package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTx runs fn inside a transaction. A repository that already wraps a
// transaction runs fn directly in it.
func (r *Repository) RunInTx(ctx context.Context, fn func(tx *Repository) error) error {
	db, ok := r.db.(*pg.DB)
	if !ok {
		return fn(r)
	}

	return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		return fn(New(tx))
	})
}

// MaxPage bounds the page number so the offset stays far from overflow.
const MaxPage = 100_000

// Pager is a 1-based page window.
type Pager struct {
	Page     int
	PageSize int
}

func (p Pager) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

func (p Pager) apply(q *orm.Query) *orm.Query {
	return q.Limit(p.PageSize).Offset(p.Offset())
}

func (p Pager) validate() error {
	if p.Page < 1 || p.PageSize < 1 {
		return fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			p.Page, p.PageSize,
		)
	}
	if p.Page > MaxPage {
		return fmt.Errorf("page must not exceed %d: page=%d", MaxPage, p.Page)
	}
	return nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func pgErrorCode(err error) string {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// TakenSlugs returns the slugs in table that equal base or extend it with a
// "-suffix", ignoring the row excludeID.
func (r *Repository) TakenSlugs(ctx context.Context, table, base string, excludeID int) ([]string, error) {
	var slugs []string
	_, err := r.db.QueryContext(ctx, &slugs, `
		SELECT "slug" FROM ?
		WHERE ("slug" = ? OR "slug" LIKE ?) AND "id" <> ?`,
		pg.Ident(table), base, base+"-%", excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query slugs of %s: %w", table, err)
	}

	return slugs, nil
}

// advisoryLock takes a transaction-scoped advisory lock on the key pair.
func (r *Repository) advisoryLock(ctx context.Context, key1, key2 string) error {
	_, err := r.db.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext(?), hashtext(?))`, key1, key2)
	if err != nil {
		return fmt.Errorf("failed to take advisory lock: %w", err)
	}
	return nil
}
