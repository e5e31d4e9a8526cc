package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// execOne runs a statement that must touch exactly one row.
func (r *BaseRepository) execOne(ctx context.Context, what, id, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return translatePgError(err, fmt.Sprintf("failed to %s %s", what, id))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s: %s not found", what, id))
	}
	return nil
}

// translatePgError maps constraint violations onto application errors.
func translatePgError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
		case "23503", "23514", "22P02":
			return fmt.Errorf("%s: %w: %s", msg, apperrors.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// conditions accumulates WHERE clauses and their positional arguments.
type conditions struct {
	clauses []string
	args    []any
}

// add appends clause, whose %d verbs are replaced by the positions of args.
func (c *conditions) add(clause string, args ...any) {
	positions := make([]any, len(args))
	for i, arg := range args {
		c.args = append(c.args, arg)
		positions[i] = len(c.args)
	}
	c.clauses = append(c.clauses, fmt.Sprintf(clause, positions...))
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(c.clauses, " AND ")
}

// addCursor restricts a (created_at, id) DESC listing to rows after nextToken.
func (c *conditions) addCursor(createdAtCol, idCol string, nextToken *string) error {
	if nextToken == nil || *nextToken == "" {
		return nil
	}
	createdAt, id, err := pagination.DecodeToken(*nextToken)
	if err != nil {
		return apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	}
	c.add("("+createdAtCol+", "+idCol+") < ($%d, $%d)", createdAt, id)
	return nil
}

// limitOf returns limit or the default page size.
func limitOf(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}

// pageToken trims a limit+1 result to limit and returns the next page token.
func pageToken[T any](items []T, limit int, key func(T) (time.Time, string)) ([]T, *string) {
	if len(items) <= limit {
		return items, nil
	}
	items = items[:limit]
	createdAt, id := key(items[limit-1])
	token := pagination.EncodeToken(createdAt, id)
	return items, &token
}
