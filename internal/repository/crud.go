package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/kesteai/internal/db"
)

type scanner interface {
	Scan(dest ...any) error
}

// table describes how one record type maps onto its SQL table. The first
// column is always the id.
type table[T any] struct {
	name    string
	columns []string
	values  func(T) []any
	scan    func(scanner) (T, error)
	id      func(T) int64
}

// crud carries the statements shared by every timetable table.
type crud[T any] struct {
	db *sql.DB
	sb sq.StatementBuilderType
	t  table[T]
}

func (c crud[T]) List(ctx context.Context) ([]T, error) {
	return c.list(ctx, c.db)
}

func (c crud[T]) list(ctx context.Context, q db.DBTX) ([]T, error) {
	query, args, err := c.sb.Select(c.t.columns...).From(c.t.name).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building %s list query: %w", c.t.name, err)
	}
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.t.name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := c.t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", c.t.name, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (c crud[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	query, args, err := c.sb.Select(c.t.columns...).From(c.t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return zero, fmt.Errorf("building %s get query: %w", c.t.name, err)
	}
	v, err := c.t.scan(c.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s %d: %w", c.t.name, id, ErrNotFound)
		}
		return zero, fmt.Errorf("scanning %s: %w", c.t.name, err)
	}
	return v, nil
}

func (c crud[T]) Create(ctx context.Context, v T) error {
	return c.insert(ctx, c.db, v)
}

func (c crud[T]) insert(ctx context.Context, q db.DBTX, v T) error {
	query, args, err := c.sb.Insert(c.t.name).Columns(c.t.columns...).Values(c.t.values(v)...).ToSql()
	if err != nil {
		return fmt.Errorf("building %s insert: %w", c.t.name, err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting into %s: %w", c.t.name, err)
	}
	return nil
}

func (c crud[T]) Update(ctx context.Context, v T) error {
	values := c.t.values(v)
	set := make(map[string]any, len(c.t.columns)-1)
	for i, col := range c.t.columns[1:] {
		set[col] = values[i+1]
	}
	query, args, err := c.sb.Update(c.t.name).SetMap(set).Where(sq.Eq{"id": c.t.id(v)}).ToSql()
	if err != nil {
		return fmt.Errorf("building %s update: %w", c.t.name, err)
	}
	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s: %w", c.t.name, err)
	}
	return requireAffected(res, c.t.name, c.t.id(v))
}

func (c crud[T]) Delete(ctx context.Context, id int64) error {
	query, args, err := c.sb.Delete(c.t.name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("building %s delete: %w", c.t.name, err)
	}
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting from %s: %w", c.t.name, err)
	}
	return nil
}

func requireAffected(res sql.Result, name string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", name, id, ErrNotFound)
	}
	return nil
}
