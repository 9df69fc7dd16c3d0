package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// The site-wide notice lives in a single row.
const noticeRowID = 1

type NoticeRepo struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewNoticeRepo(db *sql.DB, sb sq.StatementBuilderType) *NoticeRepo {
	return &NoticeRepo{db: db, sb: sb}
}

// Get returns the current notice, or ErrNotFound when none was ever set.
func (r *NoticeRepo) Get(ctx context.Context) (string, error) {
	query, args, err := r.sb.Select("text").From("notice").Where(sq.Eq{"id": noticeRowID}).ToSql()
	if err != nil {
		return "", fmt.Errorf("building notice query: %w", err)
	}
	var text string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&text); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("notice: %w", ErrNotFound)
		}
		return "", fmt.Errorf("reading notice: %w", err)
	}
	return text, nil
}

func (r *NoticeRepo) Set(ctx context.Context, text string) error {
	query, args, err := r.sb.Insert("notice").
		Columns("id", "text").
		Values(noticeRowID, text).
		Suffix("ON CONFLICT (id) DO UPDATE SET text = excluded.text").
		ToSql()
	if err != nil {
		return fmt.Errorf("building notice upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}
