package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/kesteai/internal/db"
	"github.com/alexanderramin/kesteai/internal/domain"
)

// LessonRepo stores the timetable. Lessons are listed in id order, which is
// creation order since ids are time based.
type LessonRepo struct {
	crud[domain.Lesson]
	uow db.UnitOfWork
}

func NewLessonRepo(database *sql.DB, sb sq.StatementBuilderType, uow db.UnitOfWork) *LessonRepo {
	return &LessonRepo{
		crud: crud[domain.Lesson]{db: database, sb: sb, t: table[domain.Lesson]{
			name:    "lessons",
			columns: []string{"id", "group_name", "subject", "teacher", "room", "day_of_week", "time_start", "time_end"},
			values: func(l domain.Lesson) []any {
				return []any{l.ID, l.Group, l.Subject, l.Teacher, l.Room, l.DayOfWeek, l.TimeStart, l.TimeEnd}
			},
			scan: func(s scanner) (domain.Lesson, error) {
				var l domain.Lesson
				err := s.Scan(&l.ID, &l.Group, &l.Subject, &l.Teacher, &l.Room, &l.DayOfWeek, &l.TimeStart, &l.TimeEnd)
				return l, err
			},
			id: func(l domain.Lesson) int64 { return l.ID },
		}},
		uow: uow,
	}
}

// ReplaceAll swaps the whole timetable for lessons in one transaction.
func (r *LessonRepo) ReplaceAll(ctx context.Context, lessons []domain.Lesson) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		query, args, err := r.sb.Delete(r.t.name).ToSql()
		if err != nil {
			return fmt.Errorf("building lessons clear: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clearing lessons: %w", err)
		}
		for _, l := range lessons {
			if err := r.insert(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}
