package interpreter

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/kesteai/internal/analytics"
	"github.com/alexanderramin/kesteai/internal/domain"
)

var fieldLabels = map[analytics.Field]string{
	analytics.FieldGroup:   "топ",
	analytics.FieldTeacher: "оқытушы",
	analytics.FieldSubject: "пән",
	analytics.FieldRoom:    "аудитория",
}

var conflictLabels = map[analytics.ConflictKind]string{
	analytics.ConflictGroup:   "Топ",
	analytics.ConflictTeacher: "Оқытушы",
	analytics.ConflictRoom:    "Аудитория",
}

// FormatIssue renders one validity issue.
func FormatIssue(in analytics.Issue) string {
	parts := make([]string, 0, len(in.Fields))
	for _, f := range in.Fields {
		parts = append(parts, fmt.Sprintf("%s '%s'", fieldLabels[f.Field], f.Value))
	}
	return fmt.Sprintf("Жазба #%d: %s анықталмады.", in.Position, strings.Join(parts, ", "))
}

// FormatDuplicate renders one repeated lesson.
func FormatDuplicate(l domain.Lesson) string {
	return fmt.Sprintf("Қайталанатын жазба: %s, %s, %s, %s, %s-%s, %s",
		l.Group, l.Subject, l.Teacher, l.DayOfWeek, l.TimeStart, l.TimeEnd, l.Room)
}

// FormatConflict renders one double booking.
func FormatConflict(c analytics.Conflict) string {
	return fmt.Sprintf("%s %s үшін қақтығыс: %s %s-%s",
		conflictLabels[c.Kind], c.Value, c.DayOfWeek, c.TimeStart, c.TimeEnd)
}

func (it *Interpreter) validity(ctx context.Context) (Reply, error) {
	lessons, err := it.store.ListLessons(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing lessons: %w", err)
	}
	ref, err := it.reference(ctx)
	if err != nil {
		return Reply{}, err
	}

	issues := analytics.CheckValidity(lessons, ref)
	if len(issues) == 0 {
		return say(it.pick(allValidReplies)), nil
	}
	lines := make([]string, 0, len(issues))
	for _, in := range issues {
		lines = append(lines, FormatIssue(in))
	}
	return say(replyValidityHeader + strings.Join(lines, "\n")), nil
}

func (it *Interpreter) duplicates(ctx context.Context) (Reply, error) {
	lessons, err := it.store.ListLessons(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing lessons: %w", err)
	}

	dups := analytics.FindDuplicates(lessons)
	if len(dups) == 0 {
		return say(it.pick(noDuplicatesReplies)), nil
	}
	lines := make([]string, 0, len(dups))
	for _, l := range dups {
		lines = append(lines, FormatDuplicate(l))
	}
	return say(replyDuplicatesHeader + strings.Join(lines, "\n")), nil
}

func (it *Interpreter) conflicts(ctx context.Context) (Reply, error) {
	lessons, err := it.store.ListLessons(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing lessons: %w", err)
	}

	found := analytics.FindConflicts(lessons)
	if len(found) == 0 {
		return say(it.pick(noConflictsReplies)), nil
	}
	lines := make([]string, 0, len(found))
	for _, c := range found {
		lines = append(lines, FormatConflict(c))
	}
	return say(replyConflictsHeader + strings.Join(lines, "\n")), nil
}

// purge keeps only fully valid lessons and reports how many were dropped.
func (it *Interpreter) purge(ctx context.Context) (Reply, error) {
	lessons, err := it.store.ListLessons(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing lessons: %w", err)
	}
	ref, err := it.reference(ctx)
	if err != nil {
		return Reply{}, err
	}

	kept, removed := analytics.FilterValid(lessons, ref)
	if err := it.store.ReplaceLessons(ctx, kept); err != nil {
		return Reply{}, fmt.Errorf("replacing lessons: %w", err)
	}
	return Reply{
		Text:    fmt.Sprintf(it.pick(purgeDoneReplies), removed),
		Changed: domain.EntitySchedule,
	}, nil
}
