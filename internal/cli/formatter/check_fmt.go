package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/kesteai/internal/analytics"
	"github.com/alexanderramin/kesteai/internal/domain"
)

var lessonHeaders = []string{"#", "GROUP", "SUBJECT", "TEACHER", "DAY", "TIME", "ROOM"}

func lessonRow(pos int, l domain.Lesson) []string {
	return []string{
		fmt.Sprint(pos), l.Group, l.Subject, l.Teacher, l.DayOfWeek,
		l.TimeStart + "-" + l.TimeEnd, l.Room,
	}
}

func summary(n int, clean, dirty string) string {
	if n == 0 {
		return StyleGreen.Render("✓ "+clean) + "\n"
	}
	return StyleRed.Render(fmt.Sprintf("✗ %d %s", n, dirty)) + "\n"
}

// FormatValidity lists lessons referencing unknown groups, teachers,
// subjects or rooms; unknown values are highlighted.
func FormatValidity(issues []analytics.Issue) string {
	var b strings.Builder
	b.WriteString(Header("Validity") + "\n\n")
	if len(issues) > 0 {
		headers := append(append([]string{}, lessonHeaders...), "UNKNOWN")
		rows := make([][]string, 0, len(issues))
		for _, in := range issues {
			fields := make([]string, 0, len(in.Fields))
			for _, f := range in.Fields {
				fields = append(fields, StyleYellow.Render(string(f.Field)))
			}
			rows = append(rows, append(lessonRow(in.Position, in.Lesson), strings.Join(fields, ",")))
		}
		b.WriteString(RenderTable(headers, rows) + "\n")
	}
	b.WriteString(summary(len(issues), "all lessons reference known records", "invalid lessons"))
	return b.String()
}

func FormatDuplicates(dups []domain.Lesson) string {
	var b strings.Builder
	b.WriteString(Header("Duplicates") + "\n\n")
	if len(dups) > 0 {
		rows := make([][]string, 0, len(dups))
		for i, l := range dups {
			rows = append(rows, lessonRow(i+1, l))
		}
		b.WriteString(RenderTable(lessonHeaders, rows) + "\n")
	}
	b.WriteString(summary(len(dups), "no duplicate lessons", "duplicate lessons"))
	return b.String()
}

func FormatConflicts(conflicts []analytics.Conflict) string {
	var b strings.Builder
	b.WriteString(Header("Conflicts") + "\n\n")
	if len(conflicts) > 0 {
		rows := make([][]string, 0, len(conflicts))
		for _, c := range conflicts {
			rows = append(rows, []string{
				StyleYellow.Render(string(c.Kind)), c.Value, c.DayOfWeek, c.TimeStart + "-" + c.TimeEnd,
			})
		}
		b.WriteString(RenderTable([]string{"KIND", "VALUE", "DAY", "TIME"}, rows) + "\n")
	}
	b.WriteString(summary(len(conflicts), "no double bookings", "conflicts"))
	return b.String()
}
