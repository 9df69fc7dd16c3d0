package analytics

import (
	"strings"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// CompositeKey joins the fields that identify a lesson occurrence.
func CompositeKey(l domain.Lesson) string {
	return strings.Join([]string{
		l.Group, l.Subject, l.Teacher, l.DayOfWeek, l.TimeStart, l.TimeEnd, l.Room,
	}, "|")
}

// FindDuplicates returns every lesson whose composite key was already seen
// earlier in the list. The first occurrence of a key is never reported.
func FindDuplicates(lessons []domain.Lesson) []domain.Lesson {
	seen := make(map[string]struct{}, len(lessons))
	var dups []domain.Lesson
	for _, l := range lessons {
		key := CompositeKey(l)
		if _, ok := seen[key]; ok {
			dups = append(dups, l)
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}
