package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// ValidateSeedSchema checks the seed for errors before anything is written.
// Returns a slice of all validation errors found.
func ValidateSeedSchema(schema *SeedSchema) []error {
	var errs []error

	errs = append(errs, uniqueNames("groups", "name", schema.Groups, func(g domain.Group) string { return g.Name })...)
	errs = append(errs, uniqueNames("teachers", "fullName", schema.Teachers, func(t domain.Teacher) string { return t.FullName })...)
	errs = append(errs, uniqueNames("rooms", "number", schema.Rooms, func(r domain.Room) string { return r.Number })...)
	errs = append(errs, uniqueNames("subjects", "name", schema.Subjects, func(s domain.Subject) string { return s.Name })...)

	for i, l := range schema.Schedule {
		errs = append(errs, validateLesson(i, l)...)
	}
	return errs
}

func uniqueNames[T any](collection, field string, items []T, name func(T) string) []error {
	var errs []error
	seen := make(map[string]int, len(items))
	for i, item := range items {
		n := name(item)
		if n == "" {
			errs = append(errs, fmt.Errorf("%s[%d].%s is required", collection, i, field))
			continue
		}
		if first, dup := seen[n]; dup {
			errs = append(errs, fmt.Errorf("%s[%d].%s %q duplicates %s[%d]", collection, i, field, n, collection, first))
			continue
		}
		seen[n] = i
	}
	return errs
}

func validateLesson(i int, l domain.Lesson) []error {
	var errs []error
	required := []struct {
		field, value string
	}{
		{"group", l.Group},
		{"subject", l.Subject},
		{"teacher", l.Teacher},
		{"dayOfWeek", l.DayOfWeek},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("schedule[%d].%s is required", i, r.field))
		}
	}

	start, startErr := time.Parse("15:04", l.TimeStart)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("schedule[%d].timeStart: invalid time %q (expected HH:MM)", i, l.TimeStart))
	}
	end, endErr := time.Parse("15:04", l.TimeEnd)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("schedule[%d].timeEnd: invalid time %q (expected HH:MM)", i, l.TimeEnd))
	}
	if startErr == nil && endErr == nil && !end.After(start) {
		errs = append(errs, fmt.Errorf("schedule[%d].timeEnd %q must be after timeStart %q", i, l.TimeEnd, l.TimeStart))
	}
	return errs
}
