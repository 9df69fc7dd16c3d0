// Package analytics runs read-only checks over a timetable snapshot.
package analytics

import "github.com/alexanderramin/kesteai/internal/domain"

// Reference holds the authoritative name sets lessons are validated against.
type Reference struct {
	Groups   map[string]struct{}
	Teachers map[string]struct{}
	Subjects map[string]struct{}
	Rooms    map[string]struct{}
}

// NewReference builds name sets from the four reference collections.
// Groups and subjects are keyed by name, teachers by full name and rooms
// by number.
func NewReference(groups []domain.Group, teachers []domain.Teacher, subjects []domain.Subject, rooms []domain.Room) Reference {
	ref := Reference{
		Groups:   make(map[string]struct{}, len(groups)),
		Teachers: make(map[string]struct{}, len(teachers)),
		Subjects: make(map[string]struct{}, len(subjects)),
		Rooms:    make(map[string]struct{}, len(rooms)),
	}
	for _, g := range groups {
		ref.Groups[g.Name] = struct{}{}
	}
	for _, t := range teachers {
		ref.Teachers[t.FullName] = struct{}{}
	}
	for _, s := range subjects {
		ref.Subjects[s.Name] = struct{}{}
	}
	for _, r := range rooms {
		ref.Rooms[r.Number] = struct{}{}
	}
	return ref
}

func has(set map[string]struct{}, v string) bool {
	_, ok := set[v]
	return ok
}
