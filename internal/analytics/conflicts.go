package analytics

import "github.com/alexanderramin/kesteai/internal/domain"

// ConflictKind is the resource two lessons compete for.
type ConflictKind string

const (
	ConflictGroup   ConflictKind = "group"
	ConflictTeacher ConflictKind = "teacher"
	ConflictRoom    ConflictKind = "room"
)

// Conflict is one double-booked resource in one time slot.
type Conflict struct {
	Kind      ConflictKind
	Value     string
	DayOfWeek string
	TimeStart string
	TimeEnd   string
}

// FindConflicts compares every unordered pair of lessons that share day,
// start and end. A pair yields up to three conflicts: same group, same
// teacher, same room. Identical conflicts collapse to the first occurrence.
//
// The pairwise scan is O(n²); timetables here hold tens to low hundreds of
// lessons.
func FindConflicts(lessons []domain.Lesson) []Conflict {
	seen := make(map[Conflict]struct{})
	var out []Conflict
	add := func(c Conflict) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for i := 0; i < len(lessons); i++ {
		for j := i + 1; j < len(lessons); j++ {
			a, b := lessons[i], lessons[j]
			if a.DayOfWeek != b.DayOfWeek || a.TimeStart != b.TimeStart || a.TimeEnd != b.TimeEnd {
				continue
			}
			at := func(kind ConflictKind, v string) Conflict {
				return Conflict{Kind: kind, Value: v, DayOfWeek: a.DayOfWeek, TimeStart: a.TimeStart, TimeEnd: a.TimeEnd}
			}
			if a.Group == b.Group {
				add(at(ConflictGroup, a.Group))
			}
			if a.Teacher == b.Teacher {
				add(at(ConflictTeacher, a.Teacher))
			}
			if a.Room == b.Room {
				add(at(ConflictRoom, a.Room))
			}
		}
	}
	return out
}
