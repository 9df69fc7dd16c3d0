package analytics

import "github.com/alexanderramin/kesteai/internal/domain"

// Field identifies a lesson attribute that failed a reference lookup.
type Field string

const (
	FieldGroup   Field = "group"
	FieldTeacher Field = "teacher"
	FieldSubject Field = "subject"
	FieldRoom    Field = "room"
)

// FieldError is one unknown value on a lesson.
type FieldError struct {
	Field Field
	Value string
}

// Issue lists every unknown field on one lesson. Position is 1-based in the
// order the lessons were given.
type Issue struct {
	Position int
	Lesson   domain.Lesson
	Fields   []FieldError
}

// Inspect returns the unknown fields of a single lesson in the order group,
// teacher, subject, room. Empty fields are not looked up.
func (r Reference) Inspect(l domain.Lesson) []FieldError {
	var errs []FieldError
	if l.Group != "" && !has(r.Groups, l.Group) {
		errs = append(errs, FieldError{Field: FieldGroup, Value: l.Group})
	}
	if l.Teacher != "" && !has(r.Teachers, l.Teacher) {
		errs = append(errs, FieldError{Field: FieldTeacher, Value: l.Teacher})
	}
	if l.Subject != "" && !has(r.Subjects, l.Subject) {
		errs = append(errs, FieldError{Field: FieldSubject, Value: l.Subject})
	}
	if l.Room != "" && !has(r.Rooms, l.Room) {
		errs = append(errs, FieldError{Field: FieldRoom, Value: l.Room})
	}
	return errs
}

// Valid reports whether every non-empty field of l is known.
func (r Reference) Valid(l domain.Lesson) bool {
	return len(r.Inspect(l)) == 0
}

// CheckValidity returns one Issue per lesson with at least one unknown field.
// An empty result means the timetable is fully valid.
func CheckValidity(lessons []domain.Lesson, ref Reference) []Issue {
	var issues []Issue
	for i, l := range lessons {
		if errs := ref.Inspect(l); len(errs) > 0 {
			issues = append(issues, Issue{Position: i + 1, Lesson: l, Fields: errs})
		}
	}
	return issues
}

// FilterValid keeps only the lessons that pass CheckValidity and reports how
// many were dropped. The input slice is not modified.
func FilterValid(lessons []domain.Lesson, ref Reference) (kept []domain.Lesson, removed int) {
	kept = make([]domain.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if ref.Valid(l) {
			kept = append(kept, l)
		}
	}
	return kept, len(lessons) - len(kept)
}
