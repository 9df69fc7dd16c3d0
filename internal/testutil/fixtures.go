package testutil

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/repository"
)

var testIDCounter atomic.Int64

func nextID() int64 {
	return testIDCounter.Add(1)
}

// LessonOption customizes a fixture lesson.
type LessonOption func(*domain.Lesson)

func AtSlot(day, start, end string) LessonOption {
	return func(l *domain.Lesson) {
		l.DayOfWeek = day
		l.TimeStart = start
		l.TimeEnd = end
	}
}

func InRoom(room string) LessonOption {
	return func(l *domain.Lesson) {
		l.Room = room
	}
}

func WithLessonID(id int64) LessonOption {
	return func(l *domain.Lesson) {
		l.ID = id
	}
}

// NewTestLesson returns a Monday 10:00-12:00 lesson in room 101 unless
// overridden.
func NewTestLesson(group, subject, teacher string, opts ...LessonOption) domain.Lesson {
	l := domain.Lesson{
		ID:        nextID(),
		Group:     group,
		Subject:   subject,
		Teacher:   teacher,
		Room:      "101",
		DayOfWeek: "monday",
		TimeStart: "10:00",
		TimeEnd:   "12:00",
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Reference lists the names to seed into the four reference tables.
type Reference struct {
	Groups   []string
	Teachers []string
	Subjects []string
	Rooms    []string
}

// SeedReference inserts one row per name into each reference table.
func SeedReference(t *testing.T, store *repository.Store, ref Reference) {
	t.Helper()
	ctx := context.Background()
	for _, name := range ref.Groups {
		if err := store.Groups.Create(ctx, domain.Group{ID: nextID(), Name: name}); err != nil {
			t.Fatalf("seeding group %q: %v", name, err)
		}
	}
	for _, name := range ref.Teachers {
		if err := store.Teachers.Create(ctx, domain.Teacher{ID: nextID(), FullName: name}); err != nil {
			t.Fatalf("seeding teacher %q: %v", name, err)
		}
	}
	for _, name := range ref.Subjects {
		if err := store.Subjects.Create(ctx, domain.Subject{ID: nextID(), Name: name}); err != nil {
			t.Fatalf("seeding subject %q: %v", name, err)
		}
	}
	for _, number := range ref.Rooms {
		if err := store.Rooms.Create(ctx, domain.Room{ID: nextID(), Number: number}); err != nil {
			t.Fatalf("seeding room %q: %v", number, err)
		}
	}
}

// SeedLessons appends lessons to the timetable.
func SeedLessons(t *testing.T, store *repository.Store, lessons ...domain.Lesson) {
	t.Helper()
	for _, l := range lessons {
		if err := store.AddLesson(context.Background(), l); err != nil {
			t.Fatalf("seeding lesson: %v", err)
		}
	}
}
