package interpreter

import (
	"context"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// Timetable is the record store the interpreter reads and mutates. Every
// message re-reads what it needs, so edits made elsewhere are visible
// immediately.
type Timetable interface {
	ListLessons(ctx context.Context) ([]domain.Lesson, error)
	ListGroups(ctx context.Context) ([]domain.Group, error)
	ListTeachers(ctx context.Context) ([]domain.Teacher, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)

	AddLesson(ctx context.Context, l domain.Lesson) error
	RemoveLesson(ctx context.Context, id int64) error
	ReplaceLessons(ctx context.Context, lessons []domain.Lesson) error
	SetNotice(ctx context.Context, text string) error
}

// Notifier fans out "this entity changed" events to connected clients.
type Notifier interface {
	Notify(entity domain.Entity)
}

// Responder turns one operator message into one reply. Implementations never
// fail: problems are reported through the reply text.
type Responder interface {
	Respond(ctx context.Context, session, text string) Reply
}

// Reply is the answer to one message. Changed names the entity the message
// mutated, or is empty.
type Reply struct {
	Text    string
	Changed domain.Entity
}

type noopNotifier struct{}

func (noopNotifier) Notify(domain.Entity) {}
