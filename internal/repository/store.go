package repository

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/kesteai/internal/db"
	"github.com/alexanderramin/kesteai/internal/domain"
)

// Store bundles the timetable repositories behind the read-all / replace-all
// surface the interpreter works against.
type Store struct {
	Groups   *GroupRepo
	Teachers *TeacherRepo
	Rooms    *RoomRepo
	Subjects *SubjectRepo
	Lessons  *LessonRepo
	Notice   *NoticeRepo
}

func NewStore(database *sql.DB, driver string) *Store {
	sb := db.Builder(driver)
	return &Store{
		Groups:   NewGroupRepo(database, sb),
		Teachers: NewTeacherRepo(database, sb),
		Rooms:    NewRoomRepo(database, sb),
		Subjects: NewSubjectRepo(database, sb),
		Lessons:  NewLessonRepo(database, sb, db.NewSQLUnitOfWork(database)),
		Notice:   NewNoticeRepo(database, sb),
	}
}

func (s *Store) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	return s.Lessons.List(ctx)
}

func (s *Store) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.Groups.List(ctx)
}

func (s *Store) ListTeachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.Teachers.List(ctx)
}

func (s *Store) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	return s.Subjects.List(ctx)
}

func (s *Store) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.Rooms.List(ctx)
}

func (s *Store) AddLesson(ctx context.Context, l domain.Lesson) error {
	return s.Lessons.Create(ctx, l)
}

func (s *Store) RemoveLesson(ctx context.Context, id int64) error {
	return s.Lessons.Delete(ctx, id)
}

func (s *Store) ReplaceLessons(ctx context.Context, lessons []domain.Lesson) error {
	return s.Lessons.ReplaceAll(ctx, lessons)
}

func (s *Store) SetNotice(ctx context.Context, text string) error {
	return s.Notice.Set(ctx, text)
}
