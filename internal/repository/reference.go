package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/alexanderramin/kesteai/internal/domain"
)

type GroupRepo struct{ crud[domain.Group] }

func NewGroupRepo(db *sql.DB, sb sq.StatementBuilderType) *GroupRepo {
	return &GroupRepo{crud[domain.Group]{db: db, sb: sb, t: table[domain.Group]{
		name:    "student_groups",
		columns: []string{"id", "name", "specialization", "number_of_students", "curator"},
		values: func(g domain.Group) []any {
			return []any{g.ID, g.Name, g.Specialization, g.NumberOfStudents, g.Curator}
		},
		scan: func(s scanner) (domain.Group, error) {
			var g domain.Group
			err := s.Scan(&g.ID, &g.Name, &g.Specialization, &g.NumberOfStudents, &g.Curator)
			return g, err
		},
		id: func(g domain.Group) int64 { return g.ID },
	}}}
}

type TeacherRepo struct{ crud[domain.Teacher] }

func NewTeacherRepo(db *sql.DB, sb sq.StatementBuilderType) *TeacherRepo {
	return &TeacherRepo{crud[domain.Teacher]{db: db, sb: sb, t: table[domain.Teacher]{
		name:    "teachers",
		columns: []string{"id", "full_name", "specialization", "experience", "contact_info"},
		values: func(t domain.Teacher) []any {
			return []any{t.ID, t.FullName, t.Specialization, t.Experience, t.ContactInfo}
		},
		scan: func(s scanner) (domain.Teacher, error) {
			var t domain.Teacher
			err := s.Scan(&t.ID, &t.FullName, &t.Specialization, &t.Experience, &t.ContactInfo)
			return t, err
		},
		id: func(t domain.Teacher) int64 { return t.ID },
	}}}
}

type RoomRepo struct{ crud[domain.Room] }

func NewRoomRepo(db *sql.DB, sb sq.StatementBuilderType) *RoomRepo {
	return &RoomRepo{crud[domain.Room]{db: db, sb: sb, t: table[domain.Room]{
		name:    "rooms",
		columns: []string{"id", "number", "type", "capacity", "equipment"},
		values: func(r domain.Room) []any {
			return []any{r.ID, r.Number, r.Type, r.Capacity, r.Equipment}
		},
		scan: func(s scanner) (domain.Room, error) {
			var r domain.Room
			err := s.Scan(&r.ID, &r.Number, &r.Type, &r.Capacity, &r.Equipment)
			return r, err
		},
		id: func(r domain.Room) int64 { return r.ID },
	}}}
}

type SubjectRepo struct{ crud[domain.Subject] }

func NewSubjectRepo(db *sql.DB, sb sq.StatementBuilderType) *SubjectRepo {
	return &SubjectRepo{crud[domain.Subject]{db: db, sb: sb, t: table[domain.Subject]{
		name:    "subjects",
		columns: []string{"id", "name", "hours_per_week", "type", "department"},
		values: func(s domain.Subject) []any {
			return []any{s.ID, s.Name, s.HoursPerWeek, s.Type, s.Department}
		},
		scan: func(sc scanner) (domain.Subject, error) {
			var s domain.Subject
			err := sc.Scan(&s.ID, &s.Name, &s.HoursPerWeek, &s.Type, &s.Department)
			return s, err
		},
		id: func(s domain.Subject) int64 { return s.ID },
	}}}
}
