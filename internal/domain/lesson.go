package domain

// Lesson is one scheduled class occurrence.
type Lesson struct {
	ID        int64  `json:"id,omitempty"`
	Group     string `json:"group"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	DayOfWeek string `json:"dayOfWeek"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
}

// The With* builders return a modified copy; the receiver is never changed.

func (l Lesson) WithDay(day string) Lesson {
	l.DayOfWeek = day
	return l
}

func (l Lesson) WithTime(start, end string) Lesson {
	l.TimeStart = start
	l.TimeEnd = end
	return l
}

func (l Lesson) WithRoom(room string) Lesson {
	l.Room = room
	return l
}

func (l Lesson) WithTeacher(teacher string) Lesson {
	l.Teacher = teacher
	return l
}

func (l Lesson) WithSubject(subject string) Lesson {
	l.Subject = subject
	return l
}

func (l Lesson) WithGroup(group string) Lesson {
	l.Group = group
	return l
}

// WithID returns a copy carrying the given identifier.
func (l Lesson) WithID(id int64) Lesson {
	l.ID = id
	return l
}
