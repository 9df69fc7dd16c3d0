package interpreter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// BuildProposal lays hours out in two-hour lessons, rotating through days and
// the time slot vocabulary in step. Room is left unassigned.
func BuildProposal(group, subject, teacher string, hours int, days []string) []domain.Lesson {
	var lessons []domain.Lesson
	for i := 0; i < hours; i += 2 {
		step := i / 2
		start, end, _ := domain.SplitSlot(domain.TimeSlots[step%len(domain.TimeSlots)])
		lessons = append(lessons, domain.Lesson{
			Group:     group,
			Subject:   subject,
			Teacher:   teacher,
			Room:      domain.UnassignedRoom,
			DayOfWeek: days[step%len(days)],
			TimeStart: start,
			TimeEnd:   end,
		})
	}
	return lessons
}

func renderProposal(group, subject, teacher string, hours int, lessons []domain.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Топ: %s\nПән: %s\nОқытушы: %s\nАптасына: %d сағат\n", group, subject, teacher, hours)
	b.WriteString("\nҰсынылған кесте:\n")
	for _, l := range lessons {
		fmt.Fprintf(&b, "- %s %s-%s\n", l.DayOfWeek, l.TimeStart, l.TimeEnd)
	}
	b.WriteString("\n" + actionHints)
	return b.String()
}

// draftView fixes the field order of a draft shown back to the operator.
type draftView struct {
	Group     string `json:"group"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	DayOfWeek string `json:"dayOfWeek"`
	TimeStart string `json:"timeStart"`
	TimeEnd   string `json:"timeEnd"`
	Room      string `json:"room"`
}

func renderDraft(l domain.Lesson) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(draftView{
		Group:     l.Group,
		Subject:   l.Subject,
		Teacher:   l.Teacher,
		DayOfWeek: l.DayOfWeek,
		TimeStart: l.TimeStart,
		TimeEnd:   l.TimeEnd,
		Room:      l.Room,
	})
	if err != nil {
		return "", fmt.Errorf("encoding draft: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// applyEdit returns the draft with one field replaced. ok is false for an
// unknown field; badTime reports a time range without "-".
func applyEdit(draft domain.Lesson, req EditRequest) (updated domain.Lesson, ok, badTime bool) {
	switch req.Field {
	case "күн":
		return draft.WithDay(req.Value), true, false
	case "уақыт":
		start, end, valid := domain.SplitSlot(req.Value)
		if !valid {
			return draft, true, true
		}
		return draft.WithTime(start, end), true, false
	case "аудитория":
		return draft.WithRoom(req.Value), true, false
	case "оқытушы":
		return draft.WithTeacher(req.Value), true, false
	case "пән":
		return draft.WithSubject(req.Value), true, false
	case "топ":
		return draft.WithGroup(req.Value), true, false
	}
	return draft, false, false
}
