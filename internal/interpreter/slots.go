package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// Slot names one piece of a lesson request.
type Slot string

const (
	SlotGroup   Slot = "топ"
	SlotSubject Slot = "пән"
	SlotTeacher Slot = "оқытушы"
	SlotHours   Slot = "сағат"
)

// Slots is what free text yielded. Missing lists the absent slots in the
// order group, subject, teacher, hours.
type Slots struct {
	Group   string
	Subject string
	Teacher string
	Hours   int
	Missing []Slot
}

var hoursPattern = regexp.MustCompile(`(\d+)\s*(?i:сағат)`)

// ExtractSlots finds, for each collection, the first entity whose name occurs
// in text. Containment is case sensitive and entities with empty names never
// match. Hours come from "<N> сағат"; zero counts as missing.
func ExtractSlots(text string, groups []domain.Group, subjects []domain.Subject, teachers []domain.Teacher) Slots {
	var s Slots

	for _, g := range groups {
		if g.Name != "" && strings.Contains(text, g.Name) {
			s.Group = g.Name
			break
		}
	}
	for _, sub := range subjects {
		if sub.Name != "" && strings.Contains(text, sub.Name) {
			s.Subject = sub.Name
			break
		}
	}
	for _, t := range teachers {
		if t.FullName != "" && strings.Contains(text, t.FullName) {
			s.Teacher = t.FullName
			break
		}
	}
	if m := hoursPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			s.Hours = n
		}
	}

	if s.Group == "" {
		s.Missing = append(s.Missing, SlotGroup)
	}
	if s.Subject == "" {
		s.Missing = append(s.Missing, SlotSubject)
	}
	if s.Teacher == "" {
		s.Missing = append(s.Missing, SlotTeacher)
	}
	if s.Hours == 0 {
		s.Missing = append(s.Missing, SlotHours)
	}
	return s
}

var missingPrompts = map[Slot]string{
	SlotGroup:   "Қай топқа сабақ қосуды қалайсыз? ",
	SlotSubject: "Қай пән? ",
	SlotTeacher: "Қай оқытушы? ",
	SlotHours:   "Сабақтың ұзақтығы (сағат)? ",
}

// askForMissing composes one question clause per missing slot.
func askForMissing(missing []Slot) string {
	var b strings.Builder
	for _, slot := range missing {
		b.WriteString(missingPrompts[slot])
	}
	ask := strings.TrimSpace(b.String())
	if ask == "" {
		return replyAskFallback
	}
	return ask
}
