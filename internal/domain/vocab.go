package domain

import "strings"

// UnassignedRoom marks a draft lesson whose room has not been chosen yet.
const UnassignedRoom = "?"

// DaysLatin is the day rotation used for proposals built from free text.
var DaysLatin = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// DaysKazakh is the day rotation used for proposals built from the
// comma-separated command form.
var DaysKazakh = []string{"дүйсенбі", "сейсенбі", "сәрсенбі", "бейсенбі", "жұма"}

// TimeSlots is the ordered two-hour slot vocabulary.
var TimeSlots = []string{"10:00-12:00", "12:00-14:00", "14:00-16:00", "16:00-18:00"}

// SplitSlot splits "HH:MM-HH:MM" into its start and end. ok is false when
// there is no separator or either side is blank.
func SplitSlot(slot string) (start, end string, ok bool) {
	start, end, found := strings.Cut(slot, "-")
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if !found || start == "" || end == "" {
		return "", "", false
	}
	return start, end, true
}
