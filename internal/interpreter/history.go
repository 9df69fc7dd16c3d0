package interpreter

import "github.com/alexanderramin/kesteai/internal/domain"

// commandHistory keeps the most recent raw commands, oldest first.
type commandHistory struct {
	limit   int
	entries []string
}

func (h *commandHistory) Push(cmd string) {
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.limit {
		h.entries = append([]string(nil), h.entries[len(h.entries)-h.limit:]...)
	}
}

func (h *commandHistory) Last() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Recent returns up to n entries, newest first.
func (h *commandHistory) Recent(n int) []string {
	if n > len(h.entries) {
		n = len(h.entries)
	}
	out := make([]string, 0, n)
	for i := len(h.entries) - 1; i >= len(h.entries)-n; i-- {
		out = append(out, h.entries[i])
	}
	return out
}

func (h *commandHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}

// ActionKind tags a reversible action.
type ActionKind string

const ActionAdd ActionKind = "add"

type action struct {
	Kind   ActionKind
	Lesson domain.Lesson
}

type actionStack []action

func (s *actionStack) Push(a action) {
	*s = append(*s, a)
}

func (s *actionStack) Pop() (action, bool) {
	if len(*s) == 0 {
		return action{}, false
	}
	last := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return last, true
}

// pendingAction is a destructive operation awaiting confirmation.
type pendingAction string

const pendingPurge pendingAction = "purge_invalid"

// conversation is the dialogue state of one session.
type conversation struct {
	draft   *domain.Lesson
	pending pendingAction
	history commandHistory
	actions actionStack
}
