package interpreter

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the command a message was classified as.
type Kind int

const (
	KindGreeting Kind = iota
	KindNotice
	KindNoticeMalformed
	KindClearChat
	KindHistory
	KindFAQ
	KindRepeat
	KindConfirm
	KindPurgeRequest
	KindUndo
	KindEdit
	KindHelp
	KindDuplicates
	KindConflicts
	KindValidity
	KindAccept
	KindReject
	KindStructured
	KindFreeText
)

var kindNames = [...]string{
	KindGreeting:        "greeting",
	KindNotice:          "notice",
	KindNoticeMalformed: "notice_malformed",
	KindClearChat:       "clear_chat",
	KindHistory:         "history",
	KindFAQ:             "faq",
	KindRepeat:          "repeat",
	KindConfirm:         "confirm",
	KindPurgeRequest:    "purge_request",
	KindUndo:            "undo",
	KindEdit:            "edit",
	KindHelp:            "help",
	KindDuplicates:      "duplicates",
	KindConflicts:       "conflicts",
	KindValidity:        "validity",
	KindAccept:          "accept",
	KindReject:          "reject",
	KindStructured:      "structured",
	KindFreeText:        "free_text",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Command is one classified message.
type Command struct {
	Kind Kind
	// Raw is the trimmed message in its original case.
	Raw string
	// Text is the normalized form used for matching.
	Text string

	Notice     string
	Edit       EditRequest
	Structured StructuredRequest
}

// EditRequest is "өзгерту <field> <value...>". Field is lowercased; a short
// command leaves Field empty.
type EditRequest struct {
	Field string
	Value string
}

// StructuredRequest is "<group>, <subject>, <teacher>, <N> сағат".
type StructuredRequest struct {
	Group   string
	Subject string
	Teacher string
	Hours   int
}

var structuredPattern = regexp.MustCompile(`([\p{L}\p{N}_\-]+),\s*([\p{L}\p{N}_\s]+),\s*([\p{L}\p{N}_\s.]+),\s*(\d+)\s*(?i:сағат)`)

func parseStructured(raw string) (StructuredRequest, bool) {
	m := structuredPattern.FindStringSubmatch(raw)
	if m == nil {
		return StructuredRequest{}, false
	}
	hours, err := strconv.Atoi(m[4])
	if err != nil {
		return StructuredRequest{}, false
	}
	return StructuredRequest{
		Group:   strings.TrimSpace(m[1]),
		Subject: strings.TrimSpace(m[2]),
		Teacher: strings.TrimSpace(m[3]),
		Hours:   hours,
	}, true
}

func parseEdit(raw string) EditRequest {
	parts := strings.Fields(raw)
	if len(parts) < 3 {
		return EditRequest{}
	}
	return EditRequest{
		Field: strings.ToLower(parts[1]),
		Value: strings.Join(parts[2:], " "),
	}
}

// matcher inspects one message and either claims it or passes.
type matcher func(raw, command string) (Command, bool)

func exact(phrase string, kind Kind) matcher {
	return func(raw, command string) (Command, bool) {
		return Command{Kind: kind}, command == phrase
	}
}

// matchers run in priority order; the first claim wins. Greeting and notice
// look at the raw text before alias resolution.
var matchers = []matcher{
	func(raw, _ string) (Command, bool) {
		return Command{Kind: KindGreeting}, isGreeting(raw)
	},
	func(raw, _ string) (Command, bool) {
		payload, isNotice, ok := parseNotice(raw)
		switch {
		case !isNotice:
			return Command{}, false
		case !ok:
			return Command{Kind: KindNoticeMalformed}, true
		}
		return Command{Kind: KindNotice, Notice: payload}, true
	},
	exact(phraseClearChat, KindClearChat),
	exact(phraseHistory, KindHistory),
	exact(phraseFAQ, KindFAQ),
	exact(phraseRepeat, KindRepeat),
	func(_, command string) (Command, bool) {
		return Command{Kind: KindConfirm}, isConfirmation(command)
	},
	exact(phrasePurge, KindPurgeRequest),
	exact(phraseUndo, KindUndo),
	func(raw, command string) (Command, bool) {
		if !strings.HasPrefix(command, phraseEdit) {
			return Command{}, false
		}
		return Command{Kind: KindEdit, Edit: parseEdit(raw)}, true
	},
	exact(phraseHelp, KindHelp),
	exact(phraseDuplicates, KindDuplicates),
	exact(phraseConflicts, KindConflicts),
	exact(phraseValidity, KindValidity),
	exact(phraseAccept, KindAccept),
	exact(phraseReject, KindReject),
	func(raw, command string) (Command, bool) {
		if isKnown(command) {
			return Command{}, false
		}
		req, ok := parseStructured(raw)
		return Command{Kind: KindStructured, Structured: req}, ok
	},
}

// Classify maps a message to exactly one command. Anything unclaimed is
// free text for slot extraction.
func Classify(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	command := normalize(trimmed)
	for _, m := range matchers {
		if cmd, ok := m(trimmed, command); ok {
			cmd.Raw = trimmed
			cmd.Text = command
			return cmd
		}
	}
	return Command{Kind: KindFreeText, Raw: trimmed, Text: command}
}
