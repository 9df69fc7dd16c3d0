package interpreter

import (
	"regexp"
	"slices"
	"strings"
)

// Canonical command phrases. Aliases and the Kazakh spellings advertised in
// the help text resolve to these.
const (
	phraseHelp       = "помощь"
	phraseValidity   = "проверить расписание"
	phrasePurge      = "удалить невалидные записи"
	phraseDuplicates = "проверить дубли"
	phraseConflicts  = "проверить конфликты"
	phraseFAQ        = "faq"
	phraseHistory    = "история"
	phraseClearChat  = "очистить чат"
	phraseRepeat     = "повторить"
	phraseUndo       = "болдырмау"
	phraseEdit       = "өзгерту"
	phraseAccept     = "принять"
	phraseReject     = "отклонить"
)

var aliases = map[string]string{
	"/help":      phraseHelp,
	"/check":     phraseValidity,
	"/delbad":    phrasePurge,
	"/dups":      phraseDuplicates,
	"/conflicts": phraseConflicts,
	"/faq":       phraseFAQ,
	"/history":   phraseHistory,
	"/clear":     phraseClearChat,
	"/undo":      phraseUndo,
	"/edit":      phraseEdit,
	"/repeat":    phraseRepeat,
	"/accept":    phraseAccept,
	"/reject":    phraseReject,

	"көмек":                     phraseHelp,
	"кестені тексеру":           phraseValidity,
	"жарамсыз жазбаларды өшіру": phrasePurge,
	"дубликаттарды тексеру":     phraseDuplicates,
	"қақтығыстарды тексеру":     phraseConflicts,
	"тарих":                     phraseHistory,
	"қайталау":                  phraseRepeat,
	"қабылдау":                  phraseAccept,
	"бас тарту":                 phraseReject,
}

var (
	greetings     = []string{"сәлем", "салем", "привет", "hi", "hello", "сәлеметсіз бе"}
	confirmations = []string{"да", "подтвердить", "иә"}

	// known phrases never fall through to free-text slot extraction.
	known = []string{
		phraseHelp, phraseValidity, phrasePurge, phraseDuplicates, phraseConflicts,
		phraseFAQ, phraseHistory, phraseClearChat, phraseRepeat, phraseUndo, phraseEdit,
		phraseAccept, phraseReject,
	}
)

// normalize trims and lowercases raw, then resolves aliases.
func normalize(raw string) string {
	clean := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[clean]; ok {
		return canonical
	}
	return clean
}

func isGreeting(raw string) bool {
	return slices.Contains(greetings, strings.ToLower(strings.TrimSpace(raw)))
}

func isConfirmation(command string) bool {
	return slices.Contains(confirmations, command)
}

func isKnown(command string) bool {
	return slices.Contains(known, command)
}

const noticeKeyword = "хабарлама"

var noticePattern = regexp.MustCompile(`(?i:хабарлама)\s+"([^"]+)"`)

// parseNotice reports whether raw is a notice command and, when it is well
// formed, the quoted payload in its original case.
func parseNotice(raw string) (payload string, isNotice, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(strings.ToLower(trimmed), noticeKeyword) {
		return "", false, false
	}
	m := noticePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", true, false
	}
	return m[1], true, true
}
