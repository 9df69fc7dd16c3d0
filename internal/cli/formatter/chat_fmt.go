package formatter

import "strings"

// FormatChatWelcome renders the banner shown when the chat opens.
func FormatChatWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  kesteai") + "\n")
	b.WriteString(Dim("  ─────────────────────────────") + "\n\n")
	hints := [][2]string{
		{"көмек", "Командалар тізімі"},
		{"кестені тексеру", "Кестені тексеру"},
		{"ИС-302, Математика, Иванов, 4 сағат", "Жоба құру"},
		{"тарих", "Соңғы командалар"},
	}
	for _, h := range hints {
		b.WriteString("  " + StyleGreen.Render(h[0]) + "  " + Dim(h[1]) + "\n")
	}
	b.WriteString("\n" + Dim("  Ctrl+C or 'exit' to leave.") + "\n")
	return b.String()
}

// FormatOperatorLine echoes what the operator typed.
func FormatOperatorLine(text string) string {
	return Dim("you ❯ ") + text
}

// FormatBotReply indents a multi-line bot reply under a label.
func FormatBotReply(reply string) string {
	lines := strings.Split(strings.TrimRight(reply, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return StyleBlue.Render("bot") + "\n" + strings.Join(lines, "\n") + "\n"
}
