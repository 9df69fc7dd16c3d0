package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/kesteai/internal/cli/formatter"
	"github.com/alexanderramin/kesteai/internal/interpreter"
)

// chatModel is the bubbletea Model for the terminal chat.
type chatModel struct {
	ctx     context.Context
	bot     interpreter.Responder
	session string

	input textinput.Model
	width int

	history    []string
	historyIdx int

	quitting bool
}

func newChatModel(ctx context.Context, bot interpreter.Responder, session string) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return chatModel{ctx: ctx, bot: bot, session: session, input: ti}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatChatWelcome()),
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(promptPrefix) - 1
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.historyUp()
			return m, nil
		case tea.KeyDown:
			m.historyDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	if isExit(line) {
		m.quitting = true
		return m, tea.Quit
	}

	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	reply := m.bot.Respond(m.ctx, m.session, line)
	return m, tea.Println(formatter.FormatOperatorLine(line) + "\n" + formatter.FormatBotReply(reply.Text))
}

func (m *chatModel) historyUp() {
	if m.historyIdx == 0 {
		return
	}
	m.historyIdx--
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

func (m *chatModel) historyDown() {
	if m.historyIdx >= len(m.history) {
		return
	}
	m.historyIdx++
	if m.historyIdx == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[m.historyIdx])
	m.input.CursorEnd()
}

const promptPrefix = "kesteai ❯ "

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Сау болыңыз.") + "\n"
	}
	return formatter.StylePurple.Render("kesteai") + " " + formatter.Dim("❯") + " " + m.input.View()
}
