package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/kesteai/internal/interpreter"
)

// chatSession is the dialogue key used by the terminal chat.
const chatSession = "terminal"

func newChatCmd(a *App) *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the schedule assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.IsInteractive != nil && a.IsInteractive() {
				p := tea.NewProgram(newChatModel(cmd.Context(), a.Runtime.Bot, session))
				_, err := p.Run()
				return err
			}
			return runLineChat(cmd.Context(), a.Runtime.Bot, session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&session, "session", chatSession, "Dialogue key; reuse one to share state with another channel")

	return cmd
}

// runLineChat answers one message per input line until EOF. Blank lines are
// skipped.
func runLineChat(ctx context.Context, bot interpreter.Responder, session string, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			return nil
		}
		reply := bot.Respond(ctx, session, line)
		fmt.Fprintln(out, reply.Text)
		fmt.Fprintln(out)
	}
	return sc.Err()
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit", "шығу":
		return true
	}
	return false
}
