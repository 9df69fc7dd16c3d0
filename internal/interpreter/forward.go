package interpreter

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/llm"
)

const (
	replyLLMTimeout     = "Кешіріңіз, жасанды интеллект уақытында жауап бермеді. Сұрағыңызды қысқартып, қайталап көріңіз."
	replyLLMUnavailable = "Кешіріңіз, жасанды интеллект қызметі қазір қолжетімсіз. Кейінірек қайталап көріңіз."
)

// Forwarder is the Responder that hands the raw message to a generative-text
// backend and returns its answer verbatim. It never touches the timetable.
type Forwarder struct {
	client llm.Client
	log    *zap.Logger
}

func NewForwarder(client llm.Client, log *zap.Logger) *Forwarder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Forwarder{client: client, log: log}
}

func (f *Forwarder) Respond(ctx context.Context, session, text string) Reply {
	resp, err := f.client.Generate(ctx, strings.TrimSpace(text))
	if err != nil {
		f.log.Warn("forwarding failed", zap.String("session", session), zap.Error(err))
		if errors.Is(err, llm.ErrTimeout) {
			return Reply{Text: replyLLMTimeout}
		}
		return Reply{Text: replyLLMUnavailable}
	}
	return Reply{Text: resp.Text}
}

var (
	_ Responder = (*Interpreter)(nil)
	_ Responder = (*Forwarder)(nil)
)
