package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/app"
	"github.com/alexanderramin/kesteai/internal/config"
	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/interpreter"
	"github.com/alexanderramin/kesteai/internal/notify"
	"github.com/alexanderramin/kesteai/internal/teatest"
	"github.com/alexanderramin/kesteai/internal/testutil"
)

type echoBot struct {
	mu       sync.Mutex
	messages []string
}

func (b *echoBot) Respond(_ context.Context, session, text string) interpreter.Reply {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, session+"|"+text)
	return interpreter.Reply{Text: "echo " + text}
}

func testApp(t *testing.T, bot interpreter.Responder) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.ShutdownTimeout = time.Second
	rt := &app.Runtime{
		Config: cfg,
		Log:    zap.NewNop(),
		Store:  testutil.NewTestStore(t),
		Hub:    notify.NewHub(nil),
		IDs:    domain.NewIDSource(),
		Bot:    bot,
	}
	return &App{Runtime: rt, IsInteractive: func() bool { return false }}
}

func execute(t *testing.T, a *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestChat_LineMode(t *testing.T) {
	bot := &echoBot{}
	a := testApp(t, bot)

	out, err := execute(t, a, "сәлем\n\n  көмек  \nexit\nignored\n", "chat")
	require.NoError(t, err)

	assert.Equal(t, []string{"terminal|сәлем", "terminal|көмек"}, bot.messages)
	assert.Equal(t, "echo сәлем\n\necho көмек\n\n", out)
}

func TestChat_SessionFlag(t *testing.T) {
	bot := &echoBot{}
	_, err := execute(t, testApp(t, bot), "тарих\n", "chat", "--session", "tg:42")
	require.NoError(t, err)
	assert.Equal(t, []string{"tg:42|тарих"}, bot.messages)
}

func TestChatModel_SubmitAndHistory(t *testing.T) {
	bot := &echoBot{}
	d := teatest.New(t, newChatModel(context.Background(), bot, "terminal"))

	d.Submit("көмек")

	assert.Equal(t, []string{"terminal|көмек"}, bot.messages)
	cm := d.Model.(chatModel)
	assert.Empty(t, cm.input.Value())
	assert.Equal(t, []string{"көмек"}, cm.history)

	d.Press(tea.KeyUp)
	assert.Equal(t, "көмек", d.Model.(chatModel).input.Value())
	d.Press(tea.KeyDown)
	assert.Empty(t, d.Model.(chatModel).input.Value())
}

func TestChatModel_BlankEnterDoesNothing(t *testing.T) {
	bot := &echoBot{}
	d := teatest.New(t, newChatModel(context.Background(), bot, "terminal"))

	d.Submit("   ")

	assert.Empty(t, bot.messages)
	assert.False(t, d.Quitting)
}

func TestChatModel_Quit(t *testing.T) {
	d := teatest.New(t, newChatModel(context.Background(), &echoBot{}, "terminal"))

	d.Press(tea.KeyCtrlC)

	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Сау болыңыз.")
}

func TestChatModel_ExitWord(t *testing.T) {
	bot := &echoBot{}
	d := teatest.New(t, newChatModel(context.Background(), bot, "terminal"))

	d.Submit("шығу")

	assert.True(t, d.Quitting)
	assert.Empty(t, bot.messages)
}

func TestSeedThenCheck(t *testing.T) {
	a := testApp(t, &echoBot{})
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"groups": [{"name": "ИС-302"}],
		"teachers": [{"fullName": "Иванов"}],
		"rooms": [{"number": "101"}],
		"subjects": [{"name": "Математика"}],
		"schedule": [
			{"group": "ИС-302", "subject": "Математика", "teacher": "Иванов", "room": "101", "dayOfWeek": "monday", "timeStart": "10:00", "timeEnd": "12:00"}
		]
	}`), 0o644))

	out, err := execute(t, a, "", "seed", path)
	require.NoError(t, err)
	assert.Equal(t, "Seeded 1 groups, 1 teachers, 1 rooms, 1 subjects, 1 lessons.\n", out)

	out, err = execute(t, a, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "all lessons reference known records")
	assert.Contains(t, out, "no duplicate lessons")
	assert.Contains(t, out, "no double bookings")
}

func TestSeed_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"groups": [{"name": ""}]}`), 0o644))

	_, err := execute(t, testApp(t, &echoBot{}), "", "seed", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "groups[0].name is required")
}

func TestCheck_ReportsProblems(t *testing.T) {
	a := testApp(t, &echoBot{})
	l := testutil.NewTestLesson("ИС-302", "Математика", "Иванов")
	testutil.SeedLessons(t, a.Runtime.Store, l, l.WithID(l.ID+1000))

	out, err := execute(t, a, "", "check", "duplicates")
	assert.ErrorIs(t, err, errProblemsFound)
	assert.Contains(t, out, "1 duplicate lessons")
	assert.NotContains(t, out, "VALIDITY")
}

func TestCheck_RejectsUnknownKind(t *testing.T) {
	_, err := execute(t, testApp(t, &echoBot{}), "", "check", "everything")
	assert.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	a := testApp(t, &echoBot{})
	srv := newHTTPServer(a.Runtime)
	srv.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, a.Runtime, srv) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}
