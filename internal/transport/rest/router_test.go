package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/interpreter"
	"github.com/alexanderramin/kesteai/internal/notify"
	"github.com/alexanderramin/kesteai/internal/repository"
	"github.com/alexanderramin/kesteai/internal/testutil"
	"github.com/alexanderramin/kesteai/internal/transport/rest"
)

type fixture struct {
	store  *repository.Store
	hub    *notify.Hub
	router http.Handler
}

func newFixture(t *testing.T, bot interpreter.Responder) *fixture {
	t.Helper()
	store := testutil.NewTestStore(t)
	hub := notify.NewHub(nil)
	t.Cleanup(hub.Close)
	if bot == nil {
		bot = interpreter.New(store,
			interpreter.WithNotifier(hub),
			interpreter.WithPicker(func(int) int { return 0 }),
		)
	}
	return &fixture{
		store:  store,
		hub:    hub,
		router: rest.NewRouter(rest.Deps{Store: store, Bot: bot, Hub: hub}),
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

type recordingBot struct {
	session string
	text    string
}

func (b *recordingBot) Respond(_ context.Context, session, text string) interpreter.Reply {
	b.session, b.text = session, text
	return interpreter.Reply{Text: "ok:" + text}
}

func TestMessage_DefaultSession(t *testing.T) {
	bot := &recordingBot{}
	f := newFixture(t, bot)

	rec := f.do(t, http.MethodPost, "/api/schedule-bot/message", map[string]string{"text": "сәлем"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply":"ok:сәлем"}`, rec.Body.String())
	assert.Equal(t, interpreter.DefaultSession, bot.session)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestMessage_SessionHeader(t *testing.T) {
	bot := &recordingBot{}
	f := newFixture(t, bot)

	req := httptest.NewRequest(http.MethodPost, "/api/schedule-bot/message", strings.NewReader(`{"text":"көмек"}`))
	req.Header.Set(rest.HeaderSession, "browser-7")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "browser-7", bot.session)
	assert.Equal(t, "көмек", bot.text)
}

func TestMessage_InvalidBody(t *testing.T) {
	f := newFixture(t, &recordingBot{})

	req := httptest.NewRequest(http.MethodPost, "/api/schedule-bot/message", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotice_NullUntilSetByBot(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/api/notice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notice":null}`, rec.Body.String())

	rec = f.do(t, http.MethodPost, "/api/schedule-bot/message", map[string]string{"text": `хабарлама "Ертең сабақ жоқ"`})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/notice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"notice":"Ертең сабақ жоқ"}`, rec.Body.String())
}

func TestCRUD_Teachers(t *testing.T) {
	f := newFixture(t, &recordingBot{})

	rec := f.do(t, http.MethodPost, "/api/teachers/", domain.Teacher{FullName: "Иванов", Experience: "5"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created domain.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Иванов", created.FullName)

	path := "/api/teachers/" + itoa(created.ID)
	rec = f.do(t, http.MethodPut, path, map[string]string{"contactInfo": "ivanov@college.kz"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated domain.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Иванов", updated.FullName)
	assert.Equal(t, "5", updated.Experience)
	assert.Equal(t, "ivanov@college.kz", updated.ContactInfo)

	rec = f.do(t, http.MethodGet, "/api/teachers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.Teacher
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])

	rec = f.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/teachers/", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCRUD_UpdateMissingIsNotFound(t *testing.T) {
	f := newFixture(t, &recordingBot{})

	rec := f.do(t, http.MethodPut, "/api/rooms/42", map[string]string{"number": "101"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/rooms/abc", map[string]string{"number": "101"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCRUD_ScheduleCreateAssignsFreshID(t *testing.T) {
	f := newFixture(t, nil)

	lesson := testutil.NewTestLesson("ИС-302", "Математика", "Иванов", testutil.WithLessonID(7))
	rec := f.do(t, http.MethodPost, "/api/schedule/", lesson)
	require.Equal(t, http.StatusOK, rec.Code)

	lessons, err := f.store.ListLessons(context.Background())
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	assert.NotEqual(t, int64(7), lessons[0].ID)
	assert.Equal(t, lesson.WithID(lessons[0].ID), lessons[0])
}

func TestWrites_BroadcastChange(t *testing.T) {
	f := newFixture(t, &recordingBot{})
	srv := httptest.NewServer(f.router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return f.hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/groups/", "application/json", strings.NewReader(`{"name":"ИС-302"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"update","entity":"groups"}`, string(raw))
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, &recordingBot{})
	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
