// Package interpreter turns short operator messages into timetable changes
// and reports. A message is classified into one Command by an ordered list of
// matchers and then dispatched against the session's dialogue state.
package interpreter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/analytics"
	"github.com/alexanderramin/kesteai/internal/domain"
)

// DefaultSession is the session key of the single operator channel.
const DefaultSession = "operator"

const (
	defaultHistoryLimit   = 10
	defaultHistoryRender  = 5
	defaultMaxWeeklyHours = 40
)

// Snapshot is a read-only view of one session, for tests and diagnostics.
type Snapshot struct {
	Draft    *domain.Lesson
	Pending  bool
	History  []string
	Undoable int
}

// Interpreter is the rule-based Responder. Messages are processed one at a
// time to completion; state is kept per session key.
type Interpreter struct {
	store    Timetable
	notifier Notifier
	log      *zap.Logger
	picker   Picker
	ids      *domain.IDSource

	historyLimit   int
	historyRender  int
	maxWeeklyHours int

	mu       sync.Mutex
	sessions map[string]*conversation
}

type Option func(*Interpreter)

func WithNotifier(n Notifier) Option {
	return func(it *Interpreter) { it.notifier = n }
}

func WithLogger(log *zap.Logger) Option {
	return func(it *Interpreter) { it.log = log }
}

// WithPicker replaces the random template choice.
func WithPicker(p Picker) Option {
	return func(it *Interpreter) { it.picker = p }
}

func WithIDSource(ids *domain.IDSource) Option {
	return func(it *Interpreter) { it.ids = ids }
}

// WithLimits sets the history cap, how many history entries are rendered and
// the largest weekly hour count a request may ask for. Non-positive values
// keep the defaults.
func WithLimits(historyLimit, historyRender, maxWeeklyHours int) Option {
	return func(it *Interpreter) {
		if historyLimit > 0 {
			it.historyLimit = historyLimit
		}
		if historyRender > 0 {
			it.historyRender = historyRender
		}
		if maxWeeklyHours > 0 {
			it.maxWeeklyHours = maxWeeklyHours
		}
	}
}

func New(store Timetable, opts ...Option) *Interpreter {
	it := &Interpreter{
		store:          store,
		notifier:       noopNotifier{},
		log:            zap.NewNop(),
		picker:         randomPick,
		ids:            domain.NewIDSource(),
		historyLimit:   defaultHistoryLimit,
		historyRender:  defaultHistoryRender,
		maxWeeklyHours: defaultMaxWeeklyHours,
		sessions:       make(map[string]*conversation),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Respond handles one message. It never fails: errors and panics become the
// generic apology and are logged.
func (it *Interpreter) Respond(ctx context.Context, session, text string) (reply Reply) {
	it.mu.Lock()
	defer it.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			it.log.Error("interpreter panic",
				zap.String("session", session),
				zap.String("text", text),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
			reply = Reply{Text: replyInternalError}
		}
	}()

	st := it.conversation(session)
	reply, err := it.dispatch(ctx, st, Classify(text), 0)
	if err != nil {
		it.log.Error("interpreter failure",
			zap.String("session", session),
			zap.String("text", text),
			zap.Error(err),
		)
		return Reply{Text: replyInternalError}
	}
	if reply.Changed != "" {
		it.notifier.Notify(reply.Changed)
	}
	return reply
}

// Snapshot returns a copy of the session's state.
func (it *Interpreter) Snapshot(session string) Snapshot {
	it.mu.Lock()
	defer it.mu.Unlock()

	st := it.conversation(session)
	snap := Snapshot{
		Pending:  st.pending != "",
		History:  st.history.Entries(),
		Undoable: len(st.actions),
	}
	if st.draft != nil {
		d := *st.draft
		snap.Draft = &d
	}
	return snap
}

func (it *Interpreter) conversation(session string) *conversation {
	if session == "" {
		session = DefaultSession
	}
	st, ok := it.sessions[session]
	if !ok {
		st = &conversation{history: commandHistory{limit: it.historyLimit}}
		it.sessions[session] = st
	}
	return st
}

func (it *Interpreter) dispatch(ctx context.Context, st *conversation, cmd Command, depth int) (Reply, error) {
	switch cmd.Kind {
	case KindGreeting:
		return say(it.pick(greetingReplies)), nil
	case KindNotice:
		if err := it.store.SetNotice(ctx, cmd.Notice); err != nil {
			return Reply{}, fmt.Errorf("setting notice: %w", err)
		}
		return Reply{Text: replyNoticeUpdated + cmd.Notice, Changed: domain.EntityNotice}, nil
	case KindNoticeMalformed:
		return say(replyNoticeFormat), nil
	case KindClearChat:
		return say(replyChatCleared), nil
	case KindHistory:
		return it.history(st), nil
	case KindFAQ:
		return say(faqReply(it.pick(faqHeaders))), nil
	case KindRepeat:
		last, ok := st.history.Last()
		if !ok || depth > 0 {
			return say(it.pick(badFormatReplies)), nil
		}
		return it.dispatch(ctx, st, Classify(last), depth+1)
	case KindConfirm:
		if st.pending == pendingPurge {
			st.pending = ""
			return it.purge(ctx)
		}
		// Without anything pending a confirmation token is ordinary free text.
		cmd.Kind = KindFreeText
		return it.dispatchRecorded(ctx, st, cmd)
	case KindPurgeRequest:
		st.pending = pendingPurge
		return say(it.pick(purgeConfirmPrompts)), nil
	}

	st.history.Push(cmd.Raw)
	st.pending = ""
	return it.dispatchRecorded(ctx, st, cmd)
}

// dispatchRecorded handles commands that come after history bookkeeping.
func (it *Interpreter) dispatchRecorded(ctx context.Context, st *conversation, cmd Command) (Reply, error) {
	switch cmd.Kind {
	case KindUndo:
		return it.undo(ctx, st)
	case KindEdit:
		return it.edit(st, cmd.Edit)
	case KindFreeText:
		return it.freeText(ctx, st, cmd.Raw)
	case KindHelp:
		return say(helpReply(it.pick(helpHeaders))), nil
	case KindDuplicates:
		return it.duplicates(ctx)
	case KindConflicts:
		return it.conflicts(ctx)
	case KindValidity:
		return it.validity(ctx)
	case KindAccept:
		return it.accept(ctx, st)
	case KindReject:
		st.draft = nil
		return say(it.pick(rejectReplies)), nil
	case KindStructured:
		return it.structured(ctx, st, cmd.Structured)
	}
	return say(it.pick(badFormatReplies)), nil
}

func say(s string) Reply {
	return Reply{Text: s}
}

func (it *Interpreter) history(st *conversation) Reply {
	recent := st.history.Recent(it.historyRender)
	if len(recent) == 0 {
		return say(replyHistoryEmpty)
	}
	return say(it.pick(historyHeaders) + "\n" + strings.Join(recent, "\n"))
}

func (it *Interpreter) undo(ctx context.Context, st *conversation) (Reply, error) {
	last, ok := st.actions.Pop()
	if !ok {
		return say(replyUndoNothing), nil
	}
	if last.Kind != ActionAdd {
		return say(replyUndoOther), nil
	}
	if err := it.store.RemoveLesson(ctx, last.Lesson.ID); err != nil {
		st.actions.Push(last)
		return Reply{}, fmt.Errorf("undoing lesson %d: %w", last.Lesson.ID, err)
	}
	return Reply{Text: replyUndoAdd, Changed: domain.EntitySchedule}, nil
}

func (it *Interpreter) edit(st *conversation, req EditRequest) (Reply, error) {
	if st.draft == nil {
		return say(replyEditNoDraft), nil
	}
	if req.Field == "" {
		return say(replyEditUsage), nil
	}
	updated, ok, badTime := applyEdit(*st.draft, req)
	if !ok {
		return say(replyEditBadField), nil
	}
	if badTime {
		return say(replyEditBadTime), nil
	}
	rendered, err := renderDraft(updated)
	if err != nil {
		return Reply{}, err
	}
	st.draft = &updated
	return say(replyEditUpdated + rendered + "\n" + actionHints), nil
}

func (it *Interpreter) freeText(ctx context.Context, st *conversation, raw string) (Reply, error) {
	groups, err := it.store.ListGroups(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing groups: %w", err)
	}
	subjects, err := it.store.ListSubjects(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing subjects: %w", err)
	}
	teachers, err := it.store.ListTeachers(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing teachers: %w", err)
	}

	slots := ExtractSlots(raw, groups, subjects, teachers)
	if len(slots.Missing) > 0 {
		return say(askForMissing(slots.Missing)), nil
	}
	return it.propose(st, slots.Group, slots.Subject, slots.Teacher, slots.Hours, domain.DaysLatin), nil
}

func (it *Interpreter) structured(ctx context.Context, st *conversation, req StructuredRequest) (Reply, error) {
	groups, err := it.store.ListGroups(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing groups: %w", err)
	}
	subjects, err := it.store.ListSubjects(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing subjects: %w", err)
	}
	teachers, err := it.store.ListTeachers(ctx)
	if err != nil {
		return Reply{}, fmt.Errorf("listing teachers: %w", err)
	}

	var errs strings.Builder
	if !hasGroup(groups, req.Group) {
		fmt.Fprintf(&errs, "Топ '%s' табылмады!\n", req.Group)
	}
	if !hasSubject(subjects, req.Subject) {
		fmt.Fprintf(&errs, "Пән '%s' табылмады!\n", req.Subject)
	}
	if !hasTeacher(teachers, req.Teacher) {
		fmt.Fprintf(&errs, "Оқытушы '%s' табылмады!\n", req.Teacher)
	}
	if errs.Len() > 0 {
		return say(replyStructuredFail + errs.String()), nil
	}
	if req.Hours == 0 {
		return say(askForMissing([]Slot{SlotHours})), nil
	}
	return it.propose(st, req.Group, req.Subject, req.Teacher, req.Hours, domain.DaysKazakh), nil
}

// propose builds the rotation and keeps only its first lesson as the draft.
func (it *Interpreter) propose(st *conversation, group, subject, teacher string, hours int, days []string) Reply {
	if hours > it.maxWeeklyHours {
		return say(fmt.Sprintf(replyHoursTooMany, it.maxWeeklyHours))
	}
	lessons := BuildProposal(group, subject, teacher, hours, days)
	first := lessons[0]
	st.draft = &first
	return say(renderProposal(group, subject, teacher, hours, lessons))
}

func (it *Interpreter) accept(ctx context.Context, st *conversation) (Reply, error) {
	if st.draft == nil {
		return say(replyAcceptNoDraft), nil
	}
	lesson := st.draft.WithID(it.ids.Next())
	if err := it.store.AddLesson(ctx, lesson); err != nil {
		return Reply{}, fmt.Errorf("adding lesson: %w", err)
	}
	st.actions.Push(action{Kind: ActionAdd, Lesson: lesson})
	st.draft = nil
	return Reply{Text: it.pick(acceptReplies), Changed: domain.EntitySchedule}, nil
}

func hasGroup(groups []domain.Group, name string) bool {
	for _, g := range groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

func hasSubject(subjects []domain.Subject, name string) bool {
	for _, s := range subjects {
		if s.Name == name {
			return true
		}
	}
	return false
}

func hasTeacher(teachers []domain.Teacher, name string) bool {
	for _, t := range teachers {
		if t.FullName == name {
			return true
		}
	}
	return false
}

// reference loads the four name sets the checks compare against.
func (it *Interpreter) reference(ctx context.Context) (analytics.Reference, error) {
	groups, err := it.store.ListGroups(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing groups: %w", err)
	}
	teachers, err := it.store.ListTeachers(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing teachers: %w", err)
	}
	subjects, err := it.store.ListSubjects(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing subjects: %w", err)
	}
	rooms, err := it.store.ListRooms(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing rooms: %w", err)
	}
	return analytics.NewReference(groups, teachers, subjects, rooms), nil
}
