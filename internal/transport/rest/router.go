// Package rest exposes the timetable store, the schedule bot and the change
// feed over HTTP.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/interpreter"
	"github.com/alexanderramin/kesteai/internal/notify"
	"github.com/alexanderramin/kesteai/internal/repository"
	"github.com/alexanderramin/kesteai/internal/transport/middleware"
)

// HeaderSession selects the dialogue a bot message belongs to.
const HeaderSession = "X-Session-Id"

type Deps struct {
	Store *repository.Store
	Bot   interpreter.Responder
	Hub   *notify.Hub
	IDs   *domain.IDSource
	Log   *zap.Logger
}

type server struct {
	store *repository.Store
	bot   interpreter.Responder
	hub   *notify.Hub
	ids   *domain.IDSource
	log   *zap.Logger
}

// NewRouter wires every HTTP route behind the request id, logging and
// recovery middleware.
func NewRouter(d Deps) http.Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	ids := d.IDs
	if ids == nil {
		ids = domain.NewIDSource()
	}
	s := &server{store: d.Store, bot: d.Bot, hub: d.Hub, ids: ids, log: log.Named("rest")}

	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(s.log),
		middleware.Recovery(s.log),
	))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Hub != nil {
		r.Handle("/ws", d.Hub)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/schedule-bot/message", s.handleMessage)
		r.Get("/notice", s.handleNotice)

		mountCRUD(r, "/teachers", s, crudRoute[domain.Teacher]{
			repo: s.store.Teachers, entity: domain.EntityTeachers,
			setID: func(v *domain.Teacher, id int64) { v.ID = id },
		})
		mountCRUD(r, "/groups", s, crudRoute[domain.Group]{
			repo: s.store.Groups, entity: domain.EntityGroups,
			setID: func(v *domain.Group, id int64) { v.ID = id },
		})
		mountCRUD(r, "/rooms", s, crudRoute[domain.Room]{
			repo: s.store.Rooms, entity: domain.EntityRooms,
			setID: func(v *domain.Room, id int64) { v.ID = id },
		})
		mountCRUD(r, "/subjects", s, crudRoute[domain.Subject]{
			repo: s.store.Subjects, entity: domain.EntitySubjects,
			setID: func(v *domain.Subject, id int64) { v.ID = id },
		})
		mountCRUD(r, "/schedule", s, crudRoute[domain.Lesson]{
			repo: s.store.Lessons, entity: domain.EntitySchedule,
			setID: func(v *domain.Lesson, id int64) { v.ID = id },
		})
	})

	return r
}

func (s *server) broadcast(entity domain.Entity) {
	if s.hub != nil {
		s.hub.Notify(entity)
	}
}
