package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/kesteai/internal/domain"
	"github.com/alexanderramin/kesteai/internal/repository"
)

// recordRepo is the part of a repository the CRUD routes need.
type recordRepo[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, v T) error
	Update(ctx context.Context, v T) error
	Delete(ctx context.Context, id int64) error
}

type crudRoute[T any] struct {
	repo   recordRepo[T]
	entity domain.Entity
	setID  func(*T, int64)
}

// mountCRUD registers list, create, update and delete for one collection.
// Every successful write is announced on the change feed.
func mountCRUD[T any](r chi.Router, path string, s *server, c crudRoute[T]) {
	r.Route(path, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items, err := c.repo.List(r.Context())
			if err != nil {
				s.internalError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})

		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var v T
			if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			c.setID(&v, s.ids.Next())
			if err := c.repo.Create(r.Context(), v); err != nil {
				s.internalError(w, r, err)
				return
			}
			s.broadcast(c.entity)
			writeJSON(w, http.StatusOK, v)
		})

		r.Put("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathID(w, r)
			if !ok {
				return
			}
			existing, err := c.repo.Get(r.Context(), id)
			if err != nil {
				s.repoError(w, r, err)
				return
			}
			// Fields missing from the body keep their stored values.
			if err := json.NewDecoder(r.Body).Decode(&existing); err != nil {
				writeError(w, http.StatusBadRequest, "invalid JSON body")
				return
			}
			c.setID(&existing, id)
			if err := c.repo.Update(r.Context(), existing); err != nil {
				s.repoError(w, r, err)
				return
			}
			s.broadcast(c.entity)
			writeJSON(w, http.StatusOK, existing)
		})

		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := pathID(w, r)
			if !ok {
				return
			}
			if err := c.repo.Delete(r.Context(), id); err != nil {
				s.internalError(w, r, err)
				return
			}
			s.broadcast(c.entity)
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		})
	})
}

func (s *server) repoError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	s.internalError(w, r, err)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
