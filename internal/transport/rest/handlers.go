package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/alexanderramin/kesteai/internal/interpreter"
	"github.com/alexanderramin/kesteai/internal/repository"
	"github.com/alexanderramin/kesteai/internal/transport/middleware"
)

type messageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	Reply string `json:"reply"`
}

type noticeResponse struct {
	Notice *string `json:"notice"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	session := strings.TrimSpace(r.Header.Get(HeaderSession))
	if session == "" {
		session = interpreter.DefaultSession
	}
	reply := s.bot.Respond(r.Context(), session, req.Text)
	writeJSON(w, http.StatusOK, messageResponse{Reply: reply.Text})
}

func (s *server) handleNotice(w http.ResponseWriter, r *http.Request) {
	text, err := s.store.Notice.Get(r.Context())
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusOK, noticeResponse{})
	case err != nil:
		s.internalError(w, r, err)
	default:
		writeJSON(w, http.StatusOK, noticeResponse{Notice: &text})
	}
}

func (s *server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.RequestIDFromCtx(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
