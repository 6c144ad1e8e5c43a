package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/crimson-sun/errboard/internal/view"
)

type viewOption struct {
	ID    view.ID `json:"id"`
	Label string  `json:"label"`
}

func viewOptions() []viewOption {
	all := view.All()
	opts := make([]viewOption, len(all))
	for i, id := range all {
		opts[i] = viewOption{ID: id, Label: id.Label()}
	}
	return opts
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Title   string
		Views   []viewOption
		Default view.ID
	}{PageTitle, viewOptions(), view.Default}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.Error("rendering index", "error", err)
	}
}

func (s *Server) handleListViews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOptions())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	selected := chi.URLParam(r, "view")
	snap := s.store.Current()

	spec, err := s.engine.HandleSelection(snap.Events, selected)
	if err != nil {
		body := viewErrorBody(err, selected)
		writeError(w, statusFor(body.Code), body)
		return
	}
	w.Header().Set("X-Snapshot-Version", snap.Version)
	writeJSON(w, http.StatusOK, spec)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Current().Stats())
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.loader == nil {
		writeError(w, http.StatusNotImplemented, errorBody{Code: codeReloadUnavailable, Message: "reload is not configured"})
		return
	}
	snap, err := s.loader.Load(r.Context())
	if err != nil {
		slog.Warn("manual reload failed", "error", err)
		writeError(w, http.StatusInternalServerError, errorBody{Code: codeReloadFailed, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap.Stats())
}
