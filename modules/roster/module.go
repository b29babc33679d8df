// Package roster serves the team roster-import CSV export.
package roster

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/pitchside/pitchside/engine"
	"github.com/pitchside/pitchside/modules/schedule"
)

type Module struct {
	store *schedule.Store
}

func New(store *schedule.Store) *Module {
	return &Module{store: store}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /schedule/{id}/roster.csv", m.handleDownload)
}

func (m *Module) handleDownload(w http.ResponseWriter, r *http.Request) {
	perspective := r.URL.Query().Get("perspective")
	if perspective == "" {
		http.Error(w, "missing required query parameter: perspective", http.StatusBadRequest)
		return
	}

	res, err := m.store.Events(r.Context(), r.PathValue("id"))
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	events := res.Events
	if selected := r.URL.Query()["team"]; len(selected) > 0 {
		events = schedule.FilterByTeams(events, selected)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=roster.csv")

	if err := WriteRosterCSV(w, events, perspective); err != nil {
		engine.HandleError(w, err)
	}
}
