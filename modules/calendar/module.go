// Package calendar serves the iCal export of an analyzed schedule.
package calendar

import (
	"database/sql"
	"errors"
	"net/http"
	"net/url"

	"github.com/pitchside/pitchside/engine"
	"github.com/pitchside/pitchside/modules/schedule"
)

type Module struct {
	store *schedule.Store
	self  *url.URL
}

func New(store *schedule.Store, self *url.URL) *Module {
	return &Module{store: store, self: self}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /schedule/{id}/calendar.ics", m.handleDownload)
}

func (m *Module) handleDownload(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=filtered_schedule.ics")

	if err := WriteICalFeed(w, events, m.self.Host); err != nil {
		engine.HandleError(w, err)
	}
}
