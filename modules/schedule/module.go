package schedule

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/pitchside/pitchside/engine"
	"github.com/pitchside/pitchside/internal/templates"
	"github.com/pitchside/pitchside/modules/layout"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	indexTemplate    = template.Must(template.ParseFS(templateFS, "templates/index.html"))
	analysisTemplate = template.Must(template.ParseFS(templateFS, "templates/analysis.html"))
)

type Module struct {
	store          *Store
	limiter        *rate.Limiter
	maxUploadBytes int64
}

func New(d *sql.DB, maxUploadBytes int64) *Module {
	return &Module{
		store:          NewStore(d),
		limiter:        rate.NewLimiter(rate.Every(time.Second), 5),
		maxUploadBytes: maxUploadBytes,
	}
}

// UploadStore exposes the upload store to the export modules.
func (m *Module) UploadStore() *Store { return m.store }

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /{$}", m.handleIndex)
	router.HandleFunc("POST /schedule", m.handleUpload)
	router.HandleFunc("GET /schedule/{id}", m.handleAnalysis)
}

type indexView struct {
	Error string
}

func (m *Module) handleIndex(w http.ResponseWriter, r *http.Request) {
	m.renderIndex(w, r, http.StatusOK, "")
}

func (m *Module) renderIndex(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(status)
	page := layout.View("Pitchside", &templates.TemplateComponent{
		Template: indexTemplate,
		Data:     indexView{Error: errMsg},
	})
	page.Render(r.Context(), w)
}

func (m *Module) handleUpload(w http.ResponseWriter, r *http.Request) {
	if !m.limiter.Allow() {
		http.Error(w, "Too many uploads - slow down", http.StatusTooManyRequests)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, m.maxUploadBytes)
	file, header, err := r.FormFile("schedule")
	if err != nil {
		m.renderIndex(w, r, http.StatusBadRequest, "No schedule file was uploaded.")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		m.renderIndex(w, r, http.StatusBadRequest, "The schedule file could not be read. Is it under the size limit?")
		return
	}

	// Validate up front so a broken file 400s instead of producing a dead
	// analysis page.
	if _, err := ReadRows(header.Filename, content); err != nil {
		m.renderIndex(w, r, http.StatusBadRequest, fmt.Sprintf("Could not read the schedule: %s.", err))
		return
	}

	id, err := m.store.Put(r.Context(), header.Filename, content)
	if engine.HandleError(w, err) {
		return
	}
	http.Redirect(w, r, "/schedule/"+id, http.StatusSeeOther)
}

type analysisView struct {
	ID           string
	Filename     string
	Teams        []teamOption
	SelectionOK  bool
	Rows         []scheduleRow
	Conflicts    []conflictRow
	SkippedCount int
	CalendarURL  string
	Rosters      []rosterLink
}

type teamOption struct {
	Name    string
	Checked bool
}

type scheduleRow struct {
	Date     string
	Match    string
	Start    string
	End      string
	Duration string
	Location string
}

type conflictRow struct {
	Index  int
	Date   string
	Kind   string
	Gap    string
	First  gameRow
	Second gameRow
}

type gameRow struct {
	Match    string
	Time     string
	Location string
}

type rosterLink struct {
	Team string
	URL  string
}

func (m *Module) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	res, err := m.store.Events(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if engine.HandleError(w, err) {
		return
	}
	filename, err := m.store.Filename(r.Context(), id)
	if engine.HandleError(w, err) {
		return
	}

	selected := r.URL.Query()["team"]
	view := buildAnalysisView(id, filename, res, selected)

	w.Header().Set("Content-Type", "text/html")
	page := layout.View("Pitchside", &templates.TemplateComponent{
		Template: analysisTemplate,
		Data:     view,
	})
	page.Render(r.Context(), w)
}

func buildAnalysisView(id, filename string, res Result, selected []string) analysisView {
	view := analysisView{
		ID:           id,
		Filename:     filename,
		SkippedCount: len(res.Skipped),
	}

	selectedSet := map[string]struct{}{}
	for _, name := range selected {
		selectedSet[name] = struct{}{}
	}
	for _, name := range Teams(res.Events) {
		_, checked := selectedSet[name]
		view.Teams = append(view.Teams, teamOption{Name: name, Checked: checked})
	}

	// Fewer than two teams selected is an informational state, not an error:
	// there is nothing to cross-check yet.
	view.SelectionOK = len(selected) >= 2
	if !view.SelectionOK {
		return view
	}

	filtered := FilterByTeams(res.Events, selected)
	for _, e := range filtered {
		view.Rows = append(view.Rows, scheduleRow{
			Date:     e.RawDate,
			Match:    e.Summary(),
			Start:    e.Start.Format("3:04 PM"),
			End:      e.End.Format("3:04 PM"),
			Duration: formatMinutes(e.DurationMinutes) + " min",
			Location: e.Location,
		})
	}

	for i, c := range Detect(filtered) {
		view.Conflicts = append(view.Conflicts, conflictRow{
			Index:  i + 1,
			Date:   c.First.RawDate,
			Kind:   kindLabel(c.Kind),
			Gap:    gapLabel(c),
			First:  gameRowFor(c.First),
			Second: gameRowFor(c.Second),
		})
	}

	teamParams := url.Values{}
	for _, name := range selected {
		teamParams.Add("team", name)
	}
	view.CalendarURL = "/schedule/" + id + "/calendar.ics?" + teamParams.Encode()
	for _, name := range selected {
		params := url.Values{}
		for _, t := range selected {
			params.Add("team", t)
		}
		params.Set("perspective", name)
		view.Rosters = append(view.Rosters, rosterLink{
			Team: name,
			URL:  "/schedule/" + id + "/roster.csv?" + params.Encode(),
		})
	}
	return view
}

func gameRowFor(e Event) gameRow {
	return gameRow{
		Match:    e.Summary(),
		Time:     e.Start.Format("3:04 PM") + " - " + e.End.Format("3:04 PM"),
		Location: e.Location,
	}
}

func kindLabel(kind ConflictKind) string {
	switch kind {
	case SameTime:
		return "Same time"
	case Overlapping:
		return "Overlapping"
	case Close:
		return "Close (within 30 minutes)"
	}
	return string(kind)
}

func gapLabel(c Conflict) string {
	if c.Kind == SameTime {
		return "identical times"
	}
	minutes := int64(c.Gap / time.Minute)
	if minutes < 0 {
		return fmt.Sprintf("overlap of %d min", -minutes)
	}
	return fmt.Sprintf("%d min between games", minutes)
}

func formatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}
