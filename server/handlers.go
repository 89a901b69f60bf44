package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/biorhythm/export"
	"github.com/biorhythm/models"
	"github.com/biorhythm/templates"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Handler serves the biorhythm page and its actions. Every action loads
// the caller's view from the session, applies one transition and saves.
type Handler struct {
	Log       *zap.Logger
	Sessions  *ViewSessions
	Cache     *models.WindowCache
	BirthDate time.Time
	Now       func() time.Time
}

func NewHandler(cfg models.Config, logger *zap.Logger) *Handler {
	cache := models.NewWindowCache(models.DefaultCacheSize)
	return &Handler{
		Log:       logger,
		Sessions:  NewViewSessions(cfg.SessionKey, cache.Get),
		Cache:     cache,
		BirthDate: cfg.BirthDate,
		Now:       time.Now,
	}
}

// loadView returns the caller's view, starting a fresh one when the
// session has none or cannot be read.
func (h *Handler) loadView(r *http.Request) (*sessions.Session, models.ViewState) {
	sess, state, found, err := h.Sessions.Load(r)
	if err != nil {
		h.Log.Warn("discarding unreadable view session", zap.Error(err))
	}
	if !found {
		state = models.NewViewState(h.BirthDate, h.Now(), h.Cache.Get)
	}
	return sess, state
}

// ServeIndex handles GET /.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	sess, state := h.loadView(r)
	if sess.IsNew {
		if err := h.Sessions.Save(w, r, sess, state); err != nil {
			h.Log.Error("save new view session", zap.Error(err))
		}
	}
	h.renderPage(w, r, state, http.StatusOK, "")
}

// ServeSubmit handles POST /submit: both field edits, then submit.
func (h *Handler) ServeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	sess, state := h.loadView(r)

	birth, err := parseFormDate(r.FormValue("birth_date"))
	if err != nil {
		h.renderPage(w, r, state, http.StatusBadRequest, "Birth date: "+err.Error())
		return
	}
	viewed, err := parseFormDate(r.FormValue("viewed_date"))
	if err != nil {
		h.renderPage(w, r, state, http.StatusBadRequest, "Date to view: "+err.Error())
		return
	}

	h.apply(w, r, sess, state,
		models.SetBirthDate{Date: birth},
		models.SetViewedDate{Date: viewed},
		models.Submit{},
	)
}

// ServeNavigate handles POST /navigate with days in {-7, -1, 1, 7}.
func (h *Handler) ServeNavigate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	days, err := strconv.Atoi(r.FormValue("days"))
	if err != nil {
		http.Error(w, "Invalid days value", http.StatusBadRequest)
		return
	}
	sess, state := h.loadView(r)
	h.apply(w, r, sess, state, models.Navigate{Days: days})
}

// ServeToday handles POST /today.
func (h *Handler) ServeToday(w http.ResponseWriter, r *http.Request) {
	sess, state := h.loadView(r)
	h.apply(w, r, sess, state, models.Today{})
}

// ServeSelect handles POST /select, sent when a chart point is clicked.
func (h *Handler) ServeSelect(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form data", http.StatusBadRequest)
		return
	}
	point, err := models.SelectCategory(r.FormValue("date"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, state := h.loadView(r)
	h.apply(w, r, sess, state, point)
}

// apply runs actions in order. The first failure stops the chain and
// nothing is saved; on success the view is saved and the browser is sent
// back to the page.
func (h *Handler) apply(w http.ResponseWriter, r *http.Request, sess *sessions.Session, state models.ViewState, actions ...models.Action) {
	next := state
	today := h.Now()
	for _, a := range actions {
		var err error
		next, err = models.ApplyWith(h.Cache.Get, next, a, today)
		if err != nil {
			h.Log.Info("action rejected", zap.String("action", actionName(a)), zap.Error(err))
			h.renderActionError(w, r, state, next, err)
			return
		}
	}

	if err := h.Sessions.Save(w, r, sess, next); err != nil {
		h.Log.Error("save view session", zap.Error(err))
		templ.Handler(templates.Error("Failed to save your view: "+err.Error()),
			templ.WithStatus(http.StatusInternalServerError)).ServeHTTP(w, r)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderActionError shows the rejected edits in the form over the last
// saved view.
func (h *Handler) renderActionError(w http.ResponseWriter, r *http.Request, saved, attempted models.ViewState, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, models.ErrBirthDateRequired) {
		status = http.StatusUnprocessableEntity
	}
	display := saved
	display.BirthDate = attempted.BirthDate
	display.ViewedDate = attempted.ViewedDate
	h.renderPage(w, r, display, status, err.Error())
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, state models.ViewState, status int, message string) {
	row, ok := state.Row()
	chart := renderChart(state.Dataset.ChartData(state.BirthDate, state.SelectedDate))

	component := templates.Index(templates.PageData{
		BirthDate:  models.FormatDate(state.BirthDate),
		ViewedDate: models.FormatDate(state.ViewedDate),
		Row:        row,
		HasRow:     ok,
		Chart:      chart,
		Error:      message,
	})
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(w, r)
}

// windowParams reads birth and center from the query; center defaults to
// today.
func (h *Handler) windowParams(r *http.Request) (birth, center time.Time, err error) {
	q := r.URL.Query()
	if q.Get("birth") == "" {
		return birth, center, models.ErrBirthDateRequired
	}
	if birth, err = models.ParseDate(q.Get("birth")); err != nil {
		return birth, center, err
	}
	center = models.CalendarDay(h.Now())
	if c := q.Get("center"); c != "" {
		if center, err = models.ParseDate(c); err != nil {
			return birth, center, err
		}
	}
	return birth, center, nil
}

// ServeWindowJSON handles GET /api/window?birth=YYYY-MM-DD&center=YYYY-MM-DD.
func (h *Handler) ServeWindowJSON(w http.ResponseWriter, r *http.Request) {
	birth, center, err := h.windowParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Cache.Get(birth, center)); err != nil {
		h.Log.Error("encode window", zap.Error(err))
	}
}

// ServeChartPNG handles GET /chart.png?birth=YYYY-MM-DD&center=YYYY-MM-DD.
func (h *Handler) ServeChartPNG(w http.ResponseWriter, r *http.Request) {
	birth, center, err := h.windowParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := h.Cache.Get(birth, center).ChartData(birth, center)
	w.Header().Set("Content-Type", "image/png")
	if err := export.WritePNG(w, data); err != nil {
		h.Log.Error("render png chart", zap.Error(err))
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
	}
}

// LogCacheStats logs how well the window cache has served requests.
func (h *Handler) LogCacheStats() {
	hits, misses := h.Cache.Stats()
	h.Log.Info("window cache stats",
		zap.Int64("hits", hits),
		zap.Int64("misses", misses),
		zap.Int("entries", h.Cache.Len()),
	)
}

func ServeHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func parseFormDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return models.ParseDate(s)
}

func actionName(a models.Action) string {
	switch a.(type) {
	case models.SetBirthDate:
		return "set_birth_date"
	case models.SetViewedDate:
		return "set_viewed_date"
	case models.Submit:
		return "submit"
	case models.Navigate:
		return "navigate"
	case models.Today:
		return "today"
	case models.SelectPoint:
		return "select_point"
	default:
		return "unknown"
	}
}
