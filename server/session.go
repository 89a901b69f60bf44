package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/biorhythm/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "biorhythm"
	viewKey     = "view"
)

// ViewSessions keeps each browser's ViewState in a signed cookie. Only the
// snapshot is stored; the dataset is recalculated on load.
type ViewSessions struct {
	store *sessions.CookieStore
	calc  models.Calculator
}

// NewViewSessions creates a cookie-backed session store. The cookie carries
// no lifetime, so a view ends with the browser session. An empty key gets a
// random one, which invalidates sessions on restart.
func NewViewSessions(key string, calc models.Calculator) *ViewSessions {
	secret := []byte(key)
	if key == "" {
		secret = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &ViewSessions{store: store, calc: calc}
}

// Load returns the session and the view stored in it. found is false when
// the session holds no usable view.
func (vs *ViewSessions) Load(r *http.Request) (*sessions.Session, models.ViewState, bool, error) {
	// Get returns a fresh session alongside a decode error, so keep going.
	sess, err := vs.store.Get(r, sessionName)
	if err != nil {
		return sess, models.ViewState{}, false, fmt.Errorf("decode session: %w", err)
	}
	raw, ok := sess.Values[viewKey].(string)
	if !ok {
		return sess, models.ViewState{}, false, nil
	}
	var snap models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return sess, models.ViewState{}, false, fmt.Errorf("decode view snapshot: %w", err)
	}
	state, err := snap.Restore(vs.calc)
	if err != nil {
		return sess, models.ViewState{}, false, err
	}
	return sess, state, true, nil
}

// Save writes state into sess and sets the cookie.
func (vs *ViewSessions) Save(w http.ResponseWriter, r *http.Request, sess *sessions.Session, state models.ViewState) error {
	raw, err := json.Marshal(state.Snapshot())
	if err != nil {
		return fmt.Errorf("encode view snapshot: %w", err)
	}
	sess.Values[viewKey] = string(raw)
	return sess.Save(r, w)
}
