// Package flash carries one-shot notices across the redirect that follows a
// successful mutation ("Organization created.", "Site deleted.").
//
// Notices ride in a signed session cookie and are consumed on first read.
// This is the console's only use of sessions; there is no login state.
package flash

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Store wraps a cookie session store dedicated to flash messages.
type Store struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// New builds a Store. key signs the cookie; when empty a random key is
// generated, which is fine for flash messages (worst case a notice is lost
// across a restart).
func New(key, cookieName string, secure bool, logger *zap.Logger) *Store {
	hashKey := []byte(key)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	cs := sessions.NewCookieStore(hashKey)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs, name: cookieName, log: logger}
}

// Add queues a notice to show on the next rendered page.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, msg string) {
	sess, _ := s.store.Get(r, s.name)
	sess.AddFlash(msg)
	if err := sess.Save(r, w); err != nil {
		s.log.Warn("flash save failed", zap.Error(err))
	}
}

// Pop returns all queued notices and clears them. A corrupt or missing
// cookie yields no notices, never an error page.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := s.store.Get(r, s.name)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.log.Warn("flash clear failed", zap.Error(err))
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if m, ok := f.(string); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}
