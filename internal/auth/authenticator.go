package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookieName = "traininglog_session"
	// seconds a resolved session is served from memory before redis is asked again
	sessionCacheExpire = 60
)

// Authenticator resolves the user behind a request.
type Authenticator interface {
	IsAuthenticated(r *http.Request) (*User, bool)
}

type sessionGetter interface {
	Get(ctx context.Context, token string) (*Session, error)
}

var _ Authenticator = (*SessionAuthenticator)(nil)

// SessionAuthenticator reads the session cookie and looks the session up in
// the session store, with a small in-memory cache in front of it.
type SessionAuthenticator struct {
	sessions sessionGetter
	cache    *freecache.Cache
}

func NewSessionAuthenticator(sessions sessionGetter, cacheSizeBytes int) *SessionAuthenticator {
	return &SessionAuthenticator{
		sessions: sessions,
		cache:    freecache.NewCache(cacheSizeBytes),
	}
}

func (a *SessionAuthenticator) IsAuthenticated(r *http.Request) (*User, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	token := cookie.Value

	if cached, err := a.cache.Get([]byte(token)); err == nil {
		var user User
		err := json.Unmarshal(cached, &user)
		if err == nil {
			return &user, true
		}
		log.Errorf("unmarshal cached session user: %s", err)
	}

	session, err := a.sessions.Get(r.Context(), token)
	if err != nil {
		log.Tracef("session lookup for [%s]: %s", r.URL.Path, err)
		return nil, false
	}

	if userBytes, err := json.Marshal(session.User); err == nil {
		if err := a.cache.Set([]byte(token), userBytes, sessionCacheExpire); err != nil {
			log.Errorf("cache session user: %s", err)
		}
	}

	return &session.User, true
}

// Forget drops a cached session, used on logout.
func (a *SessionAuthenticator) Forget(token string) {
	a.cache.Del([]byte(token))
}
