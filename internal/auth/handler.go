package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/traininglog/internal/telemetry/metrics"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/trainees"
	"github.com/2beens/traininglog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type identityProvider interface {
	AuthCodeURL(state string) string
	Identity(ctx context.Context, code string) (*Identity, error)
}

type sessionManager interface {
	NewState(ctx context.Context) (string, error)
	ConsumeState(ctx context.Context, state string) (bool, error)
	Create(ctx context.Context, user User, createdAt time.Time) (string, error)
	Delete(ctx context.Context, token string) error
}

type traineeStore interface {
	FindOrCreate(ctx context.Context, profile trainees.Profile) (*trainees.Trainee, error)
	GetByID(ctx context.Context, id string) (*trainees.Trainee, error)
}

type sessionCache interface {
	Forget(token string)
}

type HandlerParams struct {
	Provider      identityProvider
	Sessions      sessionManager
	Trainees      traineeStore
	Cache         sessionCache
	Metrics       *metrics.Manager
	SessionTTL    time.Duration
	SecureCookies bool
}

type Handler struct {
	provider      identityProvider
	sessions      sessionManager
	trainees      traineeStore
	cache         sessionCache
	metrics       *metrics.Manager
	sessionTTL    time.Duration
	secureCookies bool
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		provider:      params.Provider,
		sessions:      params.Sessions,
		trainees:      params.Trainees,
		cache:         params.Cache,
		metrics:       params.Metrics,
		sessionTTL:    params.SessionTTL,
		secureCookies: params.SecureCookies,
	}
}

// SetupRoutes registers the login flow under /auth, wrapped in the given
// middlewares (rate limiting), and /me on the main router.
func (h *Handler) SetupRoutes(r *mux.Router, loginMiddlewares ...mux.MiddlewareFunc) {
	r.HandleFunc("/me", h.HandleMe).Methods("GET", "OPTIONS").Name("me")

	loginSubrouter := r.PathPrefix("/auth").Subrouter()
	loginSubrouter.HandleFunc("/google", h.HandleLogin).Methods("GET", "OPTIONS").Name("login")
	loginSubrouter.HandleFunc("/google/callback", h.HandleCallback).Methods("GET", "OPTIONS").Name("login-callback")
	loginSubrouter.HandleFunc("/logout", h.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	loginSubrouter.Use(loginMiddlewares...)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	state, err := h.sessions.NewState(ctx)
	if err != nil {
		log.Errorf("login, new oauth state: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}

func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.callback")
	defer span.End()

	query := r.URL.Query()
	valid, err := h.sessions.ConsumeState(ctx, query.Get("state"))
	if err != nil {
		log.Errorf("login callback, consume state: %s", err)
		h.loginResult("error")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	if !valid {
		h.loginResult("invalid_state")
		http.Error(w, "invalid login state", http.StatusBadRequest)
		return
	}

	code := query.Get("code")
	if code == "" {
		h.loginResult("invalid_code")
		http.Error(w, "missing code", http.StatusBadRequest)
		return
	}

	identity, err := h.provider.Identity(ctx, code)
	if err != nil {
		log.Warnf("login callback, identity: %s", err)
		h.loginResult("denied")
		http.Error(w, "login failed", http.StatusUnauthorized)
		return
	}

	trainee, err := h.trainees.FindOrCreate(ctx, trainees.Profile{
		AuthUserID: identity.ID,
		Name:       identity.Name,
		Image:      identity.Picture,
	})
	if err != nil {
		log.Errorf("login callback, find or create trainee [%s]: %s", identity.ID, err)
		h.loginResult("error")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Create(ctx, User{
		ID:    trainee.ID,
		Name:  trainee.Name,
		Image: trainee.Image,
	}, time.Now())
	if err != nil {
		log.Errorf("login callback, create session: %s", err)
		h.loginResult("error")
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.sessionTTL.Seconds())))
	h.loginResult("success")
	log.Debugf("trainee [%s] logged in", trainee.ID)

	pkg.WriteJSON(w, trainee, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Delete(ctx, cookie.Value); err != nil {
		log.Errorf("logout, delete session: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	h.cache.Forget(cookie.Value)

	http.SetCookie(w, h.sessionCookie("", -1))
	pkg.WriteResponse(w, "", "logged-out", http.StatusOK)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	user, ok := RequireUser(w, r)
	if !ok {
		return
	}

	trainee, err := h.trainees.GetByID(ctx, user.ID)
	if errors.Is(err, trainees.ErrTraineeNotFound) {
		http.Error(w, "trainee not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("me, get trainee [%s]: %s", user.ID, err)
		http.Error(w, "failed to get trainee", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, trainee, http.StatusOK)
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *Handler) loginResult(result string) {
	if h.metrics == nil {
		return
	}
	h.metrics.CounterLogins.WithLabelValues(result).Inc()
}
