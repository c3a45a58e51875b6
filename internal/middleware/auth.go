package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/traininglog/internal/auth"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
)

//go:generate mockgen -destination=auth_mocks_test.go -package=middleware_test github.com/2beens/traininglog/internal/auth Authenticator

type AuthMiddlewareHandler struct {
	authenticator auth.Authenticator
	allowedPaths  map[string]bool
}

func NewAuthMiddlewareHandler(authenticator auth.Authenticator) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		allowedPaths: map[string]bool{
			"/health": true,
			// login flow:
			"/auth/google":          true,
			"/auth/google/callback": true,
		},
	}
}

// AuthCheck resolves the caller through the authenticator and stores it in
// the request context. Requests without a valid session are rejected unless
// the path is public.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			user, ok := h.authenticator.IsAuthenticated(r.WithContext(ctx))
			if !ok {
				log.Tracef("[auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				return
			}

			span.SetAttributes(attribute.String("trainee.id", user.ID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
		})
	}
}
