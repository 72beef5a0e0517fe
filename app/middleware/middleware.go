package middleware

import (
	"net/http"
	"strings"
	"time"

	"connectly/app/auth"
	"connectly/app/config"
	"connectly/app/logging"
	"connectly/app/services"
)

// Logger logs information about each request. Timing detail is only emitted
// while ENABLE_ANALYTICS is on.
func Logger(log *logging.Sink, settings *config.Settings) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if settings.GetBool(config.KeyEnableAnalytics, false) {
				log.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
			} else {
				log.Info("request", "method", r.Method, "path", r.URL.Path)
			}
		})
	}
}

// Recoverer recovers from panics and logs the error
func Recoverer(log *logging.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Warning("panic recovered", "path", r.URL.Path, "error", err)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ContentTypeJSON sets the Content-Type header to application/json
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// Authenticate resolves the acting user from a bearer token into the request
// context. Requests without a valid token pass through unauthenticated; the
// services decide whether that is acceptable.
func Authenticate(authService *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				if user, err := authService.Resolve(token); err == nil {
					r = r.WithContext(auth.WithPrincipal(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
