package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quevon24/webbase/pkg/config"
)

// AllowedHosts rejects requests whose Host header is not listed in
// ALLOWED_HOSTS. In debug mode every host is accepted.
func AllowedHosts(settings *config.Settings) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !settings.HostAllowed(r.Host) {
				http.Error(w, "Bad Request: host not allowed", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
