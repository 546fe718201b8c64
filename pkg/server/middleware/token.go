package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/quevon24/webbase/pkg/auth"
	"github.com/quevon24/webbase/pkg/server/store"
)

// TokenAuth validates a bearer token and attaches the user to the
// request context. Requests without an Authorization header pass
// through anonymously; a present but invalid token is rejected.
func TokenAuth(signer *auth.Signer, users store.UserStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("Malformed authorization header"))
				return
			}

			claims, err := signer.Verify(tokenStr)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("Invalid or expired token"))
				return
			}

			user, err := users.ByID(claims.UserID)
			if err != nil || !user.IsActive {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("Unknown or inactive user"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
