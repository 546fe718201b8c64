package middleware

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quevon24/webbase/pkg/model"
	"github.com/quevon24/webbase/pkg/server/store"
)

// SessionAuth resolves the sessionid cookie to a user and attaches both
// the session and the user to the request context. Requests without a
// valid session pass through anonymously; handlers that need an
// identity use RequireUser.
func SessionAuth(sessions store.SessionStore, users store.UserStore) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(model.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := sessions.Get(cookie.Value)
			if err != nil || session.Expired() {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.ByID(session.UserID)
			if err != nil || !user.IsActive {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = WithUser(ctx, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that carry no authenticated user.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Authentication required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
