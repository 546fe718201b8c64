package endpoints

import (
	"net/http"
	"time"

	"github.com/quevon24/webbase/pkg/server"
	"github.com/quevon24/webbase/pkg/server/middleware"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	FullName    string     `json:"full_name,omitempty"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// RegisterWhoamiEndpoint registers the /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	// Subrouter so the auth middleware only runs for /whoami
	whoamiRouter := s.Router.PathPrefix("/whoami").Subrouter()
	for _, mw := range sessionMiddleware(s) {
		whoamiRouter.Use(mw)
	}

	whoamiRouter.Handle("", middleware.RequireUser(handleWhoami())).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFrom(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			ID:          user.ID,
			Username:    user.Username,
			Email:       user.Email,
			FullName:    user.FullName(),
			IsStaff:     user.IsStaff,
			IsSuperuser: user.IsSuperuser,
			LastLogin:   user.LastLogin,
		})
	}
}
