package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/quevon24/webbase/pkg/model"
	"github.com/quevon24/webbase/pkg/server"
	"github.com/quevon24/webbase/pkg/server/middleware"
)

// LoginRequest represents the credentials posted to /auth/login and
// /auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful /auth/login response
type LoginResponse struct {
	Username string `json:"username"`
	Detail   string `json:"detail"`
}

// TokenResponse represents a successful /auth/token response
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

// RegisterAuthEndpoints registers the session and token authentication
// endpoints
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/auth/login", handleLogin(s)).Methods("POST")
	s.Router.HandleFunc("/auth/logout", handleLogout(s)).Methods("POST")
	s.Router.HandleFunc("/auth/token", handleToken(s)).Methods("POST")
}

// credentials decodes a login payload from JSON or form values.
func credentials(r *http.Request) (LoginRequest, bool) {
	var req LoginRequest
	if r.Header.Get("Content-Type") == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, false
		}
		req.Username = r.PostFormValue("username")
		req.Password = r.PostFormValue("password")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, false
		}
	}
	return req, req.Username != "" && req.Password != ""
}

// authenticate resolves credentials to an active user. It returns nil
// for unknown users, wrong passwords and disabled accounts alike so
// callers can't distinguish the cases.
func authenticate(s *server.Server, req LoginRequest) *model.User {
	user, err := s.Users.ByUsername(req.Username)
	if err != nil || !user.IsActive {
		return nil
	}
	if !user.CheckPassword(req.Password) {
		return nil
	}
	return user
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := credentials(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		user := authenticate(s, req)
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		session, err := model.NewSession(user.ID, s.Settings.SessionTTL())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to create session")
			return
		}
		if err := s.Sessions.Create(session); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to create session")
			return
		}
		_ = s.Users.TouchLastLogin(user.ID)

		http.SetCookie(w, &http.Cookie{
			Name:     model.SessionCookieName,
			Value:    session.SessionKey,
			Path:     "/",
			MaxAge:   int(s.Settings.SessionTTL().Seconds()),
			HttpOnly: true,
			Secure:   !s.Settings.Debug,
			SameSite: http.SameSiteLaxMode,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Username: user.Username,
			Detail:   "login successful",
		})
	}
}

func handleLogout(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(model.SessionCookieName); err == nil && cookie.Value != "" {
			_ = s.Sessions.Delete(cookie.Value)
		}

		// Expire the cookie regardless of whether a session existed
		http.SetCookie(w, &http.Cookie{
			Name:     model.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		respondWithJSON(w, http.StatusOK, map[string]string{"detail": "logout successful"})
	}
}

func handleToken(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := credentials(r)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "username and password are required")
			return
		}

		user := authenticate(s, req)
		if user == nil {
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := s.Signer.Issue(user.ID, user.Username)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to issue token")
			return
		}
		_ = s.Users.TouchLastLogin(user.ID)

		respondWithJSON(w, http.StatusOK, TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int64(s.Settings.TokenTTL().Seconds()),
		})
	}
}

// sessionMiddleware builds the middleware chain shared by endpoints
// that accept either a session cookie or a bearer token.
func sessionMiddleware(s *server.Server) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.SessionAuth(s.Sessions, s.Users),
		middleware.TokenAuth(s.Signer, s.Users),
	}
}
