package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/quevon24/webbase/pkg/model"
)

func activeUser(t *testing.T, id int64, username, password string) *model.User {
	t.Helper()
	user := &model.User{ID: id, Username: username, IsActive: true}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	return user
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == model.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	admin := activeUser(t, 1, "admin", "s3cret")
	disabled := activeUser(t, 2, "ghost", "s3cret")
	disabled.IsActive = false

	users := newMockUserStore(admin, disabled)
	sessions := newMockSessionStore()

	srv, err := NewTestServer(users, sessions, &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid credentials", `{"username":"admin","password":"s3cret"}`, http.StatusOK},
		{"wrong password", `{"username":"admin","password":"nope"}`, http.StatusUnauthorized},
		{"unknown user", `{"username":"nobody","password":"s3cret"}`, http.StatusUnauthorized},
		{"disabled user", `{"username":"ghost","password":"s3cret"}`, http.StatusUnauthorized},
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest},
		{"garbage body", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}

			cookie := sessionCookie(rec.Result())
			if tt.want == http.StatusOK {
				if cookie == nil || cookie.Value == "" {
					t.Fatal("expected a sessionid cookie")
				}
				if _, err := sessions.Get(cookie.Value); err != nil {
					t.Errorf("session %q was not persisted", cookie.Value)
				}
				if users.lastLoginID != 1 {
					t.Errorf("expected last_login touch for user 1, got %d", users.lastLoginID)
				}
			} else if cookie != nil {
				t.Errorf("unexpected sessionid cookie on failure: %q", cookie.Value)
			}
		})
	}
}

func TestLoginFormEncoded(t *testing.T) {
	users := newMockUserStore(activeUser(t, 1, "admin", "s3cret"))
	sessions := newMockSessionStore()

	srv, err := NewTestServer(users, sessions, &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sessionCookie(rec.Result()) == nil {
		t.Error("expected a sessionid cookie")
	}
}

func TestLogout(t *testing.T) {
	users := newMockUserStore(activeUser(t, 1, "admin", "s3cret"))
	sessions := newMockSessionStore()
	session, err := model.NewSession(1, time.Hour)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	_ = sessions.Create(session)

	srv, err := NewTestServer(users, sessions, &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: model.SessionCookieName, Value: session.SessionKey})
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, err := sessions.Get(session.SessionKey); err == nil {
		t.Error("session should have been deleted")
	}

	cookie := sessionCookie(rec.Result())
	if cookie == nil || cookie.MaxAge != -1 {
		t.Error("expected the sessionid cookie to be expired")
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	srv, err := NewTestServer(newMockUserStore(), newMockSessionStore(), &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("logout without a session should still return 200, got %d", rec.Code)
	}
}

func TestToken(t *testing.T) {
	users := newMockUserStore(activeUser(t, 1, "admin", "s3cret"))

	srv, err := NewTestServer(users, newMockSessionStore(), &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if res.TokenType != "Bearer" {
		t.Errorf("expected token_type Bearer, got %q", res.TokenType)
	}

	claims, err := srv.Signer.Verify(res.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestTokenInvalidCredentials(t *testing.T) {
	users := newMockUserStore(activeUser(t, 1, "admin", "s3cret"))

	srv, err := NewTestServer(users, newMockSessionStore(), &mockHealthStore{})
	if err != nil {
		t.Fatalf("NewTestServer failed: %v", err)
	}
	RegisterAuthEndpoints(srv)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	rec := httptest.NewRecorder()
	srv.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}
