package endpoints

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/quevon24/webbase/pkg/auth"
	"github.com/quevon24/webbase/pkg/config"
	"github.com/quevon24/webbase/pkg/server"
	"github.com/quevon24/webbase/pkg/server/store"
)

// NewTestServer builds a Server around the given stores without a
// database connection. Used by tests.
func NewTestServer(users store.UserStore, sessions store.SessionStore, health store.HealthStore) (*server.Server, error) {
	settings := &config.Settings{
		SecretKey:        "test-secret-key-0123456789abcdef",
		Debug:            true,
		StaticRoot:       "staticfiles",
		StaticURL:        "/static/",
		SessionCookieAge: config.DefaultSessionCookieAge,
		AuthTokenTTL:     config.DefaultAuthTokenTTL,
	}

	signer, err := auth.NewSigner(settings.SecretKey, time.Hour)
	if err != nil {
		return nil, err
	}

	return &server.Server{
		Settings: settings,
		Router:   mux.NewRouter().UseEncodedPath(),
		Signer:   signer,
		Users:    users,
		Sessions: sessions,
		Health:   health,
	}, nil
}
