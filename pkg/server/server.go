package server

import (
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/quevon24/webbase/pkg/auth"
	"github.com/quevon24/webbase/pkg/config"
	"github.com/quevon24/webbase/pkg/server/middleware"
	"github.com/quevon24/webbase/pkg/server/store"
	gormstore "github.com/quevon24/webbase/pkg/server/store/gorm"
)

// Server wires the router, the stores and the HTTP server together.
type Server struct {
	Settings *config.Settings
	Router   *mux.Router
	DB       *gorm.DB
	Signer   *auth.Signer

	Users    store.UserStore
	Sessions store.SessionStore
	Health   store.HealthStore

	srv *http.Server
}

// NewServer creates a Server with GORM-backed stores.
func NewServer(settings *config.Settings, db *gorm.DB) (*Server, error) {
	signer, err := auth.NewSigner(settings.SecretKey, settings.TokenTTL())
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter().UseEncodedPath()
	router.Use(middleware.AllowedHosts(settings))

	srv := &http.Server{
		Handler: handlers.LoggingHandler(
			os.Stdout,
			handlers.RecoveryHandler()(router),
		),
		Addr: settings.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Settings: settings,
		Router:   router,
		DB:       db,
		Signer:   signer,
		Users:    gormstore.NewUserStore(db),
		Sessions: gormstore.NewSessionStore(db),
		Health:   gormstore.NewHealthStore(db),
		srv:      srv,
	}, nil
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// StartWithListener serves HTTP requests on an existing listener. Used
// by tests that need to pick the port themselves.
func (s *Server) StartWithListener(l net.Listener) error {
	return s.srv.Serve(l)
}
