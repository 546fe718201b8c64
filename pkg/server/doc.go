// Package server provides the HTTP server for webbase.
//
// The server uses gorilla/mux for routing with request logging and
// panic recovery from gorilla/handlers. Endpoints are registered via
// the endpoints subpackage:
//
//	srv, err := server.NewServer(settings, db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	endpoints.RegisterAll(srv)
//	log.Fatal(srv.Start())
//
// # Endpoints
//
//   - GET  /                 - welcome page
//   - GET  /health           - database connectivity check
//   - POST /auth/login       - session login (sets the sessionid cookie)
//   - POST /auth/logout      - session logout
//   - POST /auth/token       - issue an API token
//   - GET  /whoami           - identity of the caller
//   - GET  /static/...       - embedded static assets
//   - GET  /docs             - project documentation
package server
