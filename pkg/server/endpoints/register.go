package endpoints

import (
	"github.com/quevon24/webbase/pkg/server"
)

// RegisterAll registers all HTTP endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterWelcomeEndpoint(srv)
	RegisterHealthEndpoint(srv)
	RegisterAuthEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterDocsEndpoints(srv)

	// Static files
	RegisterStaticFiles(srv)
}
