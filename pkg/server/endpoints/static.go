package endpoints

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/quevon24/webbase/pkg/server"
)

//go:embed static/css static/img
var staticFiles embed.FS

// RegisterStaticFiles registers static file serving under STATIC_URL.
// The bundled assets are embedded in the binary; when STATIC_ROOT
// exists on disk (populated by `webbasectl collectstatic`) it takes
// precedence so deployments can override or add files.
func RegisterStaticFiles(srv *server.Server) {
	prefix := srv.Settings.StaticURL

	staticFS, err := BundledStatic()
	if err != nil {
		log.Printf("Static files unavailable: %v", err)
		return
	}

	var root http.FileSystem = http.FS(staticFS)
	if info, err := os.Stat(srv.Settings.StaticRoot); err == nil && info.IsDir() {
		root = http.Dir(srv.Settings.StaticRoot)
	}

	srv.Router.PathPrefix(prefix).Handler(
		http.StripPrefix(prefix, http.FileServer(root)),
	)

	// Serve favicon.ico (return 404 if not present)
	srv.Router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}

// BundledStatic exposes the embedded assets so collectstatic can copy
// them into STATIC_ROOT.
func BundledStatic() (fs.FS, error) {
	return fs.Sub(staticFiles, "static")
}
