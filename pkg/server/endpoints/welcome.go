package endpoints

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/quevon24/webbase/pkg/server"
)

// RegisterWelcomeEndpoint registers the default landing page at /
func RegisterWelcomeEndpoint(s *server.Server) {
	s.Router.HandleFunc("/", handleWelcome()).Methods("GET")
}

func handleWelcome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("WEBBASE_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		// Check if JSON is requested via Accept header or format query param
		accept := r.Header.Get("Accept")
		format := r.URL.Query().Get("format")
		if format == "json" || strings.Contains(accept, "application/json") {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{"version": version})
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">

    <link rel="stylesheet" href="/static/css/welcome-page.css">
    <title>Welcome to webbase</title>
  </head>
  <body>

    <header>
      <div class="logo-cont">
        <img src="/static/img/webbase-logo.svg"/>
      </div>
      <div class="links-cont">
        <a href="/docs">Docs</a>
        |
        <a href="/health">Health</a>
      </div>
    </header>

    <main>
      <div class="left-panel">
        <h1>The install worked successfully!</h1>
        <p class="status-text">Your webbase server is running.</p>

        <h2>Next steps:</h2>
        <dl>
          <dt>Run the migrations:</dt>
          <dd><code>webbasectl db migrate</code></dd>
          <dt>Create an administrator:</dt>
          <dd><code>webbasectl superuser create</code></dd>
          <dt>Sign in:</dt>
          <dd><code>POST /auth/login</code> with a username and password.</dd>
        </dl>

        <p>
          You are seeing this page because <code>DEBUG</code> is on or no
          application routes have been registered yet.
        </p>
      </div>

      <div class="right-panel">
        <dl>
          <dt>Details:</dt>
          <dd>Version ` + version + `</dd>
          <dt>More Info:</dt>
          <dd>
            <ul>
              <li><a href="/docs">Documentation</a></li>
              <li><a href="/whoami">Who am I?</a></li>
            </ul>
          </dd>
        </dl>
      </div>
    </main>

    <footer>
      <p class="copyright">
        Powered by webbase.
      </p>
    </footer>

  </body>
</html>
`

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}
