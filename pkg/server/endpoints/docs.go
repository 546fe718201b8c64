package endpoints

import (
	"bytes"
	"embed"
	"net/http"
	"path"
	"strings"

	"github.com/gorilla/mux"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/quevon24/webbase/pkg/server"
)

//go:embed docs/*.md
var docPages embed.FS

var docsMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RegisterDocsEndpoints registers the built-in documentation pages.
// Pages are markdown files embedded in the binary and rendered to HTML
// on request.
func RegisterDocsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/docs", handleDocPage("index")).Methods("GET")
	s.Router.HandleFunc("/docs/{page}", func(w http.ResponseWriter, r *http.Request) {
		handleDocPage(mux.Vars(r)["page"])(w, r)
	}).Methods("GET")
}

func handleDocPage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// path.Base strips any traversal attempt from the page name
		name := path.Base(page)
		source, err := docPages.ReadFile("docs/" + name + ".md")
		if err != nil {
			http.NotFound(w, r)
			return
		}

		var body bytes.Buffer
		if err := docsMarkdown.Convert(source, &body); err != nil {
			respondWithError(w, http.StatusInternalServerError, "unable to render page")
			return
		}

		html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width">
    <link rel="stylesheet" href="/static/css/welcome-page.css">
    <title>` + docTitle(source, name) + `</title>
  </head>
  <body>
    <main>
      <div class="left-panel">
` + body.String() + `
      </div>
    </main>
  </body>
</html>
`
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}
}

// docTitle returns the first level-one heading of a markdown page, or
// the page name when there is none.
func docTitle(source []byte, fallback string) string {
	for _, line := range strings.Split(string(source), "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
