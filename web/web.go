package web

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"
)

const IndexPath = "/static/index.html"

//go:embed static
var assets embed.FS

// StaticHandler serves the embedded landing page assets under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic("embedded static directory missing")
	}

	index, err := fs.ReadFile(sub, "index.html")
	if err != nil {
		panic("embedded index.html missing")
	}

	files := http.FileServerFS(sub)

	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// FileServer redirects */index.html to the directory, the landing page URL has to stay put.
		if r.URL.Path == "index.html" {
			http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(index))
			return
		}
		files.ServeHTTP(w, r)
	}))
}

// RedirectToIndex sends the caller to the landing page with a 307.
func RedirectToIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}
