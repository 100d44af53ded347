package middleware

import (
	"net/http"
	"path"
)

// Site serves the published pages under dir. Pages are revalidated on every
// load because they carry the language switcher markup; the wasm resolver is
// served with its registered media type.
func Site(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch ext := path.Ext(r.URL.Path); {
		case ext == ".wasm":
			w.Header().Set("Content-Type", "application/wasm")
			w.Header().Set("Cache-Control", "no-cache")
		case ext == ".html", ext == "":
			w.Header().Set("Cache-Control", "no-cache")
		}
		files.ServeHTTP(w, r)
	})
}
