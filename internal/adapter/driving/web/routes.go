package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers the page, its event stream, and its assets on the
// provided mux. Static assets are served from the embedded filesystem at
// /static/*; the image directory, when configured, at /media/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Static assets (embedded via go:embed).
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	if h.opts.ImageDir != "" {
		mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(h.opts.ImageDir))))
	}

	mux.HandleFunc("GET "+streamPath, h.Stream)
	mux.HandleFunc("GET /{$}", h.Greeting)
}
