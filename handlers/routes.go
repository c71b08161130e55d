package handlers

import (
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

// statusRecorder keeps the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogRequest logs each request at debug level.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("LogRequest")
	})
}

// guardedPaths are the GET routes with side effects on the host.
var guardedPaths = map[string]bool{
	"/open/": true,
}

// SameOrigin rejects state-changing requests coming from another site:
// any non GET/HEAD/OPTIONS request and the guarded GET routes. A request
// is cross-site when its Origin header is not an allowed origin, or when
// the browser flags it with Sec-Fetch-Site: cross-site. Requests without
// those headers, as sent by non-browser clients, are let through.
func SameOrigin(allowedOrigins []string) alice.Constructor {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			safe := r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions
			if safe && !guardedPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			origin := r.Header.Get("Origin")
			if (origin != "" && !allowed[origin]) || r.Header.Get("Sec-Fetch-Site") == "cross-site" {
				failHTTP(w, "SameOrigin", "cross-origin request refused: "+r.Method+" "+r.URL.Path, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Handler returns the application routes behind the logging, CORS and
// same-origin middlewares.
func (env *Env) Handler(allowedOrigins []string) http.Handler {

	// CORS handler
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "DNT", "User-Agent", "X-Requested-With", "If-Modified-Since", "Cache-Control", "Content-Type", "Range"},
	})

	mux := http.NewServeMux()

	// Handlers initialization.
	mux.HandleFunc("/addBookmark/", env.AddBookmarkHandler)
	mux.HandleFunc("/clearBookmarks/", env.ClearBookmarksHandler)
	mux.HandleFunc("/getBookmarks/", env.GetBookmarksHandler)
	mux.HandleFunc("/import/", env.ImportHandler)
	mux.HandleFunc("/export/", env.ExportHandler)
	mux.HandleFunc("/open/", env.OpenHandler)
	mux.HandleFunc("/", env.MainHandler)

	return alice.New(LogRequest, c.Handler, SameOrigin(allowedOrigins)).Then(mux)

}
