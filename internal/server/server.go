package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kantodex/kantodex/internal/utils"
	"github.com/kantodex/kantodex/pkg/dex"
	"github.com/kantodex/kantodex/pkg/display"
	"github.com/kantodex/kantodex/pkg/storage"
)

// Server exposes one browsing session (a single coordinator) plus the
// contact submission log as a JSON API.
type Server struct {
	Coordinator *display.Coordinator
	DB          *storage.DB
	Username    string
	Password    string
}

// New wires the catalog through the call-counting decorator into a fresh
// coordinator session. db may be nil; the contact endpoints then report 503.
func New(catalog dex.Catalog, db *storage.DB, user, pass string) *Server {
	coord := display.NewCoordinator(instrument(catalog))
	registerCacheGauge(coord.Resolver())
	return &Server{
		Coordinator: coord,
		DB:          db,
		Username:    user,
		Password:    pass,
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", s.basicAuth(s.handleState))
	mux.HandleFunc("GET /api/suggest", s.basicAuth(s.handleSuggest))
	mux.HandleFunc("POST /api/search", s.basicAuth(s.handleSearch))
	mux.HandleFunc("GET /api/type/{label}", s.basicAuth(s.handleType))
	mux.HandleFunc("POST /api/reset", s.basicAuth(s.handleReset))
	mux.HandleFunc("POST /api/contact", s.basicAuth(s.handleContact))
	mux.HandleFunc("GET /api/submissions", s.basicAuth(s.handleSubmissions))

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
