package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// Router mounts the streamable HTTP transport at /mcp with a /healthz probe.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/mcp", mcpserver.NewStreamableHTTPServer(s.mcp))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_ = yaml.NewEncoder(w).Encode(map[string]any{
		"ok":       true,
		"sessions": s.sessions.Len(),
	})
}
