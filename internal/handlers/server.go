package handlers

import (
	"github.com/gorilla/mux"
	"github.com/pep299/text-summarizer/internal/config"
	"github.com/pep299/text-summarizer/internal/middleware"
	"github.com/pep299/text-summarizer/internal/stats"
	"github.com/pep299/text-summarizer/internal/summarizer"
)

const (
	// ServiceName identifies the service in the root endpoint response
	ServiceName = "Text Summarization API"
	// ServiceVersion is the API contract version reported by the root endpoint
	ServiceVersion = "1.0.0"
)

// Server holds the HTTP server and its dependencies
type Server struct {
	config     *config.Config
	summarizer *summarizer.Summarizer
	stats      *stats.Collector
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config) *Server {
	return &Server{
		config:     cfg,
		summarizer: summarizer.New(cfg.SummaryWordLimit),
		stats:      stats.NewCollector(),
	}
}

// Stats exposes the request collector for the heartbeat scheduler
func (s *Server) Stats() *stats.Collector {
	return s.stats
}

// SetupRoutes configures HTTP routes
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.CORS())
	r.Use(middleware.Logging(s.stats))

	// Health checks
	r.HandleFunc("/", s.rootHandler).Methods("GET")
	r.HandleFunc("/health", s.healthHandler).Methods("GET")

	// Summary operations
	r.HandleFunc("/summaries", s.createSummaryHandler).Methods("POST")

	// Status and observability
	r.HandleFunc("/stats", s.statsHandler).Methods("GET")

	return r
}
