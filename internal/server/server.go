// Package server exposes the extraction pipelines over a JSON HTTP surface.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/joseph-ayodele/contracts-analyzer/internal/compliance"
	"github.com/joseph-ayodele/contracts-analyzer/internal/contract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/docpipe"
	"github.com/joseph-ayodele/contracts-analyzer/internal/recommend"
)

// Server wires the handlers over their constructed collaborators. Everything
// is stateless per call, so one Server instance serves concurrent requests.
type Server struct {
	digitizer *docpipe.Digitizer
	extractor *contract.Extractor
	detector  *compliance.Detector
	matcher   *recommend.Matcher
	log       *slog.Logger
}

func New(digitizer *docpipe.Digitizer, extractor *contract.Extractor,
	detector *compliance.Detector, matcher *recommend.Matcher, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		digitizer: digitizer,
		extractor: extractor,
		detector:  detector,
		matcher:   matcher,
		log:       logger,
	}
}

// Routes builds the router. All routes live under /api/v1.
func (s *Server) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/documents/digitize", s.handleDigitize)
		api.Post("/clauses/detect", s.handleDetect)
		api.Post("/service-plans/recommend", s.handleRecommend)
		api.Post("/contracts/export", s.handleExport)

		api.Route("/contracts", func(c chi.Router) {
			c.Post("/basic-info", s.handleBasicInfo)
			c.Post("/devices", s.handleDevices)
			c.Post("/training-support", s.handleTrainingSupport)
			c.Post("/after-sales-support", s.handleAfterSales)
			c.Post("/key-spare-parts", s.handleKeySpareParts)
			c.Post("/onsite-sla", s.handleOnsiteSLA)
			c.Post("/yearly-maintenance", s.handleYearlyMaintenance)
			c.Post("/remote-maintenance", s.handleRemoteMaintenance)
			c.Post("/compliance", s.handleComplianceInfo)
		})
	})
	return r
}
