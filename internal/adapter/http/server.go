// Package adapthttp is the driving HTTP adapter: it routes requests to
// application services and translates results to JSON.
package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitsight/internal/app"
	"fitsight/internal/metrics"
)

// Server routes requests to the application services.
type Server struct {
	samples   *app.SampleService
	nutrition *app.NutritionService
	analysis  *app.AnalysisService
	trends    *app.TrendsService
	evolution *app.EvolutionService
	profile   *app.ProfileService
	instr     *metrics.Instrumentation
}

// New creates a Server wired to the given application services.
func New(
	samples *app.SampleService,
	nutrition *app.NutritionService,
	analysis *app.AnalysisService,
	trends *app.TrendsService,
	evolution *app.EvolutionService,
	profile *app.ProfileService,
	instr *metrics.Instrumentation,
) *Server {
	return &Server{
		samples:   samples,
		nutrition: nutrition,
		analysis:  analysis,
		trends:    trends,
		evolution: evolution,
		profile:   profile,
		instr:     instr,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/samples", s.handleAddSample).Methods(http.MethodPost)
	api.HandleFunc("/samples", s.handleListSamples).Methods(http.MethodGet)
	api.HandleFunc("/samples/latest", s.handleLatestSample).Methods(http.MethodGet)

	api.HandleFunc("/food", s.handleLogFood).Methods(http.MethodPost)
	api.HandleFunc("/food/{id}", s.handleDeleteFood).Methods(http.MethodDelete)
	api.HandleFunc("/food/daily", s.handleFoodDaily).Methods(http.MethodGet)
	api.HandleFunc("/food/trend", s.handleCalorieTrend).Methods(http.MethodGet)

	api.HandleFunc("/analysis/scan", s.handleAnalyzeScan).Methods(http.MethodPost)
	api.HandleFunc("/analysis/scans", s.handleRecentScans).Methods(http.MethodGet)
	api.HandleFunc("/analysis/compare", s.handleCompareScans).Methods(http.MethodGet)

	api.HandleFunc("/trends/{metric}", s.handleMetricTrend).Methods(http.MethodGet)
	api.HandleFunc("/trends/{metric}/weekly", s.handleWeekOverWeek).Methods(http.MethodGet)
	api.HandleFunc("/trends/{metric}/latest", s.handleLatestDelta).Methods(http.MethodGet)

	api.HandleFunc("/evolution", s.handleEvolution).Methods(http.MethodGet)

	api.HandleFunc("/profile", s.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profile", s.handlePutProfile).Methods(http.MethodPut)

	r.Use(requestID, logRequest, requestMetrics(s.instr))
	return r
}
