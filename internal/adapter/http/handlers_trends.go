package adapthttp

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fitsight/internal/app"
	"fitsight/internal/domain"
)

func (s *Server) handleMetricTrend(w http.ResponseWriter, r *http.Request) {
	metric := domain.MetricType(mux.Vars(r)["metric"])
	days := intQuery(r, "days", 30)

	trend, err := s.trends.MetricTrend(r.Context(), metric, days)
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleLatestDelta(w http.ResponseWriter, r *http.Request) {
	metric := domain.MetricType(mux.Vars(r)["metric"])

	change, err := s.trends.LatestDelta(r.Context(), metric)
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"metric": metric, "change": change})
}

func (s *Server) handleWeekOverWeek(w http.ResponseWriter, r *http.Request) {
	metric := domain.MetricType(mux.Vars(r)["metric"])

	trend, err := s.trends.WeekOverWeek(r.Context(), metric)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"metric": metric, "trend": trend})
}
