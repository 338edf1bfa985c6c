package adapthttp

import (
	"errors"
	"net/http"

	"fitsight/internal/app"
)

func (s *Server) handleAnalyzeScan(w http.ResponseWriter, r *http.Request) {
	var req app.ScanRequest
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.PhotoURL == "" {
		writeError(w, http.StatusBadRequest, errors.New("photoUrl is required"))
		return
	}

	result, err := s.analysis.AnalyzeScan(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, err)
		case errors.Is(err, app.ErrUnparsableAnalysis):
			s.instr.CounterUnparsableScans.Inc()
			writeError(w, http.StatusUnprocessableEntity, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	s.instr.CounterScansAnalyzed.Inc()
	if result.Scan.RapidChangeDetected {
		s.instr.CounterSafetyAdvisories.Inc()
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleRecentScans(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 10)
	scans, err := s.analysis.RecentScans(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": scans})
}

func (s *Server) handleCompareScans(w http.ResponseWriter, r *http.Request) {
	comparison, err := s.analysis.CompareLatest(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, app.ErrProfileNotFound), errors.Is(err, app.ErrNotEnoughScans):
			writeError(w, http.StatusNotFound, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}
