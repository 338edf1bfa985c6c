package adapthttp

import (
	"net/http"

	"fitsight/internal/domain"
)

func (s *Server) handleAddSample(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type       string  `json:"type"`
		Value      float64 `json:"value"`
		Unit       string  `json:"unit"`
		CapturedAt string  `json:"capturedAt"`
		Source     string  `json:"source"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sample := domain.Sample{
		Type:   domain.MetricType(body.Type),
		Value:  body.Value,
		Unit:   body.Unit,
		Source: domain.SampleSource(body.Source),
	}
	if body.CapturedAt != "" {
		at, err := parseTime(body.CapturedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		sample.CapturedAt = at
	}

	id, err := s.samples.Record(r.Context(), sample)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleListSamples(w http.ResponseWriter, r *http.Request) {
	metric := domain.MetricType(r.URL.Query().Get("type"))
	days := intQuery(r, "days", 30)

	items, err := s.samples.List(r.Context(), metric, days)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleLatestSample(w http.ResponseWriter, r *http.Request) {
	metric := domain.MetricType(r.URL.Query().Get("type"))

	sample, err := s.samples.Latest(r.Context(), metric)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sample": sample})
}
