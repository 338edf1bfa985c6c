package adapthttp

import (
	"net/http"

	"fitsight/internal/domain"
)

func (s *Server) handleLogFood(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
		LoggedAt string  `json:"loggedAt"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entry := domain.FoodLogEntry{
		Calories: body.Calories,
		Protein:  body.Protein,
		Carbs:    body.Carbs,
		Fat:      body.Fat,
	}
	if body.LoggedAt != "" {
		at, err := parseTime(body.LoggedAt)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry.LoggedAt = at
	}

	id, err := s.nutrition.Log(r.Context(), entry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleDeleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := int64Var(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	deleted, err := s.nutrition.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]any{"deleted": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleFoodDaily(w http.ResponseWriter, r *http.Request) {
	days := intQuery(r, "days", 7)
	totals, err := s.nutrition.Daily(r.Context(), days)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"days": totals})
}

func (s *Server) handleCalorieTrend(w http.ResponseWriter, r *http.Request) {
	trend, err := s.nutrition.CalorieTrend(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trend": trend})
}
