package adapthttp

import (
	"errors"
	"net/http"
	"time"

	"fitsight/internal/app"
	"fitsight/internal/domain"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profile.Get(r.Context())
	if err != nil {
		if errors.Is(err, app.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HeightCm      float64 `json:"heightCm"`
		Sex           string  `json:"sex"`
		BirthDate     string  `json:"birthDate"`
		ActivityLevel string  `json:"activityLevel"`
		Goal          string  `json:"goal"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p := domain.UserProfile{
		HeightCm:      body.HeightCm,
		Sex:           body.Sex,
		ActivityLevel: body.ActivityLevel,
		Goal:          domain.Goal(body.Goal),
	}
	if body.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", body.BirthDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p.BirthDate = birth
	}

	if err := s.profile.Save(r.Context(), &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
