package adapthttp

import (
	"net/http"
)

func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	months, err := s.evolution.Timeline(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"months": months})
}
