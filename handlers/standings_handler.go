package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/sportsday-system/services"
)

type StandingsHandler struct {
	standingsService *services.StandingsService
}

func NewStandingsHandler(standingsService *services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// List returns the ranked table. An optional ?top=N trims it.
func (h *StandingsHandler) List(w http.ResponseWriter, r *http.Request) {
	ranked := h.standingsService.Standings()
	if topStr := r.URL.Query().Get("top"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil || top < 1 {
			badRequestResponse(w, r, errors.New("top must be a positive integer"))
			return
		}
		ranked = h.standingsService.TopN(top)
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": ranked}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Recompute folds the completed matches into fresh standings.
func (h *StandingsHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.standingsService.Recompute(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": ranked}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
