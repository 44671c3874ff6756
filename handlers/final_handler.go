package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/sportsday-system/services"
)

type FinalHandler struct {
	finalService *services.FinalService
}

func NewFinalHandler(finalService *services.FinalService) *FinalHandler {
	return &FinalHandler{finalService: finalService}
}

func (h *FinalHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Team1ID  string `json:"team1_id"`
		Team2ID  string `json:"team2_id"`
		Stage    string `json:"stage"`
		Activity string `json:"activity"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Team1ID == "" || input.Team2ID == "" {
		badRequestResponse(w, r, errors.New("team1_id and team2_id are required"))
		return
	}
	if err := h.finalService.ActivateFinal(r.Context(), input.Team1ID, input.Team2ID, input.Stage, input.Activity); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FinalHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Score1 int `json:"score1"`
		Score2 int `json:"score2"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.finalService.SetFinalScore(r.Context(), input.Score1, input.Score2); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FinalHandler) Exit(w http.ResponseWriter, r *http.Request) {
	if err := h.finalService.ExitFinal(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Winner names the final-stage winner so far, "draw" on a tie.
func (h *FinalHandler) Winner(w http.ResponseWriter, r *http.Request) {
	final := h.finalService.Final()
	if err := writeJSON(w, http.StatusOK, jsonResponse{
		"final":  final,
		"winner": services.FinalWinner(final),
	}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
