package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sportsday-system/services"
)

type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// AssignTeams runs the draw and replaces the team set.
func (h *TeamHandler) AssignTeams(w http.ResponseWriter, r *http.Request) {
	var input services.AssignTeamsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teams, err := h.teamService.AssignTeams(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": h.teamService.ListTeams()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) MoveParticipant(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ParticipantID string `json:"participant_id"`
		FromTeamID    string `json:"from_team_id"`
		ToTeamID      string `json:"to_team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.ParticipantID == "" || input.FromTeamID == "" || input.ToTeamID == "" {
		badRequestResponse(w, r, errors.New("participant_id, from_team_id and to_team_id are required"))
		return
	}
	if err := h.teamService.MoveParticipant(r.Context(), input.ParticipantID, input.FromTeamID, input.ToTeamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("team name is required"))
		return
	}
	if err := h.teamService.RenameTeam(r.Context(), chi.URLParam(r, "id"), input.Name); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandler) SetLocked(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Locked bool `json:"locked"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.teamService.SetLocked(r.Context(), input.Locked); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
