package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sportsday-system/services"
)

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Generate builds a full round-robin schedule inside the configured window.
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	matches, err := h.scheduleService.GenerateSchedule(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateFixedRounds builds a fixed number of fairness-balanced rounds.
func (h *ScheduleHandler) GenerateFixedRounds(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Seed *int64 `json:"seed,omitempty"`
	}
	if r.ContentLength > 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}
	matches, err := h.scheduleService.GenerateFixedRounds(r.Context(), input.Seed)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": h.scheduleService.ListSchedule()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) AddManualMatch(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Team1ID  string `json:"team1_id"`
		Team2ID  string `json:"team2_id"`
		Venue    string `json:"venue"`
		Activity string `json:"activity"`
		Time     string `json:"time"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Team1ID == "" || input.Team2ID == "" || input.Time == "" {
		badRequestResponse(w, r, errors.New("team1_id, team2_id and time are required"))
		return
	}
	match, err := h.scheduleService.AddManualMatch(r.Context(), input.Team1ID, input.Team2ID, input.Venue, input.Activity, input.Time)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScheduleHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.DeleteSlot(r.Context(), chi.URLParam(r, "label")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear wipes the schedule. Destructive; the UI confirms before calling.
func (h *ScheduleHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ClearSchedule(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetScore replaces both scores of a match. A client updating one side must
// resend the other; an omitted or null side is cleared.
func (h *ScheduleHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Score1 *int `json:"score1"`
		Score2 *int `json:"score2"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.scheduleService.SetScore(r.Context(), chi.URLParam(r, "id"), input.Score1, input.Score2); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Shift re-times every slot at or after a reference label. The reference
// may be "now".
func (h *ScheduleHandler) Shift(w http.ResponseWriter, r *http.Request) {
	var input struct {
		From         string `json:"from"`
		DeltaMinutes int    `json:"delta_minutes"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.From == "" {
		badRequestResponse(w, r, errors.New("from is required (a slot label or \"now\")"))
		return
	}
	if err := h.scheduleService.ShiftFrom(r.Context(), input.From, input.DeltaMinutes); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ShiftNextRound pulls the next unfinished round to start two minutes from
// now.
func (h *ScheduleHandler) ShiftNextRound(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ShiftNextRound(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScheduleHandler) Validate(w http.ResponseWriter, r *http.Request) {
	violations := h.scheduleService.ValidateSchedule()
	if violations == nil {
		violations = []services.ScheduleViolation{}
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"violations": violations}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
