package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sportsday-system/services"
)

type RosterHandler struct {
	rosterService *services.RosterService
}

func NewRosterHandler(rosterService *services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rosterService}
}

func (h *RosterHandler) AddClass(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Label string `json:"label"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.rosterService.AddClass(r.Context(), input.Label); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"classes": h.rosterService.ListClasses()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RosterHandler) RemoveClass(w http.ResponseWriter, r *http.Request) {
	if err := h.rosterService.RemoveClass(r.Context(), chi.URLParam(r, "label")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RosterHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"classes": h.rosterService.ListClasses()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ImportParticipants accepts a class label plus a block of text with one
// participant name per line.
func (h *RosterHandler) ImportParticipants(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Class string `json:"class"`
		Names string `json:"names"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Class == "" {
		badRequestResponse(w, r, errors.New("class is required"))
		return
	}
	added, err := h.rosterService.ImportParticipants(r.Context(), input.Class, input.Names)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"added": added}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RosterHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"participants": h.rosterService.ListParticipants()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RosterHandler) SetPresence(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Present bool `json:"present"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.rosterService.SetPresence(r.Context(), chi.URLParam(r, "id"), input.Present); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RosterHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	if err := h.rosterService.RemoveParticipant(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RosterHandler) ClearParticipants(w http.ResponseWriter, r *http.Request) {
	if err := h.rosterService.ClearParticipants(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
