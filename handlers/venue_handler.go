package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/sportsday-system/services"
)

type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

func (h *VenueHandler) AddVenue(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Activity string `json:"activity"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Name == "" {
		badRequestResponse(w, r, errors.New("venue name is required"))
		return
	}
	venue, err := h.venueService.AddVenue(r.Context(), input.Name, input.Activity)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"venue": venue}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Activity string `json:"activity"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.venueService.UpdateVenue(r.Context(), chi.URLParam(r, "id"), input.Name, input.Activity); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VenueHandler) RemoveVenue(w http.ResponseWriter, r *http.Request) {
	if err := h.venueService.RemoveVenue(r.Context(), chi.URLParam(r, "id")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"venues": h.venueService.ListVenues()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
