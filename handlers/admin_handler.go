package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Dosada05/sportsday-system/middleware"
	"github.com/Dosada05/sportsday-system/models"
	"github.com/Dosada05/sportsday-system/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"settings": h.adminService.Settings()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input models.Settings
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.adminService.UpdateSettings(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) SetTitle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title string `json:"title"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Title == "" {
		badRequestResponse(w, r, errors.New("title is required"))
		return
	}
	if err := h.adminService.SetTitle(r.Context(), input.Title); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams the full tournament state as a downloadable JSON document.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.adminService.Export()
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="tournament-state.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import replaces the state with an uploaded export.
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 10<<20))
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.adminService.Import(r.Context(), data); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reset wipes everything back to defaults. Destructive; the UI confirms
// before calling.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	operator, err := middleware.OperatorFromContext(r.Context())
	if err != nil {
		operator = "unknown"
	}
	slog.Warn("tournament state reset", "operator", operator)
	w.WriteHeader(http.StatusNoContent)
}
