package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Dosada05/sportsday-system/replication"
	"github.com/Dosada05/sportsday-system/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard runs on venue hardware on the local network.
		return true
	},
}

// DashboardHandler serves the read side of the replication channel: the
// polled snapshot endpoint and the websocket push feed.
type DashboardHandler struct {
	store           replication.Store
	hub             *replication.Hub
	snapshotService *services.SnapshotService
}

func NewDashboardHandler(store replication.Store, hub *replication.Hub, snapshotService *services.SnapshotService) *DashboardHandler {
	return &DashboardHandler{
		store:           store,
		hub:             hub,
		snapshotService: snapshotService,
	}
}

// GetSnapshot returns the last published snapshot. Readers that poll before
// the first publish get a 404 and are expected to render a "no data yet"
// state.
func (h *DashboardHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok, err := h.store.Read(replication.DefaultSnapshotKey)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if !ok {
		errorResponse(w, r, http.StatusNotFound, "no data yet")
		return
	}
	if err := writeJSON(w, http.StatusOK, snap, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ServeWs upgrades the connection and subscribes it to snapshot broadcasts.
func (h *DashboardHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("failed to upgrade dashboard connection: %v", err)
		return
	}

	client := &replication.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// Timer controls for the operator panel.

func (h *DashboardHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	h.snapshotService.StartTimer()
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) PauseTimer(w http.ResponseWriter, r *http.Request) {
	h.snapshotService.PauseTimer()
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) ResetTimer(w http.ResponseWriter, r *http.Request) {
	h.snapshotService.ResetTimer()
	w.WriteHeader(http.StatusNoContent)
}

func (h *DashboardHandler) AdjustTimer(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Minutes int `json:"minutes"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.snapshotService.AdjustTimer(input.Minutes)
	w.WriteHeader(http.StatusNoContent)
}
