package http

import (
	"net/http"
	"strconv"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{
		service: service,
	}
}

type roomResponse struct {
	ID     int64     `json:"id"`
	Name   string    `json:"name"`
	Token  uuid.UUID `json:"token"`
	Closed bool      `json:"closed"`
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:     room.ID,
		Name:   room.Name,
		Token:  room.Token,
		Closed: room.Closed,
	}
}

// CreateRoom godoc
// @Summary      Creates a room
// @Description  Opens a new polling room and returns its access token.
// @Tags         rooms
// @Produce      json
// @Param        name  query     string  true  "Room name"
// @Success      200   {object}  roomResponse
// @Failure      400
// @Router       /rooms/create [post]
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("name") {
		http.Error(w, "missing name parameter", http.StatusBadRequest)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), query.Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRoomResponse(room))
}

// CloseRoom godoc
// @Summary      Closes a room
// @Description  Aggregates every poll response of the room and returns the result document.
// @Tags         rooms
// @Produce      json
// @Param        token  query  string  true  "Room access token"
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /rooms/close [post]
func (h *RoomHandler) CloseRoom(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	room, err := h.service.CloseRoom(r.Context(), token)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(*room.AggregatedResult))
}

// GetRoom godoc
// @Summary      Gets a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404
// @Router       /rooms/{id} [get]
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := roomIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRoomResponse(room))
}

// GetResults godoc
// @Summary      Gets the stored result of a closed room
// @Tags         rooms
// @Produce      json
// @Param        id   path  int  true  "Room id"
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /rooms/{id}/results [get]
func (h *RoomHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, err := roomIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc, err := h.service.GetResults(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

func roomIDParam(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidRoomID
	}
	return id, nil
}
