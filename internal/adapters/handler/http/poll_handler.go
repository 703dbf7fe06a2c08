package http

import (
	"encoding/json"
	"net/http"

	"github.com/KissBendeguz/SnackElf/internal/core/ports"
	"github.com/go-chi/chi/v5"
)

// maxPollBodyBytes caps the submission body.
const maxPollBodyBytes = 1 << 20

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type submitPollRequest struct {
	HappyFoodIDs   []int64 `json:"happyFoodIds"`
	SadFoodIDs     []int64 `json:"sadFoodIds"`
	NeutralFoodIDs []int64 `json:"neutralFoodIds"`
}

// SubmitPoll godoc
// @Summary      Submits a poll response
// @Description  Unknown food ids are ignored. Closed rooms reject submissions.
// @Tags         poll
// @Accept       json
// @Produce      json
// @Param        roomId  query  int                true  "Room id"
// @Param        body    body   submitPollRequest  true  "Food ids per category"
// @Success      201
// @Failure      400
// @Failure      404
// @Router       /poll [post]
func (h *PollHandler) SubmitPoll(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(r.URL.Query().Get("roomId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req submitPollRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxPollBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.SubmitPollInput{
		RoomID:      roomID,
		LikedIDs:    req.HappyFoodIDs,
		DislikedIDs: req.SadFoodIDs,
		NeutralIDs:  req.NeutralFoodIDs,
	}

	response, err := h.service.SubmitPollResponse(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, response)
}

// ListResponses godoc
// @Summary      Lists the poll responses of a room
// @Tags         poll
// @Produce      json
// @Param        id   path  int  true  "Room id"
// @Success      200
// @Failure      404
// @Router       /rooms/{id}/responses [get]
func (h *PollHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	roomID, err := roomIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	responses, err := h.service.ListResponses(r.Context(), roomID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, responses)
}
