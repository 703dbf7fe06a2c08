package http

import (
	"net/http"

	"github.com/KissBendeguz/SnackElf/internal/core/domain"
	"github.com/KissBendeguz/SnackElf/internal/core/ports"
)

type FoodHandler struct {
	service ports.FoodService
}

func NewFoodHandler(service ports.FoodService) *FoodHandler {
	return &FoodHandler{
		service: service,
	}
}

// SeedFoods godoc
// @Summary      Seeds the food catalog
// @Description  Inserts the default catalog. Repeated calls insert duplicates.
// @Tags         food
// @Produce      json
// @Success      201
// @Router       /food [post]
func (h *FoodHandler) SeedFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.service.SeedCatalog(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, foods)
}

// ListFoods godoc
// @Summary      Lists the food catalog
// @Tags         food
// @Produce      json
// @Param        category  query  string  false  "LIKED, DISLIKED or NEUTRAL"
// @Success      200
// @Failure      400
// @Failure      404
// @Router       /food [get]
func (h *FoodHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	var (
		foods []domain.FoodItem
		err   error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		foods, err = h.service.ListFoodsByCategory(r.Context(), category)
	} else {
		foods, err = h.service.ListFoods(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, foods)
}
