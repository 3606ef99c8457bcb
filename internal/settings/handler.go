package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for settings operations
type Handler struct {
	store *Store
}

// NewHandler creates a new settings handler
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the router for settings endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Put("/", h.Update)

	return r
}

// Get handles GET /settings
// @Summary      Get current settings
// @Description  Get the exchange rate and display currency
// @Tags         settings
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SettingsResponse}
// @Router       /settings [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.store.Snapshot().ToResponse())
}

// Update handles PUT /settings
// @Summary      Update settings
// @Description  Change the exchange rate or display currency; an invalid value rejects the update and keeps the previous settings. Rate changes affect only future records' normalization, never stored amounts
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "Settings change"
// @Success      200 {object} response.APIResponse{data=SettingsResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settings [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	updated, err := h.store.Update(req.ExchangeRate, req.DisplayCurrency)
	if err != nil {
		if errors.Is(err, ErrInvalidRate) || errors.Is(err, ErrUnknownDisplayCurrency) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update settings")
		return
	}

	response.JSON(w, http.StatusOK, updated.ToResponse())
}
