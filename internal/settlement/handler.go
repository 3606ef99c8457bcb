package settlement

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tripsplit/internal/display"
	"github.com/fkhayef/tripsplit/internal/settings"
	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service   *Service
	formatter *display.Formatter
	settings  *settings.Store
}

// NewHandler creates a new settlement handler
func NewHandler(service *Service, formatter *display.Formatter, st *settings.Store) *Handler {
	return &Handler{service: service, formatter: formatter, settings: st}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Get)

	return r
}

// Get handles GET /settlements
// @Summary      Get the settlement summary
// @Description  Recompute per-member totals, the equal-split average and the minimal transfer list from the current ledger
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SummaryResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /settlements [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoMembers) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute settlements")
		return
	}

	resp := summary.ToResponse(h.service.members, h.formatter, h.settings.Snapshot())
	response.JSON(w, http.StatusOK, resp)
}
