package ledger

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/tripsplit/pkg/response"
)

// Handler handles HTTP requests for ledger operations
type Handler struct {
	service *Service
}

// NewHandler creates a new ledger handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/{id}", h.Delete)

	return r
}

// Create handles POST /expenses
// @Summary      Add an expense record
// @Description  Validate and append an expense; the amount is normalized to the home currency at the current exchange rate and frozen on the record
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense record"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	expense, err := h.service.AddExpense(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add expense")
		return
	}

	response.JSON(w, http.StatusCreated, expense.ToResponse())
}

// List handles GET /expenses
// @Summary      List expense records
// @Description  Get all expense records ordered by date
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	expenses := h.service.ListExpenses(r.Context())

	resp := make([]*ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = expenses[i].ToResponse()
	}

	response.JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /expenses/{id}
// @Summary      Remove an expense record
// @Description  Delete a record by ID; removing an unknown ID is a no-op
// @Tags         expenses
// @Produce      json
// @Param        id path string true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed := h.service.RemoveExpense(r.Context(), id)
	if !removed {
		// Tolerant deletion: an unknown ID leaves the ledger unchanged.
		response.JSON(w, http.StatusOK, map[string]string{"message": "Expense not found, ledger unchanged"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense removed successfully"})
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrUnknownPayer) ||
		errors.Is(err, ErrUnknownCategory) ||
		errors.Is(err, ErrUnknownCurrency)
}
