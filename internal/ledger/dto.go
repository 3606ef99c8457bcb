package ledger

// CreateExpenseRequest represents the request to add an expense record
type CreateExpenseRequest struct {
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Payer       string  `json:"payer" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required,min=1,max=255"`
}

// ExpenseResponse represents the response for an expense record
type ExpenseResponse struct {
	ID               string  `json:"id"`
	Date             string  `json:"date"`
	Payer            string  `json:"payer"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	Category         string  `json:"category"`
	Description      string  `json:"description"`
	NormalizedAmount float64 `json:"normalized_amount"`
	CreatedAt        string  `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:               e.ID,
		Date:             e.Date.Format("2006-01-02"),
		Payer:            e.Payer,
		Amount:           e.Amount,
		Currency:         e.Currency,
		Category:         e.Category,
		Description:      e.Description,
		NormalizedAmount: e.NormalizedAmount,
		CreatedAt:        e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
