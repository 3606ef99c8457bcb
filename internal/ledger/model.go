package ledger

import "time"

// Expense represents a single trip expense record. Records are immutable
// once created and removable by ID.
type Expense struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"` // calendar date, display ordering only
	Payer       string    `json:"payer"`
	Amount      float64   `json:"amount"`   // in the record's own currency
	Currency    string    `json:"currency"` // home or foreign code
	Category    string    `json:"category"` // descriptive only, unused by settlement math
	Description string    `json:"description"`

	// NormalizedAmount is Amount converted into home units at the exchange
	// rate in effect when the record was created. It is frozen: later rate
	// changes never recompute it.
	NormalizedAmount float64 `json:"normalized_amount"`

	CreatedAt time.Time `json:"created_at"`
}
