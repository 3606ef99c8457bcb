package ledger

import (
	"context"
	"sync"
)

// Repository holds the expense records in memory. It exclusively owns the
// record collection; readers always get copies. There is no persistence
// across sessions.
type Repository struct {
	mu      sync.RWMutex
	records []Expense
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Add appends a record to the ledger.
func (r *Repository) Add(_ context.Context, e Expense) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, e)
}

// List returns a copy of all records in insertion order.
func (r *Repository) List(_ context.Context) []Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Expense, len(r.records))
	copy(out, r.records)
	return out
}

// Remove deletes the record with the given ID and reports whether it
// existed. Removing an unknown ID leaves the ledger unchanged.
func (r *Repository) Remove(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return true
		}
	}
	return false
}
