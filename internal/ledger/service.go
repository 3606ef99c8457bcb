package ledger

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fkhayef/tripsplit/internal/currency"
	"github.com/fkhayef/tripsplit/internal/settings"
)

// Common errors
var (
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrUnknownPayer     = errors.New("payer must be one of the trip members")
	ErrUnknownCategory  = errors.New("category must be one of the known categories")
	ErrUnknownCurrency  = errors.New("currency must be one of the two supported currencies")
)

// Service handles ledger business logic. Validation happens here; a record
// that fails validation is never constructed and the ledger stays unchanged.
type Service struct {
	repo       *Repository
	members    []string
	categories []string
	pair       currency.Pair
	settings   *settings.Store
}

// NewService creates a new ledger service with the closed member and
// category vocabularies and the settings store providing the current
// exchange rate at record-creation time.
func NewService(repo *Repository, members, categories []string, pair currency.Pair, st *settings.Store) *Service {
	return &Service{
		repo:       repo,
		members:    members,
		categories: categories,
		pair:       pair,
		settings:   st,
	}
}

// AddExpense validates the request, normalizes the amount at the current
// exchange rate and appends the record to the ledger.
func (s *Service) AddExpense(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}
	if !contains(s.members, req.Payer) {
		return nil, ErrUnknownPayer
	}
	if !contains(s.categories, req.Category) {
		return nil, ErrUnknownCategory
	}
	if !s.pair.Valid(req.Currency) {
		return nil, ErrUnknownCurrency
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	// The rate is read once here; the normalized amount is frozen on the
	// record and later rate changes never touch it.
	rate := s.settings.Snapshot().ExchangeRate

	e := Expense{
		ID:               uuid.NewString(),
		Date:             date,
		Payer:            req.Payer,
		Amount:           req.Amount,
		Currency:         req.Currency,
		Category:         req.Category,
		Description:      strings.TrimSpace(req.Description),
		NormalizedAmount: currency.Normalize(req.Amount, req.Currency, s.pair, rate),
		CreatedAt:        time.Now().UTC(),
	}
	s.repo.Add(ctx, e)
	return &e, nil
}

// ListExpenses returns all records ordered by date, oldest first. Records
// sharing a date keep insertion order.
func (s *Service) ListExpenses(ctx context.Context) []Expense {
	records := s.repo.List(ctx)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records
}

// RemoveExpense deletes a record by ID. A missing ID is a no-op, not an
// error.
func (s *Service) RemoveExpense(ctx context.Context, id string) bool {
	return s.repo.Remove(ctx, id)
}

// Members returns the closed participant list.
func (s *Service) Members() []string {
	return append([]string(nil), s.members...)
}

// Categories returns the closed category list.
func (s *Service) Categories() []string {
	return append([]string(nil), s.categories...)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
