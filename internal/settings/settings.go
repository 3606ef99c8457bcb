package settings

import (
	"errors"
	"math"
	"sync"

	"github.com/fkhayef/tripsplit/internal/currency"
)

// Common errors
var (
	ErrInvalidRate            = errors.New("exchange rate must be positive")
	ErrUnknownDisplayCurrency = errors.New("display currency must be one of the two supported currencies")
)

// Settings is a snapshot of the mutable trip configuration. It is passed
// explicitly into the normalizer and display formatter rather than read as
// ambient state.
type Settings struct {
	// ExchangeRate is home-currency units per one foreign-currency unit.
	ExchangeRate float64 `json:"exchange_rate"`

	// DisplayCurrency selects the currency used for rendered amounts.
	// It never affects stored normalized amounts.
	DisplayCurrency string `json:"display_currency"`
}

// Store holds the current settings. Updates are validated and rejected
// atomically, keeping the previous values on any error.
type Store struct {
	mu   sync.RWMutex
	cur  Settings
	pair currency.Pair
}

// NewStore creates a settings store with the given default rate, displaying
// the home currency initially.
func NewStore(defaultRate float64, pair currency.Pair) *Store {
	return &Store{
		cur:  Settings{ExchangeRate: defaultRate, DisplayCurrency: pair.Home},
		pair: pair,
	}
}

// Snapshot returns the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Update applies a partial settings change. A nil field leaves the current
// value untouched. Invalid values reject the whole update and keep the
// previous settings.
func (s *Store) Update(rate *float64, displayCurrency *string) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cur
	if rate != nil {
		if *rate <= 0 || math.IsNaN(*rate) || math.IsInf(*rate, 0) {
			return s.cur, ErrInvalidRate
		}
		next.ExchangeRate = *rate
	}
	if displayCurrency != nil {
		if !s.pair.Valid(*displayCurrency) {
			return s.cur, ErrUnknownDisplayCurrency
		}
		next.DisplayCurrency = *displayCurrency
	}

	s.cur = next
	return next, nil
}
