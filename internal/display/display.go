package display

import (
	"fmt"
	"math"

	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fkhayef/tripsplit/internal/currency"
)

// Formatter renders normalized home-currency amounts as localized strings
// in the configured display currency. It is presentation-only: nothing it
// produces feeds back into the data model.
type Formatter struct {
	pair    currency.Pair
	units   map[string]xcurrency.Unit
	printer *message.Printer
}

// New creates a formatter for the trip's currency pair. Both codes must be
// valid ISO 4217 currencies.
func New(pair currency.Pair) (*Formatter, error) {
	units := make(map[string]xcurrency.Unit, 2)
	for _, code := range []string{pair.Home, pair.Foreign} {
		unit, err := xcurrency.ParseISO(code)
		if err != nil {
			return nil, fmt.Errorf("unsupported currency code %q: %w", code, err)
		}
		units[code] = unit
	}
	return &Formatter{
		pair:    pair,
		units:   units,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Convert re-expresses a home-currency amount in the target currency at the
// given rate, for presentation only.
func (f *Formatter) Convert(homeAmount float64, target string, rate float64) float64 {
	if target == f.pair.Foreign {
		return homeAmount / rate
	}
	return homeAmount
}

// Format renders a home-currency amount in the target currency, rounded to
// the nearest whole unit.
func (f *Formatter) Format(homeAmount float64, target string, rate float64) string {
	unit, ok := f.units[target]
	if !ok {
		unit = f.units[f.pair.Home]
		target = f.pair.Home
	}
	value := math.Round(f.Convert(homeAmount, target, rate))
	return f.printer.Sprintf("%v", xcurrency.Symbol(unit.Amount(value)))
}
