package currency

// Pair is the closed two-currency vocabulary for a trip. All internal
// computation is normalized to Home; amounts entered in Foreign convert at
// the exchange rate in effect when the record is created.
type Pair struct {
	Home    string
	Foreign string
}

// Valid reports whether code is one of the two supported currencies.
func (p Pair) Valid(code string) bool {
	return code == p.Home || code == p.Foreign
}

// Normalize converts an amount in the given currency into home units.
// The rate is home units per one foreign unit and must already be validated
// positive at the settings boundary; Normalize itself performs no checks.
func Normalize(amount float64, code string, p Pair, rate float64) float64 {
	if code == p.Foreign {
		return amount * rate
	}
	return amount
}
