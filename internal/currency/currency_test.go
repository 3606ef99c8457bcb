package currency

import "testing"

func TestNormalize(t *testing.T) {
	pair := Pair{Home: "KRW", Foreign: "JPY"}

	tests := []struct {
		name   string
		amount float64
		code   string
		rate   float64
		want   float64
	}{
		{name: "home amounts pass through", amount: 400, code: "KRW", rate: 100, want: 400},
		{name: "foreign amounts convert at the rate", amount: 10, code: "JPY", rate: 100, want: 1000},
		{name: "fractional rate", amount: 10, code: "JPY", rate: 9.5, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.amount, tt.code, pair, tt.rate); got != tt.want {
				t.Errorf("Normalize(%v, %q, %v) = %v, want %v", tt.amount, tt.code, tt.rate, got, tt.want)
			}
		})
	}
}

func TestPairValid(t *testing.T) {
	pair := Pair{Home: "KRW", Foreign: "JPY"}

	if !pair.Valid("KRW") || !pair.Valid("JPY") {
		t.Error("pair currencies should be valid")
	}
	if pair.Valid("USD") {
		t.Error("USD is outside the closed currency set")
	}
	if pair.Valid("") {
		t.Error("empty code should not be valid")
	}
}
