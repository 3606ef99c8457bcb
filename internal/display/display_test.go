package display

import (
	"testing"

	"github.com/fkhayef/tripsplit/internal/currency"
)

var testPair = currency.Pair{Home: "KRW", Foreign: "JPY"}

func TestNewRejectsUnknownCodes(t *testing.T) {
	if _, err := New(currency.Pair{Home: "KRW", Foreign: "NOPE"}); err == nil {
		t.Error("expected an error for a non-ISO currency code")
	}
	if _, err := New(testPair); err != nil {
		t.Errorf("New() error = %v", err)
	}
}

func TestConvert(t *testing.T) {
	f, err := New(testPair)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name   string
		amount float64
		target string
		rate   float64
		want   float64
	}{
		{name: "home target is identity", amount: 1000, target: "KRW", rate: 100, want: 1000},
		{name: "foreign target divides by rate", amount: 1000, target: "JPY", rate: 100, want: 10},
		{name: "fractional result", amount: 950, target: "JPY", rate: 100, want: 9.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Convert(tt.amount, tt.target, tt.rate); got != tt.want {
				t.Errorf("Convert(%v, %q, %v) = %v, want %v", tt.amount, tt.target, tt.rate, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	f, err := New(testPair)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	home := f.Format(1000, "KRW", 100)
	foreign := f.Format(1000, "JPY", 100)
	if home == "" || foreign == "" {
		t.Fatal("formatted amounts should not be empty")
	}
	if home == foreign {
		t.Errorf("home and foreign renderings should differ: %q vs %q", home, foreign)
	}

	// Unknown targets fall back to the home currency.
	if got := f.Format(1000, "USD", 100); got != home {
		t.Errorf("unknown target = %q, want home rendering %q", got, home)
	}
}
