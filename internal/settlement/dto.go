package settlement

import (
	"github.com/fkhayef/tripsplit/internal/display"
	"github.com/fkhayef/tripsplit/internal/settings"
)

// MemberTotal represents one member's normalized spend total
type MemberTotal struct {
	Name    string  `json:"name"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// TransferResponse represents one settlement transfer
type TransferResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// SummaryResponse represents the full settlement summary
type SummaryResponse struct {
	Totals                  []MemberTotal      `json:"totals"`
	TotalSpend              float64            `json:"total_spend"`
	TotalSpendDisplay       string             `json:"total_spend_display"`
	AveragePerPerson        float64            `json:"average_per_person"`
	AveragePerPersonDisplay string             `json:"average_per_person_display"`
	DisplayCurrency         string             `json:"display_currency"`
	Transfers               []TransferResponse `json:"transfers"`
}

// ToResponse converts a Summary to a SummaryResponse, rendering display
// strings in the currently selected display currency. Raw amounts stay in
// home units; the display strings are presentation only.
func (s *Summary) ToResponse(members []string, f *display.Formatter, cfg settings.Settings) *SummaryResponse {
	totals := make([]MemberTotal, len(members))
	for i, m := range members {
		totals[i] = MemberTotal{
			Name:    m,
			Amount:  s.Totals[m],
			Display: f.Format(s.Totals[m], cfg.DisplayCurrency, cfg.ExchangeRate),
		}
	}

	transfers := make([]TransferResponse, len(s.Transfers))
	for i, t := range s.Transfers {
		transfers[i] = TransferResponse{
			From:    t.From,
			To:      t.To,
			Amount:  t.Amount,
			Display: f.Format(t.Amount, cfg.DisplayCurrency, cfg.ExchangeRate),
		}
	}

	return &SummaryResponse{
		Totals:                  totals,
		TotalSpend:              s.TotalSpend,
		TotalSpendDisplay:       f.Format(s.TotalSpend, cfg.DisplayCurrency, cfg.ExchangeRate),
		AveragePerPerson:        s.AveragePerPerson,
		AveragePerPersonDisplay: f.Format(s.AveragePerPerson, cfg.DisplayCurrency, cfg.ExchangeRate),
		DisplayCurrency:         cfg.DisplayCurrency,
		Transfers:               transfers,
	}
}
