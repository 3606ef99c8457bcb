package settlement

// Transfer is a directed payment from a net debtor to a net creditor,
// denominated in whole home-currency units.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// Summary is the full settlement state derived from the current ledger.
// It is recomputed from scratch on every request; nothing here is stored.
type Summary struct {
	Totals           map[string]float64
	TotalSpend       float64
	AveragePerPerson float64
	Transfers        []Transfer
}
