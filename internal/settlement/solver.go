package settlement

import (
	"errors"
	"math"
	"sort"

	"github.com/fkhayef/tripsplit/internal/ledger"
)

// ErrNoMembers is returned when settlement math is attempted with an empty
// participant set; the average would divide by zero.
var ErrNoMembers = errors.New("at least one trip member is required")

// settleEpsilon is the residual magnitude below which a balance counts as
// settled. One whole home-currency unit absorbs the rounding noise that
// transfer emission leaves behind and keeps the matching loop finite.
const settleEpsilon = 1.0

// TotalsByPerson sums the frozen normalized amounts per payer. Every member
// of the closed participant set is keyed, so members with no expenses map
// to zero.
func TotalsByPerson(records []ledger.Expense, members []string) (map[string]float64, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	totals := make(map[string]float64, len(members))
	for _, m := range members {
		totals[m] = 0
	}
	for _, rec := range records {
		totals[rec.Payer] += rec.NormalizedAmount
	}
	return totals, nil
}

type account struct {
	name    string
	balance float64
}

// Solve computes each member's balance relative to the equal-split average
// and emits a transfer list via greedy largest-to-largest matching.
//
// balance(P) = averagePerPerson - totals[P]. Members with positive balance
// are net creditors and receive; members with negative balance are net
// debtors and send. The largest remaining debt is repeatedly matched with
// the largest remaining credit; transfer amounts are rounded to whole home
// units at emission and the rounding is not redistributed afterward.
//
// Ties in balance magnitude are broken by the order of the fixed member
// list (stable sort), which fixes the pairing deterministically.
func Solve(totals map[string]float64, members []string) ([]Transfer, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	var total float64
	for _, m := range members {
		total += totals[m]
	}
	average := total / float64(len(members))

	var creditors, debtors []account
	for _, m := range members {
		balance := average - totals[m]
		if balance > 0 {
			creditors = append(creditors, account{name: m, balance: balance})
		} else if balance < 0 {
			debtors = append(debtors, account{name: m, balance: balance})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].balance > creditors[j].balance
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].balance < debtors[j].balance // most negative first
	})

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := math.Min(creditor.balance, -debtor.balance)
		if amount > 0 {
			transfers = append(transfers, Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: math.Round(amount),
			})
		}

		// Residuals keep the unrounded amount so the matching stays exact.
		debtor.balance += amount
		creditor.balance -= amount

		if math.Abs(debtor.balance) < settleEpsilon {
			i++
		}
		if math.Abs(creditor.balance) < settleEpsilon {
			j++
		}
	}

	return transfers, nil
}
