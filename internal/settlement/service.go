package settlement

import (
	"context"

	"github.com/fkhayef/tripsplit/internal/ledger"
)

// Service recomputes the settlement state from the current ledger. It owns
// no state of its own: every call runs the full Normalizer -> Aggregator ->
// Solver pipeline, so identical ledgers always yield identical output.
type Service struct {
	repo    *ledger.Repository
	members []string
}

// NewService creates a new settlement service over the given ledger.
func NewService(repo *ledger.Repository, members []string) *Service {
	return &Service{repo: repo, members: members}
}

// Summarize computes per-member totals, the equal-split average and the
// transfer list from the current ledger snapshot.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	records := s.repo.List(ctx)

	totals, err := TotalsByPerson(records, s.members)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, m := range s.members {
		total += totals[m]
	}

	transfers, err := Solve(totals, s.members)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Totals:           totals,
		TotalSpend:       total,
		AveragePerPerson: total / float64(len(s.members)),
		Transfers:        transfers,
	}, nil
}
