// Package sim plays a match to completion with seeded random actions.
//
// The simulator exists for demo sessions: it records a plausible number of
// goals, cards, and penalty corners per quarter and then closes the quarter,
// repeating until the match finishes. The same seed always produces the same
// match.
package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/louisbranch/pitchside/internal/match/domain"
)

const (
	minActionsPerQuarter = 2
	maxActionsPerQuarter = 6
)

// Run plays out every remaining quarter of the match.
func Run(m *domain.Match, seed int64) error {
	if m == nil {
		return fmt.Errorf("match is required")
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	for !m.Finished() {
		actions := minActionsPerQuarter + rng.IntN(maxActionsPerQuarter-minActionsPerQuarter+1)
		for i := 0; i < actions; i++ {
			if err := recordAction(m, rng); err != nil {
				return fmt.Errorf("simulate action: %w", err)
			}
		}
		m.AdvanceQuarter()
	}
	return nil
}

func recordAction(m *domain.Match, rng *rand.Rand) error {
	side := domain.SideHome
	if rng.IntN(2) == 1 {
		side = domain.SideAway
	}

	// Penalty corners outnumber goals, goals outnumber cards.
	switch roll := rng.IntN(10); {
	case roll < 4:
		return m.PenaltyCornerFor(side)
	case roll < 7:
		return m.GoalFor(side)
	default:
		return m.CardFor(side, randomCardKind(rng))
	}
}

func randomCardKind(rng *rand.Rand) domain.CardKind {
	switch roll := rng.IntN(6); {
	case roll < 3:
		return domain.CardKindGreen
	case roll < 5:
		return domain.CardKindYellow
	default:
		return domain.CardKindRed
	}
}
