package distribution

import (
	"sort"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// Scoring constants. priority_order is "lower is better", so subtracting it
// from the base turns both signals into "higher score is better" on one scale.
const (
	priorityScoreBase = 100
	bisNeedBonus      = 50
)

type candidate struct {
	player domain.Player
	score  int
	// priorityOrder is nil when the player has no explicit entry,
	// which ranks below any numbered entry on ties.
	priorityOrder *int
	neededForBiS  bool
}

func score(entry *domain.PriorityEntry, neededForBiS bool) int {
	total := 0
	if entry != nil {
		total = priorityScoreBase - entry.Order
	}
	if neededForBiS {
		total += bisNeedBonus
	}
	return total
}

// rank orders candidates best-first: score descending, then explicit
// priority_order ascending (an entry beats no entry), then player ID
// ascending. The final key makes the ordering total, so the same inputs
// always produce the same winner.
func rank(candidates []candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.score != b.score {
			return a.score > b.score
		}
		switch {
		case a.priorityOrder != nil && b.priorityOrder != nil:
			if *a.priorityOrder != *b.priorityOrder {
				return *a.priorityOrder < *b.priorityOrder
			}
		case a.priorityOrder != nil:
			return true
		case b.priorityOrder != nil:
			return false
		}
		return a.player.ID < b.player.ID
	})
}
