package distribution

import (
	"context"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// weeklyCapBlocked reports whether the player already received any item inside
// the current weekly window. The cap applies under every policy: at most one
// item per player per week, across all parties.
func (s *service) weeklyCapBlocked(ctx context.Context, playerID int, now time.Time) (bool, error) {
	count, err := s.loot.CountRecordsSince(ctx, playerID, WeekStart(now))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// rotationEligible applies the "eat and go" rule: a player who has received
// this item must wait until every current roster member has received it too.
// Once the received set covers the whole roster the cycle implicitly restarts.
// A roster of size zero or one is trivially complete, so repeats are always
// allowed there.
func rotationEligible(playerID int, received map[int]bool, roster []domain.Player) bool {
	if !received[playerID] {
		return true
	}
	for _, member := range roster {
		if !received[member.ID] {
			return false
		}
	}
	return true
}

// receivedSet collects the distinct players holding at least one record for
// the item in this party, restricted to the current roster. Records from
// players who have since left are reported separately so the caller can
// surface them without failing the resolution.
func receivedSet(records []domain.LootRecord, roster []domain.Player) (received map[int]bool, departed []int) {
	onRoster := make(map[int]bool, len(roster))
	for _, member := range roster {
		onRoster[member.ID] = true
	}

	received = map[int]bool{}
	seenDeparted := map[int]bool{}
	for _, rec := range records {
		if onRoster[rec.PlayerID] {
			received[rec.PlayerID] = true
			continue
		}
		if !seenDeparted[rec.PlayerID] {
			seenDeparted[rec.PlayerID] = true
			departed = append(departed, rec.PlayerID)
		}
	}
	return received, departed
}
