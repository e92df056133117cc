package distribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haneul-dev/raidledger/internal/domain"
)

func roster(ids ...int) []domain.Player {
	out := make([]domain.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Player{ID: id, PartyID: 1})
	}
	return out
}

func TestRotationEligible(t *testing.T) {
	full := roster(1, 2, 3, 4)

	tests := []struct {
		name     string
		playerID int
		received map[int]bool
		roster   []domain.Player
		want     bool
	}{
		{
			name:     "never received",
			playerID: 1,
			received: map[int]bool{2: true},
			roster:   full,
			want:     true,
		},
		{
			name:     "received but cycle incomplete",
			playerID: 1,
			received: map[int]bool{1: true, 2: true},
			roster:   full,
			want:     false,
		},
		{
			name:     "received and cycle complete",
			playerID: 1,
			received: map[int]bool{1: true, 2: true, 3: true, 4: true},
			roster:   full,
			want:     true,
		},
		{
			name:     "last player to complete the cycle",
			playerID: 4,
			received: map[int]bool{1: true, 2: true, 3: true},
			roster:   full,
			want:     true,
		},
		{
			name:     "solo roster always eligible",
			playerID: 1,
			received: map[int]bool{1: true},
			roster:   roster(1),
			want:     true,
		},
		{
			name:     "empty received set",
			playerID: 3,
			received: map[int]bool{},
			roster:   full,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rotationEligible(tt.playerID, tt.received, tt.roster)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReceivedSet(t *testing.T) {
	now := time.Now()
	members := roster(1, 2, 3)
	records := []domain.LootRecord{
		{PlayerID: 1, ItemID: 10, PartyID: 1, DistributedAt: now},
		{PlayerID: 1, ItemID: 10, PartyID: 1, DistributedAt: now}, // duplicate award
		{PlayerID: 2, ItemID: 10, PartyID: 1, DistributedAt: now},
		{PlayerID: 99, ItemID: 10, PartyID: 1, DistributedAt: now}, // left the party
		{PlayerID: 99, ItemID: 10, PartyID: 1, DistributedAt: now},
	}

	received, departed := receivedSet(records, members)

	assert.Equal(t, map[int]bool{1: true, 2: true}, received)
	assert.Equal(t, []int{99}, departed, "departed players reported once")
}

func TestReceivedSetEmptyLedger(t *testing.T) {
	received, departed := receivedSet(nil, roster(1, 2))
	assert.Empty(t, received)
	assert.Empty(t, departed)
}

// A departed player's records must not block the remaining roster: the cycle
// closes over current members only.
func TestRotationIgnoresDepartedPlayers(t *testing.T) {
	members := roster(1, 2)
	records := []domain.LootRecord{
		{PlayerID: 1, ItemID: 10, PartyID: 1},
		{PlayerID: 2, ItemID: 10, PartyID: 1},
		{PlayerID: 50, ItemID: 10, PartyID: 1}, // departed, never completed
	}

	received, _ := receivedSet(records, members)
	assert.True(t, rotationEligible(1, received, members))
	assert.True(t, rotationEligible(2, received, members))
}
