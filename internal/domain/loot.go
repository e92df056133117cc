package domain

import "time"

// LootRecord is an immutable fact in the append-only distribution ledger.
// Records are only ever created; eligibility decisions are recomputed from
// the ledger on every resolution.
type LootRecord struct {
	ID            string             `json:"id"`
	PlayerID      int                `json:"player_id"`
	ItemID        int                `json:"item_id"`
	PartyID       int                `json:"party_id"`
	DistributedAt time.Time          `json:"distributed_at"`
	Policy        DistributionPolicy `json:"policy"`
}

// LootFilter narrows a ledger read. Nil fields are ignored.
type LootFilter struct {
	PlayerID *int
	ItemID   *int
	PartyID  *int
	Since    *time.Time
}

// PriorityEntry is an explicit ranking for (player, item, party).
// Lower Order means higher priority; a missing entry is lowest priority.
type PriorityEntry struct {
	ID       int `json:"id"`
	PlayerID int `json:"player_id"`
	ItemID   int `json:"item_id"`
	PartyID  int `json:"party_id"`
	Order    int `json:"priority_order"`
}

// Recommendation is the decision engine's output for one dropped item
type Recommendation struct {
	PlayerID     int    `json:"player_id"`
	Nickname     string `json:"nickname"`
	Score        int    `json:"score"`
	NeededForBiS bool   `json:"needed_for_bis"`
}
