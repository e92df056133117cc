package domain

// GearSetType distinguishes the two snapshots a player keeps
type GearSetType string

const (
	// GearSetStarting is the gear the player begins the tier with.
	GearSetStarting GearSetType = "starting"
	// GearSetBiS is the best-in-slot target the player is working toward.
	GearSetBiS GearSetType = "bis"
)

// IsValid reports whether the type is one of the known gear set types
func (t GearSetType) IsValid() bool {
	return t == GearSetStarting || t == GearSetBiS
}

// GearSet is a named snapshot of item references owned by one player.
// At most one item per slot; slots are not required to be fully populated.
// Sets are replaced wholesale, never patched.
type GearSet struct {
	ID       int         `json:"id"`
	PlayerID int         `json:"player_id"`
	Type     GearSetType `json:"set_type"`
	ItemIDs  []int       `json:"item_ids"`
}
