package domain

// ItemSlot is the equipment slot an item occupies
type ItemSlot string

const (
	SlotWeapon   ItemSlot = "weapon"
	SlotHead     ItemSlot = "head"
	SlotBody     ItemSlot = "body"
	SlotHands    ItemSlot = "hands"
	SlotLegs     ItemSlot = "legs"
	SlotFeet     ItemSlot = "feet"
	SlotEarrings ItemSlot = "earrings"
	SlotNecklace ItemSlot = "necklace"
	SlotBracelet ItemSlot = "bracelet"
	SlotRing     ItemSlot = "ring"
)

// ItemSource is where an item drops from or is obtained
type ItemSource string

const (
	SourceNormalRaid         ItemSource = "normal_raid"
	SourceSavageRaid         ItemSource = "savage_raid"
	SourceTomestone          ItemSource = "tomestone"
	SourceAugmentedTomestone ItemSource = "augmented_tomestone"
	SourceCrafted            ItemSource = "crafted"
	SourceExtremeTrial       ItemSource = "extreme_trial"
)

// Item is a catalog entry. Items referenced by loot records are immutable.
type Item struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Slot   ItemSlot   `json:"slot"`
	Source ItemSource `json:"source"`
}

// ValidSlots lists every equipment slot in display order
func ValidSlots() []ItemSlot {
	return []ItemSlot{
		SlotWeapon, SlotHead, SlotBody, SlotHands, SlotLegs,
		SlotFeet, SlotEarrings, SlotNecklace, SlotBracelet, SlotRing,
	}
}

// IsValid reports whether the slot is one of the known equipment slots
func (s ItemSlot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotHead, SlotBody, SlotHands, SlotLegs,
		SlotFeet, SlotEarrings, SlotNecklace, SlotBracelet, SlotRing:
		return true
	}
	return false
}

// IsValid reports whether the source is one of the known item sources
func (s ItemSource) IsValid() bool {
	switch s {
	case SourceNormalRaid, SourceSavageRaid, SourceTomestone,
		SourceAugmentedTomestone, SourceCrafted, SourceExtremeTrial:
		return true
	}
	return false
}
