package domain

// PartyDistributionCount is the total number of items a party has distributed
type PartyDistributionCount struct {
	PartyName  string `json:"party_name"`
	TotalItems int    `json:"total_items"`
}

// PlayerDistributionCount is the total number of items a player has received
type PlayerDistributionCount struct {
	Nickname   string `json:"nickname"`
	TotalItems int    `json:"total_items"`
}

// SlotDistributionCount groups distributed items by slot and source
type SlotDistributionCount struct {
	Slot       ItemSlot   `json:"slot"`
	Source     ItemSource `json:"source"`
	TotalItems int        `json:"total_items"`
}

// WeeklyDistributionCount is a player's item count inside the current weekly window
type WeeklyDistributionCount struct {
	Nickname    string `json:"nickname"`
	WeeklyItems int    `json:"weekly_items"`
}
