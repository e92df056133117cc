package domain

import "time"

// RaidSchedule is a party's raiding period. EndDate is optional and left nil
// for open-ended farming periods.
type RaidSchedule struct {
	ID          int        `json:"id"`
	PartyID     int        `json:"party_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
}
