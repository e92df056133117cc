package domain

// DistributionPolicy selects how a party awards dropped items
type DistributionPolicy string

const (
	// PolicyPriority awards by explicit priority ranking plus gear need.
	PolicyPriority DistributionPolicy = "priority"
	// PolicyRotation ("eat and go") additionally forbids repeats of the same
	// item until every current roster member has received it once.
	PolicyRotation DistributionPolicy = "rotation"
)

// IsValid reports whether the policy is one of the known distribution policies
func (p DistributionPolicy) IsValid() bool {
	return p == PolicyPriority || p == PolicyRotation
}

// RaidParty owns a roster of players and a single active distribution policy
type RaidParty struct {
	ID     int                `json:"id"`
	Name   string             `json:"name"`
	Policy DistributionPolicy `json:"policy"`
}

// Player is a character on exactly one party roster. The character nickname
// is unique within the party. Players are never mutated by the decision engine.
type Player struct {
	ID       int    `json:"id"`
	UserID   string `json:"user_id"`
	JobID    int    `json:"job_id"`
	PartyID  int    `json:"party_id"`
	Nickname string `json:"nickname"`
}
