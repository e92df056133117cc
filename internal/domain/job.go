package domain

// JobRole groups jobs by their combat role
type JobRole string

const (
	RoleTank      JobRole = "tank"
	RoleHealer    JobRole = "healer"
	RoleMeleeDPS  JobRole = "melee_dps"
	RoleRangedDPS JobRole = "ranged_dps"
	RoleCasterDPS JobRole = "caster_dps"
)

// Job is a playable combat job. The catalog is seeded by migration and read-only at runtime.
type Job struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Role JobRole `json:"role"`
}
