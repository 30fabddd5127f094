package ffxiv

type Role int

const (
	RoleUnknown Role = iota
	RoleTank
	RoleHealer
	RoleMelee
	RoleRanged
	RoleCaster
)

func (r Role) String() string {
	switch r {
	case RoleTank:
		return "tank"
	case RoleHealer:
		return "healer"
	case RoleMelee:
		return "melee"
	case RoleRanged:
		return "ranged"
	case RoleCaster:
		return "caster"
	}
	return "unknown"
}

// JobOrder is keyed by the job names the report friendlies carry in "type".
// The tens digit is the role.
var (
	JobOrder = map[string]int{
		"Paladin":    11,
		"Warrior":    12,
		"DarkKnight": 13,
		"Gunbreaker": 14,

		"WhiteMage":   20,
		"Scholar":     21,
		"Astrologian": 22,
		"Sage":        23,

		"Monk":    31,
		"Dragoon": 32,
		"Ninja":   33,
		"Samurai": 34,
		"Reaper":  35,

		"Bard":      40,
		"Machinist": 41,
		"Dancer":    42,

		"BlackMage": 50,
		"Summoner":  51,
		"RedMage":   52,
	}
)

// JobOrderOf returns the display order of job. Unknown jobs (LimitBreak, pets) sort last.
func JobOrderOf(job string) int {
	if o, ok := JobOrder[job]; ok {
		return o
	}
	return 100
}

func JobRole(job string) Role {
	o, ok := JobOrder[job]
	if !ok {
		return RoleUnknown
	}
	return Role(o / 10)
}
