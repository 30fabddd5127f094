package fflogs

import (
	"strconv"
	"strings"

	"fflogs_events/ffxiv"
)

const hitTypeCritical = 2

// Damage reads a damage-done event.
type Damage Event

func (d Damage) Amount() int64 {
	return Event(d).Int("amount")
}

func (d Damage) IsDirectHit() bool {
	return Event(d).Bool("multistrike")
}

func (d Damage) IsCritical() bool {
	return Event(d).Int("hitType") == hitTypeCritical
}

// Buffs returns the aura ids active on the hit. Malformed ids are skipped.
func (d Damage) Buffs() []int {
	s, _ := d["buffs"].(string)

	var buffs []int
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		buffs = append(buffs, id)
	}
	return buffs
}

func (d Damage) CritSynergy() float64 {
	return ffxiv.Synergy(d.Buffs(), ffxiv.AuraCritical)
}

func (d Damage) DirectHitSynergy() float64 {
	return ffxiv.Synergy(d.Buffs(), ffxiv.AuraDirectHit)
}
