package fflogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDamage(t *testing.T) {
	var e Event
	err := json.UnmarshalFromString(
		`{"timestamp":1000,"type":"damage","amount":12345,"hitType":2,"multistrike":true,"buffs":"1000786.1001221.1000141.1000049."}`,
		&e,
	)
	assert.NoError(t, err)

	d := Damage(e)
	assert.Equal(t, int64(12345), d.Amount())
	assert.True(t, d.IsCritical())
	assert.True(t, d.IsDirectHit())
	assert.Equal(t, []int{1000786, 1001221, 1000141, 1000049}, d.Buffs())
	assert.InDelta(t, 0.2, d.CritSynergy(), 1e-9)
	assert.InDelta(t, 0.2, d.DirectHitSynergy(), 1e-9)
}

func TestDamageWithoutBuffs(t *testing.T) {
	d := Damage{"amount": 10, "hitType": 1}

	assert.False(t, d.IsCritical())
	assert.False(t, d.IsDirectHit())
	assert.Empty(t, d.Buffs())
	assert.Equal(t, 0.0, d.CritSynergy())
	assert.Equal(t, 0.0, d.DirectHitSynergy())
}

func TestDamageSkipsMalformedBuffs(t *testing.T) {
	d := Damage{"buffs": "1000141..abc.7"}

	assert.Equal(t, []int{1000141, 7}, d.Buffs())
	assert.InDelta(t, 0.2, d.DirectHitSynergy(), 1e-9)
	assert.Equal(t, 0.0, d.CritSynergy())
}

func TestDamageRepeatedBuffCountsOnce(t *testing.T) {
	d := Damage{"buffs": "1000141.1000141.1000786.1000786."}

	assert.InDelta(t, 0.2, d.DirectHitSynergy(), 1e-9)
	assert.InDelta(t, 0.1, d.CritSynergy(), 1e-9)
}
