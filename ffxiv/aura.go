package ffxiv

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/dimchansky/utfbom"
	"github.com/pkg/errors"
)

type AuraKind string

const (
	AuraCritical  AuraKind = "crit"
	AuraDirectHit AuraKind = "dh"
)

type AuraData struct {
	ID    int
	Name  string
	Kind  AuraKind
	Bonus float64
}

var (
	//go:embed auras.csv
	aurasCSV []byte

	AuraDataMap = make(map[int]AuraData)
)

func init() {
	auras, err := LoadAuras(bytes.NewReader(aurasCSV))
	if err != nil {
		panic(err)
	}

	for _, a := range auras {
		AuraDataMap[a.ID] = a
	}
}

// LoadAuras reads id,name,kind,bonus rows. The header row and a leading BOM are skipped.
func LoadAuras(r io.Reader) ([]AuraData, error) {
	sr, _ := utfbom.Skip(r)

	cr := csv.NewReader(sr)
	cr.FieldsPerRecord = 4

	var auras []AuraData
	header := true
	for {
		d, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if header {
			header = false
			continue
		}

		id, err := strconv.Atoi(d[0])
		if err != nil {
			return nil, errors.Wrapf(err, "aura id %q", d[0])
		}
		bonus, err := strconv.ParseFloat(d[3], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "aura %d bonus %q", id, d[3])
		}

		auras = append(
			auras,
			AuraData{
				ID:    id,
				Name:  d[1],
				Kind:  AuraKind(d[2]),
				Bonus: bonus,
			},
		)
	}

	return auras, nil
}

// Synergy sums the bonus of every distinct buff of kind. An aura listed twice counts once.
// Unknown ids contribute nothing.
func Synergy(buffs []int, kind AuraKind) float64 {
	seen := make(map[int]struct{}, len(buffs))

	sum := 0.0
	for _, id := range buffs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		if a, ok := AuraDataMap[id]; ok && a.Kind == kind {
			sum += a.Bonus
		}
	}
	return sum
}
