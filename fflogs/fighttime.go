package fflogs

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// FightTime is the window of one fight. StartMS/EndMS are offsets inside the report,
// Start/End are the same bounds on the wall clock.
type FightTime struct {
	StartMS int64
	EndMS   int64

	Start time.Time
	End   time.Time
}

func newFightTime(reportStart int64, startMS, endMS int64, loc *time.Location) (FightTime, error) {
	if endMS < startMS {
		return FightTime{}, errors.Errorf("fflogs: fight ends at %d before it starts at %d", endMS, startMS)
	}

	return FightTime{
		StartMS: startMS,
		EndMS:   endMS,
		Start:   epochToTime(reportStart+startMS, loc),
		End:     epochToTime(reportStart+endMS, loc),
	}, nil
}

func (ft FightTime) DurationMS() int64 {
	return ft.EndMS - ft.StartMS
}

func (ft FightTime) Duration() time.Duration {
	return time.Duration(ft.DurationMS()) * time.Millisecond
}

func (ft FightTime) StartSeconds() float64 {
	return float64(ft.StartMS) / 1000
}

func (ft FightTime) EndSeconds() float64 {
	return float64(ft.EndMS) / 1000
}

func (ft FightTime) DurationSeconds() float64 {
	return ft.EndSeconds() - ft.StartSeconds()
}

// Contains reports whether the report offset ms falls inside the fight.
func (ft FightTime) Contains(ms int64) bool {
	return ft.StartMS <= ms && ms <= ft.EndMS
}

func (ft FightTime) String() string {
	d := ft.DurationMS() / 1000
	return fmt.Sprintf("%s (%d:%02d)", ft.Start.Format("2006-01-02 15:04:05"), d/60, d%60)
}

// epochToTime converts epoch milliseconds to loc.
func epochToTime(ms int64, loc *time.Location) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).In(loc)
}
