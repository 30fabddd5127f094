package fflogs

import (
	"context"
	"fmt"
	"time"
)

// Table is an opaque report table, passed through as decoded.
type Table map[string]interface{}

type Fight struct {
	ReportID string
	ID       int
	Boss     int
	Name     string
	Kill     bool

	Time FightTime

	// Roster is shared by every fight of the report. Do not modify.
	Roster *Roster

	// PageDelay is the pause GetEvents inserts between upstream calls.
	PageDelay time.Duration

	api API
}

// Tables fetches report/tables/{view} restricted to the fight window.
func (f *Fight) Tables(ctx context.Context, view string, params Params) (Table, error) {
	var t Table

	err := f.api.Get(
		ctx,
		fmt.Sprintf("report/tables/%s/%s", view, f.ReportID),
		params.with(f.Time.StartMS, f.Time.EndMS),
		&t,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (f *Fight) String() string {
	return fmt.Sprintf("%s#%d %s %s", f.ReportID, f.ID, f.Name, f.Time)
}
