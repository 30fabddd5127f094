package fflogs

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "time/tzdata"

	"github.com/pkg/errors"
)

const (
	DefaultTimeZone  = "Asia/Tokyo"
	DefaultPageDelay = 1 * time.Second
)

type ReportOptions struct {
	// Location for wall clock times. nil means DefaultTimeZone.
	Location *time.Location

	OrphanPets OrphanPetPolicy

	// PageDelay is copied into every fight. Negative disables the pause, zero means DefaultPageDelay.
	PageDelay time.Duration
}

type Report struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time

	Fights []*Fight
	Roster *Roster
}

type reportFightsResponse struct {
	Title string `json:"title"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`

	Fights []struct {
		ID        int    `json:"id"`
		Boss      int    `json:"boss"`
		Name      string `json:"name"`
		Kill      bool   `json:"kill"`
		StartTime int64  `json:"start_time"`
		EndTime   int64  `json:"end_time"`
	} `json:"fights"`

	Friendlies   []Friendly    `json:"friendlies"`
	FriendlyPets []FriendlyPet `json:"friendlyPets"`
}

// CreateReport loads report/fights/{reportID} and assembles the report. Nothing is
// returned unless every fight was built.
func CreateReport(ctx context.Context, api API, reportID string, opts ReportOptions) (*Report, error) {
	loc := opts.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation(DefaultTimeZone)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	delay := opts.PageDelay
	switch {
	case delay == 0:
		delay = DefaultPageDelay
	case delay < 0:
		delay = 0
	}

	var resp reportFightsResponse
	err := api.Get(ctx, fmt.Sprintf("report/fights/%s", reportID), nil, &resp)
	if err != nil {
		return nil, err
	}

	roster, err := BuildRoster(resp.Friendlies, resp.FriendlyPets, opts.OrphanPets)
	if err != nil {
		return nil, errors.Wrapf(err, "report %s", reportID)
	}

	r := &Report{
		ID:     reportID,
		Title:  resp.Title,
		Start:  epochToTime(resp.Start, loc),
		End:    epochToTime(resp.End, loc),
		Fights: make([]*Fight, 0, len(resp.Fights)),
		Roster: roster,
	}

	for _, f := range resp.Fights {
		ft, err := newFightTime(resp.Start, f.StartTime, f.EndTime, loc)
		if err != nil {
			return nil, errors.Wrapf(err, "report %s fight %d", reportID, f.ID)
		}

		r.Fights = append(
			r.Fights,
			&Fight{
				ReportID:  reportID,
				ID:        f.ID,
				Boss:      f.Boss,
				Name:      f.Name,
				Kill:      f.Kill,
				Time:      ft,
				Roster:    roster,
				PageDelay: delay,
				api:       api,
			},
		)
	}

	log.Printf("report %s: %d fights, %d players\n", reportID, len(r.Fights), roster.Len())

	return r, nil
}

// Fight returns the fight with the upstream id.
func (r *Report) Fight(id int) (*Fight, bool) {
	for _, f := range r.Fights {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}
