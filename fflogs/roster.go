package fflogs

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"strconv"

	"fflogs_events/ffxiv"

	"github.com/pkg/errors"
)

// Friendly is one entry of the report's friendlies list.
type Friendly struct {
	ID     int      `json:"id"`
	GUID   actorKey `json:"guid"`
	Name   string   `json:"name"`
	Job    string   `json:"type"`
	Server string   `json:"server"`
}

// FriendlyPet is one entry of the report's friendlyPets list.
type FriendlyPet struct {
	ID       int      `json:"id"`
	GUID     actorKey `json:"guid"`
	Name     string   `json:"name"`
	PetOwner int      `json:"petOwner"`
}

// actorKey accepts both numeric and string guids.
type actorKey string

func (k *actorKey) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*k = actorKey(s)
		return nil
	}
	if string(b) == "null" {
		*k = ""
		return nil
	}
	*k = actorKey(b)
	return nil
}

// Player is one roster entry. Pets is never nil.
type Player struct {
	ID     int
	GUID   string
	Name   string
	Job    string
	Server string
	Pets   []string
}

func (p Player) clone() Player {
	p.Pets = append(make([]string, 0, len(p.Pets)), p.Pets...)
	return p
}

type OrphanPetPolicy int

const (
	// OrphanPetFail fails roster building with a *DataConsistencyError.
	OrphanPetFail OrphanPetPolicy = iota
	// OrphanPetDrop logs the pet and leaves it out.
	OrphanPetDrop
)

func ParseOrphanPetPolicy(s string) (OrphanPetPolicy, error) {
	switch s {
	case "", "fail":
		return OrphanPetFail, nil
	case "drop":
		return OrphanPetDrop, nil
	}
	return OrphanPetFail, errors.Errorf("fflogs: unknown orphan pet policy %q", s)
}

// Roster holds the players of one report. It is not modified after BuildRoster returns
// and is shared by every fight of the report.
type Roster struct {
	players []Player
}

func BuildRoster(friendlies []Friendly, pets []FriendlyPet, policy OrphanPetPolicy) (*Roster, error) {
	r := &Roster{
		players: make([]Player, len(friendlies)),
	}
	index := make(map[int]int, len(friendlies))

	for i, f := range friendlies {
		r.players[i] = Player{
			ID:     f.ID,
			GUID:   string(f.GUID),
			Name:   f.Name,
			Job:    f.Job,
			Server: f.Server,
			Pets:   make([]string, 0),
		}
		if _, ok := index[f.ID]; !ok {
			index[f.ID] = i
		}
	}

	for _, pet := range pets {
		i, ok := index[pet.PetOwner]
		if !ok {
			if policy == OrphanPetDrop {
				log.Printf("roster: dropping pet %s (%s), owner %d unknown\n", pet.GUID, pet.Name, pet.PetOwner)
				continue
			}
			return nil, &DataConsistencyError{
				PetGUID: string(pet.GUID),
				OwnerID: pet.PetOwner,
			}
		}

		r.players[i].Pets = append(r.players[i].Pets, string(pet.GUID))
	}

	return r, nil
}

func (r *Roster) Len() int {
	return len(r.players)
}

// Players returns a copy of the roster in upstream order.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		out[i] = p.clone()
	}
	return out
}

// SortedByJob returns a copy ordered by job table order, then name.
func (r *Roster) SortedByJob() []Player {
	out := r.Players()
	sort.SliceStable(
		out,
		func(i, k int) bool {
			a, b := ffxiv.JobOrderOf(out[i].Job), ffxiv.JobOrderOf(out[k].Job)
			if a != b {
				return a < b
			}
			return out[i].Name < out[k].Name
		},
	)
	return out
}

// ByID returns the first player with id.
func (r *Roster) ByID(id int) (Player, bool) {
	return r.first(func(p *Player) bool { return p.ID == id })
}

// ByJob returns the first player playing job.
func (r *Roster) ByJob(job string) (Player, bool) {
	return r.first(func(p *Player) bool { return p.Job == job })
}

// ByName returns the first player called name.
func (r *Roster) ByName(name string) (Player, bool) {
	return r.first(func(p *Player) bool { return p.Name == name })
}

// OwnerOf returns the player owning the pet guid.
func (r *Roster) OwnerOf(petGUID string) (Player, bool) {
	return r.first(func(p *Player) bool {
		for _, g := range p.Pets {
			if g == petGUID {
				return true
			}
		}
		return false
	})
}

func (r *Roster) first(match func(p *Player) bool) (Player, bool) {
	for i := range r.players {
		if match(&r.players[i]) {
			return r.players[i].clone(), true
		}
	}
	return Player{}, false
}

////////////////////////////////////////////////////////////////////////////////////////////////////

// Query selects players by job and/or name. Empty fields are not compared.
type Query struct {
	Job  string
	Name string
}

func (q Query) String() string {
	switch {
	case q.Job != "" && q.Name != "":
		return fmt.Sprintf("job=%q name=%q", q.Job, q.Name)
	case q.Job != "":
		return fmt.Sprintf("job=%q", q.Job)
	default:
		return fmt.Sprintf("name=%q", q.Name)
	}
}

func (q Query) match(p *Player) bool {
	if q.Job != "" && p.Job != q.Job {
		return false
	}
	if q.Name != "" && p.Name != q.Name {
		return false
	}
	return true
}

type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchOne
	MatchAmbiguous
)

func (k MatchKind) String() string {
	switch k {
	case MatchNone:
		return "none"
	case MatchOne:
		return "one"
	case MatchAmbiguous:
		return "ambiguous"
	}
	return "unknown"
}

// SearchResult is the outcome of Roster.Search. Player is set only for MatchOne.
type SearchResult struct {
	Kind       MatchKind
	Player     *Player
	Candidates int

	query Query
}

// Err converts the result to ErrPlayerNotFound, *AmbiguousMatchError or nil.
func (sr SearchResult) Err() error {
	switch sr.Kind {
	case MatchNone:
		return ErrPlayerNotFound
	case MatchAmbiguous:
		return &AmbiguousMatchError{
			Query:      sr.query,
			Candidates: sr.Candidates,
		}
	}
	return nil
}

// Search returns the single player matching q. Two or more matches give MatchAmbiguous
// without a player. An empty query is ErrEmptyQuery.
func (r *Roster) Search(q Query) (SearchResult, error) {
	if q.Job == "" && q.Name == "" {
		return SearchResult{}, ErrEmptyQuery
	}

	sr := SearchResult{
		query: q,
	}

	var found *Player
	for i := range r.players {
		if q.match(&r.players[i]) {
			sr.Candidates++
			if found == nil {
				found = &r.players[i]
			}
		}
	}

	switch sr.Candidates {
	case 0:
		sr.Kind = MatchNone
	case 1:
		p := found.clone()
		sr.Kind = MatchOne
		sr.Player = &p
	default:
		sr.Kind = MatchAmbiguous
	}

	return sr, nil
}

// Find is Search folded into a single error return.
func (r *Roster) Find(q Query) (Player, error) {
	sr, err := r.Search(q)
	if err != nil {
		return Player{}, err
	}
	if err := sr.Err(); err != nil {
		return Player{}, err
	}
	return *sr.Player, nil
}
