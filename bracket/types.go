package bracket

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quarterback/oregontennis/geo"
)

var (
	// ErrDataIntegrity wraps every structural failure found by New.
	ErrDataIntegrity = errors.New("bracket: data integrity violation")

	// ErrValidation marks malformed values: coordinates, seeds, rounds.
	ErrValidation = errors.New("bracket: validation failed")

	// ErrUnknownSchool indicates a team name without a matching School.
	ErrUnknownSchool = errors.New("bracket: unknown school")

	// ErrDuplicateSchool indicates two School entries with the same name.
	ErrDuplicateSchool = errors.New("bracket: duplicate school")

	// ErrUnknownRound indicates a round value outside the known ordering.
	ErrUnknownRound = errors.New("bracket: unknown round")

	// ErrInvalidSeeds indicates seeds that are not a permutation of 1..N,
	// or a team recorded with two different seeds.
	ErrInvalidSeeds = errors.New("bracket: seeds are not a valid permutation")

	// ErrRoundGap indicates a team whose bracket path skips a round or
	// starts later than its seed allows.
	ErrRoundGap = errors.New("bracket: non-monotonic bracket path")

	// ErrUnknownInstance indicates a (year, sport, division) with no games.
	ErrUnknownInstance = errors.New("bracket: unknown tournament instance")
)

// Round is a stage of a single-elimination bracket.
type Round int

const (
	FirstRound Round = iota + 1
	SecondRound
	Quarterfinals
	Semifinals
	Final
)

// Rounds lists every round in bracket order.
var Rounds = []Round{FirstRound, SecondRound, Quarterfinals, Semifinals, Final}

var roundNames = map[Round]string{
	FirstRound:    "First Round",
	SecondRound:   "Second Round",
	Quarterfinals: "Quarterfinals",
	Semifinals:    "Semifinals",
	Final:         "Final",
}

// Valid reports whether r is one of Rounds.
func (r Round) Valid() bool { return r >= FirstRound && r <= Final }

// String returns the display name, e.g. "Quarterfinals".
func (r Round) String() string {
	if n, ok := roundNames[r]; ok {
		return n
	}

	return fmt.Sprintf("Round(%d)", int(r))
}

// Short returns a compact label for table headers.
func (r Round) Short() string {
	switch r {
	case FirstRound:
		return "R1"
	case SecondRound:
		return "R2"
	case Quarterfinals:
		return "QF"
	case Semifinals:
		return "SF"
	case Final:
		return "F"
	}

	return r.String()
}

// ParseRound maps a round label to a Round. It accepts the display names
// and the aliases found in bracket sheets ("Round 1", "Quarterfinal",
// "Championship", "Finals", "QF", …), case-insensitively.
func ParseRound(s string) (Round, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	switch key {
	case "first round", "round 1", "r1", "1st round":
		return FirstRound, nil
	case "second round", "round 2", "r2", "2nd round":
		return SecondRound, nil
	case "quarterfinals", "quarterfinal", "qf", "round 3":
		return Quarterfinals, nil
	case "semifinals", "semifinal", "sf", "round 4":
		return Semifinals, nil
	case "final", "finals", "championship", "f":
		return Final, nil
	}

	return 0, fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownRound, s)
}

// MarshalText encodes the display name.
func (r Round) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRound, int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText decodes any label accepted by ParseRound.
func (r *Round) UnmarshalText(b []byte) error {
	v, err := ParseRound(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Sport names a playoff sport.
type Sport string

const (
	Baseball Sport = "baseball"
	Softball Sport = "softball"
	Tennis   Sport = "tennis"
	Soccer   Sport = "soccer"
)

// Division is a classification tier such as "6A" or "2A/1A".
type Division string

// InstanceKey identifies one tournament: all games of a (year, sport,
// division).
type InstanceKey struct {
	Year     int      `json:"year" yaml:"year"`
	Sport    Sport    `json:"sport" yaml:"sport"`
	Division Division `json:"division" yaml:"division"`
}

// String formats as "2025 baseball 6A".
func (k InstanceKey) String() string {
	return fmt.Sprintf("%d %s %s", k.Year, k.Sport, k.Division)
}

// Less orders keys by year, sport, then division.
func (k InstanceKey) Less(o InstanceKey) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Sport != o.Sport {
		return k.Sport < o.Sport
	}

	return k.Division < o.Division
}

// School is a participating institution. Location is nil when the
// coordinates are unknown; distances involving it are undefined.
type School struct {
	Name     string
	City     string
	Location *geo.Point
}

// Located reports whether s has coordinates.
func (s School) Located() bool { return s.Location != nil }

// Schools maps a school name to its record.
type Schools map[string]School

// Game is one recorded matchup. Winner is optional; when set it must equal
// TeamA or TeamB.
type Game struct {
	Year        int      `json:"year" yaml:"year"`
	Sport       Sport    `json:"sport" yaml:"sport"`
	Division    Division `json:"division" yaml:"division"`
	Round       Round    `json:"round" yaml:"round"`
	TeamA       string   `json:"team1" yaml:"team1"`
	TeamB       string   `json:"team2" yaml:"team2"`
	SeedA       int      `json:"team1_seed" yaml:"team1_seed"`
	SeedB       int      `json:"team2_seed" yaml:"team2_seed"`
	Winner      string   `json:"winner,omitempty" yaml:"winner,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	NeutralSite bool     `json:"neutral_site,omitempty" yaml:"neutral_site,omitempty"`
}

// Key returns the tournament instance of g.
func (g Game) Key() InstanceKey {
	return InstanceKey{Year: g.Year, Sport: g.Sport, Division: g.Division}
}

// Host returns the better-seeded side (lower seed number). Equal seeds
// fall back to TeamA.
func (g Game) Host() Participant {
	if g.SeedB < g.SeedA {
		return Participant{Team: g.TeamB, Seed: g.SeedB}
	}

	return Participant{Team: g.TeamA, Seed: g.SeedA}
}

// Visitor returns the side that is not Host.
func (g Game) Visitor() Participant {
	if g.SeedB < g.SeedA {
		return Participant{Team: g.TeamA, Seed: g.SeedA}
	}

	return Participant{Team: g.TeamB, Seed: g.SeedB}
}

// Loser returns the team that did not win, or "" when Winner is unset.
func (g Game) Loser() string {
	switch g.Winner {
	case g.TeamA:
		return g.TeamB
	case g.TeamB:
		return g.TeamA
	}

	return ""
}

// String formats as "Quarterfinals: (1) Jesuit vs (8) Sheldon".
func (g Game) String() string {
	return fmt.Sprintf("%s: (%d) %s vs (%d) %s", g.Round, g.SeedA, g.TeamA, g.SeedB, g.TeamB)
}

// Participant is a team with its seed in one instance.
type Participant struct {
	Team string `json:"team" yaml:"team"`
	Seed int    `json:"seed" yaml:"seed"`
}

// RecordError reports the game that failed validation.
// Index is the position of the game in the input slice, or -1 when the
// failure concerns a whole instance or a school entry.
type RecordError struct {
	Index    int
	Instance InstanceKey
	Game     Game
	Err      error
}

func (e *RecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bracket: %s: %v", e.Instance, e.Err)
	}

	return fmt.Sprintf("bracket: game #%d (%s, %s): %v", e.Index, e.Instance, e.Game, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
