package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
)

var (
	leadingSeed  = regexp.MustCompile(`^[#(\[]?(\d+)[)\].]?\s*(.+)$`)
	trailingSeed = regexp.MustCompile(`^(.+?)\s*[#(\[](\d+)[)\]]?$`)
)

// neutralKeywords mark venues that belong to neither team.
var neutralKeywords = []string{
	"university", "college", "civic", "stadium", "state",
	"volcanoes", "pk park", "jane sanders", "hillsboro hops",
}

// ParseTeamSeed splits a team cell such as "(1) Lincoln", "#4 Bend",
// "2. Summit" or "Sheldon (2)" into name and seed. ok is false when the
// cell carries no seed; name is then the trimmed cell.
func ParseTeamSeed(cell string) (name string, seed int, ok bool) {
	cell = strings.TrimSpace(cell)
	if m := leadingSeed.FindStringSubmatch(cell); m != nil {
		if s, err := strconv.Atoi(m[1]); err == nil {
			return strings.TrimSpace(m[2]), s, true
		}
	}
	if m := trailingSeed.FindStringSubmatch(cell); m != nil {
		if s, err := strconv.Atoi(m[2]); err == nil {
			return strings.TrimSpace(m[1]), s, true
		}
	}

	return cell, 0, false
}

// DetectNeutralSite guesses whether location is neutral ground for the two
// teams: venue keywords say yes; a location naming either team or its
// home city says no; an empty location says no.
func DetectNeutralSite(location, team1, team2 string, schools bracket.Schools) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return false
	}
	for _, kw := range neutralKeywords {
		if strings.Contains(loc, kw) {
			return true
		}
	}
	for _, team := range [2]string{team1, team2} {
		if strings.Contains(loc, strings.ToLower(team)) {
			return false
		}
		if sc, ok := schools.Resolve(team); ok && sc.City != "" && strings.Contains(loc, strings.ToLower(sc.City)) {
			return false
		}
	}

	return true
}

// Game converts the record. schools is used only to detect neutral sites.
func (r GameRecord) Game(schools bracket.Schools) (bracket.Game, error) {
	round, err := bracket.ParseRound(r.Round)
	if err != nil {
		return bracket.Game{}, err
	}
	team1, seed1, err := teamSeed(r.Team1, r.Team1Seed)
	if err != nil {
		return bracket.Game{}, err
	}
	team2, seed2, err := teamSeed(r.Team2, r.Team2Seed)
	if err != nil {
		return bracket.Game{}, err
	}
	winner := ""
	if strings.TrimSpace(r.Winner) != "" {
		winner, _, _ = ParseTeamSeed(r.Winner)
	}
	neutral := false
	if r.NeutralSite != nil {
		neutral = *r.NeutralSite
	} else {
		neutral = DetectNeutralSite(r.Location, team1, team2, schools)
	}

	return bracket.Game{
		Year:        r.Year,
		Sport:       bracket.Sport(strings.ToLower(strings.TrimSpace(r.Sport))),
		Division:    bracket.Division(strings.ToUpper(strings.TrimSpace(r.Division))),
		Round:       round,
		TeamA:       team1,
		SeedA:       seed1,
		TeamB:       team2,
		SeedB:       seed2,
		Winner:      winner,
		Location:    r.Location,
		NeutralSite: neutral,
	}, nil
}

func teamSeed(cell string, seed *int) (string, int, error) {
	name, s, ok := ParseTeamSeed(cell)
	if seed != nil {
		return name, *seed, nil
	}
	if !ok {
		return "", 0, fmt.Errorf("team %q has no seed", cell)
	}

	return name, s, nil
}

// School converts the record. Both coordinates or neither must be set.
func (r SchoolRecord) School() (bracket.School, error) {
	sc := bracket.School{Name: strings.TrimSpace(r.Name), City: r.City}
	switch {
	case r.Lat == nil && r.Lon == nil:
		return sc, nil
	case r.Lat == nil || r.Lon == nil:
		return sc, fmt.Errorf("school %q has only one coordinate", r.Name)
	}
	p, err := geo.NewPoint(*r.Lat, *r.Lon)
	if err != nil {
		return sc, fmt.Errorf("school %q: %w", r.Name, err)
	}
	sc.Location = &p

	return sc, nil
}
