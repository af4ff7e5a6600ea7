package bracket

import (
	"fmt"
	"maps"
	"slices"
)

// Dataset is a validated, read-only collection of games grouped into
// tournament instances.
type Dataset struct {
	schools   Schools
	instances []*Instance
	byKey     map[InstanceKey]*Instance
	games     int
}

// New validates games against schools and builds a Dataset.
// The schools map is copied; later changes by the caller are not observed.
//
// Errors: a *RecordError wrapping ErrDataIntegrity and one of
// ErrUnknownSchool, ErrValidation, ErrUnknownRound, ErrInvalidSeeds,
// ErrRoundGap.
//
// Complexity: O(G log G) for G games.
func New(games []Game, schools Schools) (*Dataset, error) {
	ds := &Dataset{
		schools: maps.Clone(schools),
		byKey:   make(map[InstanceKey]*Instance),
		games:   len(games),
	}
	if ds.schools == nil {
		ds.schools = Schools{}
	}
	for name, sc := range ds.schools {
		if sc.Location == nil {
			continue
		}
		if err := sc.Location.Validate(); err != nil {
			return nil, &RecordError{Index: -1, Err: fmt.Errorf("%w: %w: school %q: %w", ErrDataIntegrity, ErrValidation, name, err)}
		}
	}

	// Stage 1: per-game checks and grouping (input order preserved).
	grouped := make(map[InstanceKey][]indexed)
	var keys []InstanceKey
	for i, g := range games {
		if err := ds.checkGame(g); err != nil {
			return nil, &RecordError{Index: i, Instance: g.Key(), Game: g, Err: err}
		}
		k := g.Key()
		if _, seen := grouped[k]; !seen {
			keys = append(keys, k)
		}
		grouped[k] = append(grouped[k], indexed{idx: i, game: g})
	}

	// Stage 2: per-instance structure.
	slices.SortFunc(keys, compareKeys)
	for _, k := range keys {
		inst, err := buildInstance(k, grouped[k])
		if err != nil {
			return nil, err
		}
		ds.instances = append(ds.instances, inst)
		ds.byKey[k] = inst
	}

	return ds, nil
}

// checkGame validates the fields of a single game.
func (ds *Dataset) checkGame(g Game) error {
	if !g.Round.Valid() {
		return fmt.Errorf("%w: %w: %w: %d", ErrDataIntegrity, ErrValidation, ErrUnknownRound, int(g.Round))
	}
	if g.TeamA == "" || g.TeamB == "" {
		return fmt.Errorf("%w: %w: missing team name", ErrDataIntegrity, ErrValidation)
	}
	if g.TeamA == g.TeamB {
		return fmt.Errorf("%w: %w: team %q plays itself", ErrDataIntegrity, ErrValidation, g.TeamA)
	}
	if g.SeedA < 1 || g.SeedB < 1 {
		return fmt.Errorf("%w: %w: %w: seeds must be ≥ 1", ErrDataIntegrity, ErrValidation, ErrInvalidSeeds)
	}
	if g.Winner != "" && g.Winner != g.TeamA && g.Winner != g.TeamB {
		return fmt.Errorf("%w: %w: winner %q is not a participant", ErrDataIntegrity, ErrValidation, g.Winner)
	}
	for _, team := range [2]string{g.TeamA, g.TeamB} {
		if _, ok := ds.schools.Resolve(team); !ok {
			return fmt.Errorf("%w: %w: %q", ErrDataIntegrity, ErrUnknownSchool, team)
		}
	}

	return nil
}

// Len returns the number of games.
func (ds *Dataset) Len() int { return ds.games }

// Instances returns every instance ordered by key.
func (ds *Dataset) Instances() []*Instance {
	return slices.Clone(ds.instances)
}

// Keys returns every instance key in order.
func (ds *Dataset) Keys() []InstanceKey {
	out := make([]InstanceKey, len(ds.instances))
	for i, inst := range ds.instances {
		out[i] = inst.key
	}

	return out
}

// Instance looks up one instance.
func (ds *Dataset) Instance(k InstanceKey) (*Instance, bool) {
	inst, ok := ds.byKey[k]

	return inst, ok
}

// GamesFor returns the games of one tournament, ordered by round, then by
// host seed. Unknown instances yield ErrUnknownInstance.
func (ds *Dataset) GamesFor(year int, sport Sport, division Division) ([]Game, error) {
	k := InstanceKey{Year: year, Sport: sport, Division: division}
	inst, ok := ds.byKey[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownInstance, k)
	}

	return inst.Games(), nil
}

// GamesInRound returns every game of round r across the dataset, ordered
// by instance key and then as in GamesFor.
func (ds *Dataset) GamesInRound(r Round) []Game {
	var out []Game
	for _, inst := range ds.instances {
		for _, g := range inst.games {
			if g.Round == r {
				out = append(out, g)
			}
		}
	}

	return out
}

// ResolveSchool returns the School for a team name.
func (ds *Dataset) ResolveSchool(team string) (School, error) {
	sc, ok := ds.schools.Resolve(team)
	if !ok {
		return School{}, fmt.Errorf("%w: %q", ErrUnknownSchool, team)
	}

	return sc, nil
}

// Schools returns a copy of the school lookup.
func (ds *Dataset) Schools() Schools {
	return maps.Clone(ds.schools)
}

func compareKeys(a, b InstanceKey) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}

	return 0
}
