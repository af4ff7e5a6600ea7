package bracket

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Instance is one tournament: every game sharing (year, sport, division).
type Instance struct {
	key     InstanceKey
	games   []Game
	seeds   map[string]int
	rounds  []Round
	byRound map[Round][]Participant
	bySeed  map[int][]Round
}

type indexed struct {
	idx  int
	game Game
}

// buildInstance checks seeds and bracket paths, then indexes the games.
func buildInstance(k InstanceKey, rows []indexed) (*Instance, error) {
	inst := &Instance{
		key:     k,
		seeds:   make(map[string]int),
		byRound: make(map[Round][]Participant),
		bySeed:  make(map[int][]Round),
	}
	fail := func(row indexed, err error) error {
		return &RecordError{Index: row.idx, Instance: k, Game: row.game, Err: err}
	}

	// Stage 1: one seed per team, one team per seed.
	owner := make(map[int]string)
	for _, row := range rows {
		g := row.game
		for _, p := range [2]Participant{{g.TeamA, g.SeedA}, {g.TeamB, g.SeedB}} {
			if s, ok := inst.seeds[p.Team]; ok && s != p.Seed {
				return nil, fail(row, fmt.Errorf("%w: %w: %w: %q seeded both %d and %d",
					ErrDataIntegrity, ErrValidation, ErrInvalidSeeds, p.Team, s, p.Seed))
			}
			if t, ok := owner[p.Seed]; ok && t != p.Team {
				return nil, fail(row, fmt.Errorf("%w: %w: %w: seed %d held by %q and %q",
					ErrDataIntegrity, ErrValidation, ErrInvalidSeeds, p.Seed, t, p.Team))
			}
			inst.seeds[p.Team] = p.Seed
			owner[p.Seed] = p.Team
		}
	}
	n := len(inst.seeds)
	for _, row := range rows {
		if s := max(row.game.SeedA, row.game.SeedB); s > n {
			return nil, fail(row, fmt.Errorf("%w: %w: %w: seed %d exceeds field size %d",
				ErrDataIntegrity, ErrValidation, ErrInvalidSeeds, s, n))
		}
	}

	// Stage 2: appearances per round; a team plays at most once per round.
	played := make(map[string]map[Round]indexed)
	for _, row := range rows {
		g := row.game
		for _, p := range [2]Participant{{g.TeamA, g.SeedA}, {g.TeamB, g.SeedB}} {
			if played[p.Team] == nil {
				played[p.Team] = make(map[Round]indexed)
			}
			if _, dup := played[p.Team][g.Round]; dup {
				return nil, fail(row, fmt.Errorf("%w: %w: %q plays twice in %s",
					ErrDataIntegrity, ErrValidation, p.Team, g.Round))
			}
			played[p.Team][g.Round] = row
			inst.byRound[g.Round] = append(inst.byRound[g.Round], p)
		}
	}
	inst.rounds = slices.Sorted(maps.Keys(inst.byRound))
	pos := make(map[Round]int, len(inst.rounds))
	for i, r := range inst.rounds {
		pos[r] = i
	}

	// Stage 3: contiguous bracket paths starting at the entry round
	// (one round later for bye seeds).
	byes := byeCount(n)
	teams := slices.Sorted(maps.Keys(played))
	for _, team := range teams {
		rs := slices.Sorted(maps.Keys(played[team]))
		first := pos[rs[0]]
		seed := inst.seeds[team]
		if first > 1 || (first == 1 && seed > byes) {
			return nil, fail(played[team][rs[0]], fmt.Errorf("%w: %w: %w: (%d) %q first appears in %s",
				ErrDataIntegrity, ErrValidation, ErrRoundGap, seed, team, rs[0]))
		}
		for i := 1; i < len(rs); i++ {
			if pos[rs[i]] != pos[rs[i-1]]+1 {
				return nil, fail(played[team][rs[i]], fmt.Errorf("%w: %w: %w: %q skips from %s to %s",
					ErrDataIntegrity, ErrValidation, ErrRoundGap, team, rs[i-1], rs[i]))
			}
		}
		inst.bySeed[seed] = rs
	}

	// Stage 4: eliminated teams stay eliminated.
	for _, row := range rows {
		loser := row.game.Loser()
		if loser == "" {
			continue
		}
		for _, r := range slices.Sorted(maps.Keys(played[loser])) {
			if r > row.game.Round {
				return nil, fail(played[loser][r], fmt.Errorf("%w: %w: %q lost in %s but plays in %s",
					ErrDataIntegrity, ErrValidation, loser, row.game.Round, r))
			}
		}
	}

	for r := range inst.byRound {
		slices.SortFunc(inst.byRound[r], func(a, b Participant) int { return cmp.Compare(a.Seed, b.Seed) })
	}
	inst.games = make([]Game, len(rows))
	for i, row := range rows {
		inst.games[i] = row.game
	}
	slices.SortStableFunc(inst.games, func(a, b Game) int {
		if c := cmp.Compare(a.Round, b.Round); c != 0 {
			return c
		}

		return cmp.Compare(a.Host().Seed, b.Host().Seed)
	})

	return inst, nil
}

// byeCount returns how many top seeds skip the entry round of an n-team
// single-elimination bracket: 2^⌈log2 n⌉ − n.
func byeCount(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p - n
}

// Key returns the instance key.
func (inst *Instance) Key() InstanceKey { return inst.key }

// Games returns the games ordered by round, then host seed.
func (inst *Instance) Games() []Game { return slices.Clone(inst.games) }

// Size returns the number of distinct teams (N).
func (inst *Instance) Size() int { return len(inst.seeds) }

// Byes returns how many top seeds enter one round after EntryRound.
func (inst *Instance) Byes() int { return byeCount(len(inst.seeds)) }

// Rounds returns the rounds present in this instance, in bracket order.
func (inst *Instance) Rounds() []Round { return slices.Clone(inst.rounds) }

// EntryRound returns the earliest round played.
func (inst *Instance) EntryRound() Round { return inst.rounds[0] }

// Prev returns the round played immediately before r in this instance.
func (inst *Instance) Prev(r Round) (Round, bool) {
	i := slices.Index(inst.rounds, r)
	if i <= 0 {
		return 0, false
	}

	return inst.rounds[i-1], true
}

// Seed returns the seed of team.
func (inst *Instance) Seed(team string) (int, bool) {
	s, ok := inst.seeds[team]

	return s, ok
}

// Participants returns the teams playing in round r, ordered by seed.
func (inst *Instance) Participants(r Round) []Participant {
	return slices.Clone(inst.byRound[r])
}

// Appears reports whether the team seeded s plays in round r.
func (inst *Instance) Appears(seed int, r Round) bool {
	return slices.Contains(inst.bySeed[seed], r)
}

// EntryRoundOf returns the first round the team seeded s plays.
func (inst *Instance) EntryRoundOf(seed int) (Round, bool) {
	rs := inst.bySeed[seed]
	if len(rs) == 0 {
		return 0, false
	}

	return rs[0], true
}

// Seeds returns every seed in ascending order.
func (inst *Instance) Seeds() []int {
	return slices.Sorted(maps.Keys(inst.bySeed))
}
