package sample

import (
	"fmt"

	"github.com/quarterback/oregontennis/bracket"
)

// maxSlots is the largest bracket the round enumeration can label.
const maxSlots = 32

// SeedOrder returns the seeds of a p-slot bracket in bracket position
// order, so that positions 2i and 2i+1 meet in the first round:
//
//	p=8  → [1 8 4 5 2 7 3 6]
//
// p must be a power of two.
func SeedOrder(p int) []int {
	order := []int{1}
	for size := 2; size <= p; size <<= 1 {
		next := make([]int, 0, size)
		for _, s := range order {
			next = append(next, s, size+1-s)
		}
		order = next
	}

	return order
}

// RoundsFor labels the rounds of a p-slot bracket, last round = Final.
// A 16-slot bracket goes First Round → Quarterfinals; Second Round only
// appears in 32-slot brackets.
func RoundsFor(p int) ([]bracket.Round, error) {
	k := 0
	for s := 1; s < p; s <<= 1 {
		k++
	}
	if p < 2 || p > maxSlots || 1<<k != p {
		return nil, fmt.Errorf("%w: %d slots", ErrFieldSize, p)
	}
	tail := []bracket.Round{bracket.Quarterfinals, bracket.Semifinals, bracket.Final}
	switch k {
	case 5:
		return append([]bracket.Round{bracket.FirstRound, bracket.SecondRound}, tail...), nil
	case 4:
		return append([]bracket.Round{bracket.FirstRound}, tail...), nil
	default:
		return tail[3-k:], nil
	}
}

// Play builds every game of a single-elimination bracket. teams[i] is
// seeded i+1. Top seeds receive byes when len(teams) is not a power of
// two. The better seed is TeamA and hosts; the final is a neutral site.
func Play(key bracket.InstanceKey, teams []string, decide Decide) ([]bracket.Game, error) {
	n := len(teams)
	if n < 2 || n > maxSlots {
		return nil, fmt.Errorf("%w: %d teams", ErrFieldSize, n)
	}
	if decide == nil {
		decide = Favorite
	}
	p := 1
	for p < n {
		p <<= 1
	}
	rounds, err := RoundsFor(p)
	if err != nil {
		return nil, err
	}

	// nil slot = bye
	slots := make([]*bracket.Participant, p)
	for i, s := range SeedOrder(p) {
		if s <= n {
			slots[i] = &bracket.Participant{Team: teams[s-1], Seed: s}
		}
	}

	var games []bracket.Game
	for _, r := range rounds {
		next := make([]*bracket.Participant, 0, len(slots)/2)
		for i := 0; i < len(slots); i += 2 {
			a, b := slots[i], slots[i+1]
			switch {
			case a == nil:
				next = append(next, b)
				continue
			case b == nil:
				next = append(next, a)
				continue
			}
			if b.Seed < a.Seed {
				a, b = b, a
			}
			w := decide(*a, *b)
			games = append(games, bracket.Game{
				Year:        key.Year,
				Sport:       key.Sport,
				Division:    key.Division,
				Round:       r,
				TeamA:       a.Team,
				SeedA:       a.Seed,
				TeamB:       b.Team,
				SeedB:       b.Seed,
				Winner:      w.Team,
				Location:    a.Team + " HS",
				NeutralSite: r == bracket.Final,
			})
			if w.Team == a.Team {
				next = append(next, a)
			} else {
				next = append(next, b)
			}
		}
		slots = next
	}

	return games, nil
}
