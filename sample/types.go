package sample

import (
	"errors"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
)

var (
	// ErrFieldSize indicates a field smaller than 2 or larger than 32 teams.
	ErrFieldSize = errors.New("sample: field size must be between 2 and 32")

	// ErrBadOptions indicates inconsistent Options.
	ErrBadOptions = errors.New("sample: invalid options")
)

// Decide picks the winner of a game between two participants.
type Decide func(a, b bracket.Participant) bracket.Participant

// Favorite always advances the better seed.
func Favorite(a, b bracket.Participant) bracket.Participant {
	if b.Seed < a.Seed {
		return b
	}

	return a
}

// Options configures Generate.
type Options struct {
	// Seed drives every random choice. Equal non-zero seeds give equal
	// output; 0 draws a random seed.
	Seed int64

	Years     []int
	Sports    []bracket.Sport
	Divisions []bracket.Division

	// FieldSize is the number of teams per bracket (2..32).
	FieldSize int

	// Schools is the size of the school pool, split evenly across
	// Divisions; each share must hold at least FieldSize schools.
	Schools int

	// Region bounds the generated school coordinates.
	Region geo.Region

	// UpsetBias in [0,1] scales how often the worse seed wins; 0 means
	// favorites always win.
	UpsetBias float64
}

// DefaultOptions returns four seasons of baseball and softball across the
// five OSAA classifications with 16-team fields.
func DefaultOptions() Options {
	return Options{
		Seed:      2025,
		Years:     []int{2022, 2023, 2024, 2025},
		Sports:    []bracket.Sport{bracket.Baseball, bracket.Softball},
		Divisions: []bracket.Division{"6A", "5A", "4A", "3A", "2A/1A"},
		FieldSize: 16,
		Schools:   96,
		Region:    Oregon,
		UpsetBias: 0.6,
	}
}
