package sample

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/paulmach/orb"
	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/geo"
)

// Oregon is the state bounding box used for generated schools.
var Oregon = geo.Region{
	Name: "Oregon",
	Bound: orb.Bound{
		Min: orb.Point{-124.4, 42.0},
		Max: orb.Point{-116.5, 46.2},
	},
}

// Generate builds a synthetic dataset. Each division draws its fields from
// its own share of the school pool, so a school never plays in two
// divisions.
func Generate(opts Options) ([]bracket.Game, bracket.Schools, error) {
	if err := validate(opts); err != nil {
		return nil, nil, err
	}
	f := gofakeit.New(opts.Seed)

	// Stage 1: schools with unique names and random coordinates.
	schools := make(bracket.Schools, opts.Schools)
	names := make([]string, 0, opts.Schools)
	for len(names) < opts.Schools {
		name := f.City()
		if _, taken := schools[name]; taken {
			name = fmt.Sprintf("%s %s", name, f.LastName())
			if _, taken = schools[name]; taken {
				continue
			}
		}
		b := opts.Region.Bound
		pt, err := geo.NewPoint(
			f.Float64Range(b.Min.Lat(), b.Max.Lat()),
			f.Float64Range(b.Min.Lon(), b.Max.Lon()),
		)
		if err != nil {
			return nil, nil, err
		}
		schools[name] = bracket.School{Name: name, City: name, Location: &pt}
		names = append(names, name)
	}

	// Stage 2: one bracket per (year, sport, division).
	share := opts.Schools / len(opts.Divisions)
	decide := func(a, b bracket.Participant) bracket.Participant {
		// a is the better seed; its edge shrinks as the seeds close in
		pUpset := opts.UpsetBias * float64(a.Seed) / float64(a.Seed+b.Seed)
		if f.Float64() < pUpset {
			return b
		}

		return a
	}
	var games []bracket.Game
	for _, year := range opts.Years {
		for _, sport := range opts.Sports {
			for d, div := range opts.Divisions {
				pool := names[d*share : (d+1)*share]
				idx := make([]int, len(pool))
				for i := range idx {
					idx[i] = i
				}
				f.ShuffleInts(idx)
				field := make([]string, opts.FieldSize)
				for i := range field {
					field[i] = pool[idx[i]]
				}
				key := bracket.InstanceKey{Year: year, Sport: sport, Division: div}
				gs, err := Play(key, field, decide)
				if err != nil {
					return nil, nil, err
				}
				games = append(games, gs...)
			}
		}
	}

	return games, schools, nil
}

func validate(opts Options) error {
	if opts.FieldSize < 2 || opts.FieldSize > maxSlots {
		return fmt.Errorf("%w: %d teams", ErrFieldSize, opts.FieldSize)
	}
	if len(opts.Years) == 0 || len(opts.Sports) == 0 || len(opts.Divisions) == 0 {
		return fmt.Errorf("%w: years, sports and divisions are required", ErrBadOptions)
	}
	if opts.Schools < opts.FieldSize*len(opts.Divisions) {
		return fmt.Errorf("%w: %d schools cannot fill %d divisions of %d",
			ErrBadOptions, opts.Schools, len(opts.Divisions), opts.FieldSize)
	}
	if opts.UpsetBias < 0 || opts.UpsetBias > 1 {
		return fmt.Errorf("%w: upset bias %g outside [0,1]", ErrBadOptions, opts.UpsetBias)
	}
	b := opts.Region.Bound
	if b.Min.Lat() >= b.Max.Lat() || b.Min.Lon() >= b.Max.Lon() {
		return fmt.Errorf("%w: empty region", ErrBadOptions)
	}

	return nil
}
