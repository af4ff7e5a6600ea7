package ingest

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/quarterback/oregontennis/bracket"
	"gopkg.in/yaml.v3"
)

// Decode reads a YAML or JSON document.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return doc, nil
}

// Encode writes doc as YAML with two-space indentation.
func Encode(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("ingest: encode: %w", err)
	}

	return enc.Close()
}

// LoadYAML decodes a document and builds the dataset.
func LoadYAML(r io.Reader) (*bracket.Dataset, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// SchoolTable converts the school records. An empty list yields the
// embedded Oregon table.
func (d Document) SchoolTable() (bracket.Schools, error) {
	if len(d.Schools) == 0 {
		return OregonSchools()
	}
	list := make([]bracket.School, 0, len(d.Schools))
	for i, rec := range d.Schools {
		sc, err := rec.School()
		if err != nil {
			return nil, fmt.Errorf("%w: school #%d: %w", ErrMalformed, i, err)
		}
		list = append(list, sc)
	}

	return bracket.NewSchools(list...)
}

// Build converts every record and validates the result with bracket.New.
func (d Document) Build() (*bracket.Dataset, error) {
	schools, err := d.SchoolTable()
	if err != nil {
		return nil, err
	}
	games := make([]bracket.Game, 0, len(d.Games))
	for i, rec := range d.Games {
		g, err := rec.Game(schools)
		if err != nil {
			return nil, fmt.Errorf("%w: matchup #%d (%s vs %s): %w", ErrMalformed, i, rec.Team1, rec.Team2, err)
		}
		games = append(games, g)
	}

	return bracket.New(games, schools)
}

// FromGames builds a Document from in-memory games and schools. Schools are
// sorted by name; games keep their order.
func FromGames(games []bracket.Game, schools bracket.Schools) Document {
	var doc Document
	for _, name := range slices.Sorted(maps.Keys(schools)) {
		sc := schools[name]
		rec := SchoolRecord{Name: sc.Name, City: sc.City}
		if sc.Location != nil {
			lat, lon := sc.Location.Lat(), sc.Location.Lon()
			rec.Lat, rec.Lon = &lat, &lon
		}
		doc.Schools = append(doc.Schools, rec)
	}
	for _, g := range games {
		s1, s2, neutral := g.SeedA, g.SeedB, g.NeutralSite
		doc.Games = append(doc.Games, GameRecord{
			Year:        g.Year,
			Sport:       string(g.Sport),
			Division:    string(g.Division),
			Round:       g.Round.String(),
			Team1:       g.TeamA,
			Team1Seed:   &s1,
			Team2:       g.TeamB,
			Team2Seed:   &s2,
			Winner:      g.Winner,
			Location:    g.Location,
			NeutralSite: &neutral,
		})
	}

	return doc
}
