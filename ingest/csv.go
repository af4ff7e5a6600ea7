package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/quarterback/oregontennis/bracket"
)

// readCSV returns the header-keyed rows of r. Line numbers are 1-based and
// count the header.
func readCSV(r io.Reader) ([]row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformed, err)
	}
	var rows []row
	for line := 2; ; line++ {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		rows = append(rows, newRow(line, header, cells))
	}
}

// ReadGamesCSV reads matchup rows.
func ReadGamesCSV(r io.Reader) ([]GameRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	out := make([]GameRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := rw.game()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// ReadSchoolsCSV reads school rows (name, city, lat, lon).
func ReadSchoolsCSV(r io.Reader) ([]SchoolRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	out := make([]SchoolRecord, 0, len(rows))
	for _, rw := range rows {
		rec, err := rw.school()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

// LoadCSV builds a dataset from a games CSV and an optional schools CSV.
// A nil schools reader selects the embedded Oregon table.
func LoadCSV(games, schools io.Reader) (*bracket.Dataset, error) {
	var doc Document
	var err error
	if doc.Games, err = ReadGamesCSV(games); err != nil {
		return nil, err
	}
	if schools != nil {
		if doc.Schools, err = ReadSchoolsCSV(schools); err != nil {
			return nil, err
		}
	}

	return doc.Build()
}

var (
	gamesHeader   = []string{"year", "sport", "division", "round", "team1", "team1_seed", "team2", "team2_seed", "winner", "score", "location", "neutral_site"}
	schoolsHeader = []string{"name", "city", "lat", "lon"}
)

// WriteGamesCSV writes matchup rows with a header line.
func WriteGamesCSV(w io.Writer, games []GameRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(gamesHeader); err != nil {
		return err
	}
	for _, g := range games {
		neutral := ""
		if g.NeutralSite != nil {
			neutral = strconv.FormatBool(*g.NeutralSite)
		}
		if err := cw.Write([]string{
			strconv.Itoa(g.Year), g.Sport, g.Division, g.Round,
			g.Team1, optInt(g.Team1Seed), g.Team2, optInt(g.Team2Seed),
			g.Winner, g.Score, g.Location, neutral,
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSchoolsCSV writes school rows with a header line.
func WriteSchoolsCSV(w io.Writer, schools []SchoolRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(schoolsHeader); err != nil {
		return err
	}
	for _, s := range schools {
		if err := cw.Write([]string{s.Name, s.City, optFloat(s.Lat), optFloat(s.Lon)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
