package ingest

import (
	"fmt"
	"strconv"
	"strings"
)

// row is one header-keyed table row.
type row struct {
	line  int
	cells map[string]string
}

func newRow(line int, header, cells []string) row {
	r := row{line: line, cells: make(map[string]string, len(header))}
	for i, h := range header {
		if i < len(cells) {
			r.cells[normalizeHeader(h)] = strings.TrimSpace(cells[i])
		}
	}

	return r
}

// normalizeHeader maps "Team 1 Seed" and "team1_seed" to the same key.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)

	return h
}

func (r row) get(col string) string { return r.cells[normalizeHeader(col)] }

func (r row) intPtr(col string) (*int, error) {
	v := r.get(col)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %s=%q", ErrMalformed, r.line, col, v)
	}

	return &n, nil
}

func (r row) floatPtr(col string) (*float64, error) {
	v := r.get(col)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %s=%q", ErrMalformed, r.line, col, v)
	}

	return &f, nil
}

func (r row) boolPtr(col string) (*bool, error) {
	v := r.get(col)
	if v == "" {
		return nil, nil
	}
	switch strings.ToLower(v) {
	case "yes", "y":
		v = "true"
	case "no", "n":
		v = "false"
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %s=%q", ErrMalformed, r.line, col, v)
	}

	return &b, nil
}

func (r row) game() (GameRecord, error) {
	rec := GameRecord{
		Sport:    r.get("sport"),
		Division: r.get("division"),
		Round:    r.get("round"),
		Team1:    r.get("team1"),
		Team2:    r.get("team2"),
		Winner:   r.get("winner"),
		Score:    r.get("score"),
		Location: r.get("location"),
	}
	year, err := r.intPtr("year")
	if err != nil {
		return rec, err
	}
	if year == nil {
		return rec, fmt.Errorf("%w: line %d: missing year", ErrMalformed, r.line)
	}
	rec.Year = *year
	if rec.Team1Seed, err = r.intPtr("team1_seed"); err != nil {
		return rec, err
	}
	if rec.Team2Seed, err = r.intPtr("team2_seed"); err != nil {
		return rec, err
	}
	if rec.NeutralSite, err = r.boolPtr("neutral_site"); err != nil {
		return rec, err
	}

	return rec, nil
}

func (r row) school() (SchoolRecord, error) {
	rec := SchoolRecord{Name: r.get("name"), City: r.get("city")}
	if rec.Name == "" {
		return rec, fmt.Errorf("%w: line %d: missing name", ErrMalformed, r.line)
	}
	var err error
	if rec.Lat, err = r.floatPtr("lat"); err != nil {
		return rec, err
	}
	if rec.Lon, err = r.floatPtr("lon"); err != nil {
		return rec, err
	}

	return rec, nil
}
