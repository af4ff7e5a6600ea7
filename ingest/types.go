package ingest

import "errors"

var (
	// ErrMalformed indicates a record that cannot be converted.
	ErrMalformed = errors.New("ingest: malformed record")

	// ErrUnsupported indicates a file extension LoadFile does not know.
	ErrUnsupported = errors.New("ingest: unsupported source")
)

// Document is the serialised form of a dataset.
type Document struct {
	Schools []SchoolRecord `json:"schools,omitempty" yaml:"schools,omitempty"`
	Games   []GameRecord   `json:"matchups" yaml:"matchups"`
}

// SchoolRecord is one school row. Lat and Lon are nil when unknown.
type SchoolRecord struct {
	Name string   `json:"name" yaml:"name"`
	City string   `json:"city,omitempty" yaml:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
}

// GameRecord is one matchup row. Seeds and NeutralSite are optional.
type GameRecord struct {
	Year        int    `json:"year" yaml:"year"`
	Sport       string `json:"sport" yaml:"sport"`
	Division    string `json:"division" yaml:"division"`
	Round       string `json:"round" yaml:"round"`
	Team1       string `json:"team1" yaml:"team1"`
	Team1Seed   *int   `json:"team1_seed,omitempty" yaml:"team1_seed,omitempty"`
	Team2       string `json:"team2" yaml:"team2"`
	Team2Seed   *int   `json:"team2_seed,omitempty" yaml:"team2_seed,omitempty"`
	Winner      string `json:"winner,omitempty" yaml:"winner,omitempty"`
	Score       string `json:"score,omitempty" yaml:"score,omitempty"`
	Location    string `json:"location,omitempty" yaml:"location,omitempty"`
	NeutralSite *bool  `json:"neutral_site,omitempty" yaml:"neutral_site,omitempty"`
}
