package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/glebarez/go-sqlite"

	"github.com/quarterback/oregontennis/bracket"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schools (
	name TEXT PRIMARY KEY,
	city TEXT,
	lat  REAL,
	lon  REAL
);
CREATE TABLE IF NOT EXISTS matchups (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	year         INTEGER NOT NULL,
	sport        TEXT NOT NULL,
	division     TEXT NOT NULL,
	round        TEXT NOT NULL,
	team1        TEXT NOT NULL,
	team1_seed   INTEGER,
	team2        TEXT NOT NULL,
	team2_seed   INTEGER,
	winner       TEXT,
	score        TEXT,
	location     TEXT,
	neutral_site INTEGER
);`

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}

	return db, nil
}

// ReadSQLite reads the schools and matchups tables of an existing database.
// Matchups keep their insertion order.
func ReadSQLite(ctx context.Context, path string) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		return Document{}, fmt.Errorf("ingest: %w", err)
	}
	db, err := openSQLite(path)
	if err != nil {
		return Document{}, err
	}
	defer db.Close()

	var doc Document
	if doc.Schools, err = readSchools(ctx, db); err != nil {
		return Document{}, err
	}
	if doc.Games, err = readMatchups(ctx, db); err != nil {
		return Document{}, err
	}

	return doc, nil
}

func readSchools(ctx context.Context, db *sql.DB) ([]SchoolRecord, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, city, lat, lon FROM schools ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ingest: query schools: %w", err)
	}
	defer rows.Close()

	var out []SchoolRecord
	for rows.Next() {
		var (
			rec      SchoolRecord
			city     sql.NullString
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(&rec.Name, &city, &lat, &lon); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		rec.City = city.String
		if lat.Valid {
			rec.Lat = &lat.Float64
		}
		if lon.Valid {
			rec.Lon = &lon.Float64
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func readMatchups(ctx context.Context, db *sql.DB) ([]GameRecord, error) {
	rows, err := db.QueryContext(ctx, `SELECT year, sport, division, round, team1, team1_seed,
		team2, team2_seed, winner, score, location, neutral_site FROM matchups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ingest: query matchups: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var (
			rec                     GameRecord
			seed1, seed2, neutral   sql.NullInt64
			winner, score, location sql.NullString
		)
		if err := rows.Scan(&rec.Year, &rec.Sport, &rec.Division, &rec.Round, &rec.Team1, &seed1,
			&rec.Team2, &seed2, &winner, &score, &location, &neutral); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		rec.Team1Seed = nullInt(seed1)
		rec.Team2Seed = nullInt(seed2)
		rec.Winner, rec.Score, rec.Location = winner.String, score.String, location.String
		if neutral.Valid {
			b := neutral.Int64 != 0
			rec.NeutralSite = &b
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

// nullable maps a nil pointer to SQL NULL.
func nullable[T int | float64](v *T) any {
	if v == nil {
		return nil
	}

	return *v
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)

	return &n
}

// WriteSQLite creates the tables when missing and appends doc in one
// transaction. Schools with an existing name are replaced.
func WriteSQLite(ctx context.Context, path string, doc Document) error {
	db, err := openSQLite(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ingest: create schema: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ingest: begin: %w", err)
	}
	defer tx.Rollback()

	for _, s := range doc.Schools {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO schools (name, city, lat, lon) VALUES (?, ?, ?, ?)`,
			s.Name, s.City, nullable(s.Lat), nullable(s.Lon)); err != nil {
			return fmt.Errorf("ingest: insert school %q: %w", s.Name, err)
		}
	}
	for i, g := range doc.Games {
		var neutral any
		if g.NeutralSite != nil {
			neutral = 0
			if *g.NeutralSite {
				neutral = 1
			}
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO matchups (year, sport, division, round, team1, team1_seed,
			team2, team2_seed, winner, score, location, neutral_site) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.Year, g.Sport, g.Division, g.Round, g.Team1, nullable(g.Team1Seed),
			g.Team2, nullable(g.Team2Seed), g.Winner, g.Score, g.Location, neutral); err != nil {
			return fmt.Errorf("ingest: insert matchup #%d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadSQLite reads a database and builds the dataset.
func LoadSQLite(ctx context.Context, path string) (*bracket.Dataset, error) {
	doc, err := ReadSQLite(ctx, path)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}
