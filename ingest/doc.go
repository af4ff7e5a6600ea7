// Package ingest loads bracket records from files and databases into a
// validated bracket.Dataset.
//
// Every source is mapped onto one Document: a list of school records and
// a list of game ("matchup") records using the field names of the bracket
// data exports:
//
//	year, sport, division, round, team1, team1_seed, team2, team2_seed,
//	winner, score, location, neutral_site
//	name, city, lat, lon
//
// Supported sources:
//
//   - YAML or JSON documents (Decode, LoadYAML);
//   - CSV with a header row, games and schools in separate files (LoadCSV);
//   - HTML pages holding a bracket table with the same column names
//     (ReadHTMLTable);
//   - SQLite databases with "matchups" and "schools" tables (LoadSQLite,
//     WriteSQLite).
//
// LoadFile and WriteFile pick the format from the file extension.
//
// Records may omit seeds when the team cell carries them ("(1) Lincoln",
// "#4 Bend", "Sheldon (2)"); ParseTeamSeed splits them. A missing
// neutral_site is derived from the location text. A Document without
// schools falls back to the embedded Oregon school table (OregonSchools).
//
// Parse failures wrap ErrMalformed and name the record; structural
// failures come from bracket.New unchanged.
package ingest
