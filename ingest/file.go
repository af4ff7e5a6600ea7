package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quarterback/oregontennis/bracket"
)

// Format names a source encoding.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
	FormatHTML   Format = "html"
)

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".html", ".htm":
		return FormatHTML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupported, path)
}

// SchoolsCSVPath returns the sibling school table of a games CSV:
// "games.csv" pairs with "games.schools.csv".
func SchoolsCSVPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".schools.csv"
}

// ReadFile reads path into a Document, choosing the decoder by extension.
// A games CSV picks up its sibling school table when one exists.
func ReadFile(ctx context.Context, path string) (Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}
	if format == FormatSQLite {
		return ReadSQLite(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	var doc Document
	switch format {
	case FormatYAML, FormatJSON:
		doc, err = Decode(f)
	case FormatHTML:
		doc.Games, err = ReadHTMLTable(f)
	case FormatCSV:
		if doc.Games, err = ReadGamesCSV(f); err != nil {
			break
		}
		doc.Schools, err = readSiblingSchools(SchoolsCSVPath(path))
	}
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

func readSiblingSchools(path string) ([]SchoolRecord, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return ReadSchoolsCSV(f)
}

// LoadFile reads path and builds the dataset.
func LoadFile(ctx context.Context, path string) (*bracket.Dataset, error) {
	doc, err := ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// WriteFile writes doc to path in the format its extension selects. HTML
// output is not supported.
func WriteFile(ctx context.Context, path string, doc Document) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatSQLite:
		return WriteSQLite(ctx, path, doc)
	case FormatHTML:
		return fmt.Errorf("%w: writing %q", ErrUnsupported, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}
	switch format {
	case FormatCSV:
		err = WriteGamesCSV(f, doc.Games)
		if err == nil && len(doc.Schools) > 0 {
			err = writeSchoolsFile(SchoolsCSVPath(path), doc.Schools)
		}
	case FormatJSON:
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	default:
		err = Encode(f, doc)
	}

	return errors.Join(err, f.Close())
}

func writeSchoolsFile(path string, schools []SchoolRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: %w", err)
	}

	return errors.Join(WriteSchoolsCSV(f, schools), f.Close())
}
