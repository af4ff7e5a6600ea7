package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quarterback/oregontennis/analysis"
	"github.com/quarterback/oregontennis/travel"
)

// Format names an output encoding.
type Format string

const (
	Markdown Format = "markdown"
	YAML     Format = "yaml"
	JSON     Format = "json"
)

// ParseFormat accepts "markdown" (or "md"), "yaml" (or "yml") and "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return Markdown, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}

	return "", fmt.Errorf("report: unknown format %q", s)
}

// Write renders rep in format f.
func Write(w io.Writer, rep *analysis.Report, f Format) error {
	switch f {
	case YAML:
		return WriteYAML(w, rep)
	case JSON:
		return WriteJSON(w, rep)
	case Markdown:
		return WriteMarkdown(w, rep)
	}

	return fmt.Errorf("report: unknown format %q", f)
}

// WriteSummary renders a travel simulation alone.
func WriteSummary(w io.Writer, s travel.Summary, f Format) error {
	switch f {
	case YAML:
		return encodeYAML(w, s)
	case JSON:
		return encodeJSON(w, s)
	case Markdown:
		bw := bufio.NewWriter(w)
		writeTravel(bw, s)

		return bw.Flush()
	}

	return fmt.Errorf("report: unknown format %q", f)
}

// WriteYAML encodes rep with two-space indentation.
func WriteYAML(w io.Writer, rep *analysis.Report) error {
	return encodeYAML(w, rep)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes rep as indented JSON.
func WriteJSON(w io.Writer, rep *analysis.Report) error {
	return encodeJSON(w, rep)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("report: json: %w", err)
	}

	return nil
}
