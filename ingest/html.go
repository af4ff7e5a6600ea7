package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ReadHTMLTable reads matchup rows from every <table> in an HTML page.
// Each table needs a header row of <th> cells named like the CSV columns;
// tables without a "team1" column are skipped.
func ReadHTMLTable(r io.Reader) ([]GameRecord, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	var out []GameRecord
	for _, tbl := range findAll(root, "table") {
		var header []string
		for i, tr := range findAll(tbl, "tr") {
			var cells []string
			isHeader := false
			for c := tr.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
					continue
				}
				isHeader = isHeader || c.Data == "th"
				cells = append(cells, text(c))
			}
			if len(cells) == 0 {
				continue
			}
			if isHeader && header == nil {
				header = cells
				continue
			}
			if header == nil {
				break
			}
			rw := newRow(i+1, header, cells)
			if _, ok := rw.cells[normalizeHeader("team1")]; !ok {
				break
			}
			rec, err := rw.game()
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}

	return out, nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			if tag == "table" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return out
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}
