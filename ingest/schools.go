package ingest

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"sync"

	"github.com/quarterback/oregontennis/bracket"
)

//go:embed data/oregon_schools.yaml
var oregonSchoolsYAML []byte

var oregonSchools func() (bracket.Schools, error)

func init() {
	oregonSchools = sync.OnceValues(func() (bracket.Schools, error) {
		doc, err := Decode(bytes.NewReader(oregonSchoolsYAML))
		if err != nil {
			return nil, fmt.Errorf("ingest: embedded schools: %w", err)
		}
		doc.Games = nil
		if len(doc.Schools) == 0 {
			return nil, fmt.Errorf("ingest: embedded schools: empty table")
		}

		return doc.SchoolTable()
	})
}

// OregonSchools returns a copy of the embedded table of Oregon high school
// locations.
func OregonSchools() (bracket.Schools, error) {
	s, err := oregonSchools()
	if err != nil {
		return nil, err
	}

	return maps.Clone(s), nil
}
