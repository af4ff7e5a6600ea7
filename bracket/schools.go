package bracket

import (
	"fmt"
	"strings"
)

// coopSeparator splits co-op team names such as "Grant Union / Prairie City".
const coopSeparator = " / "

// NewSchools builds a lookup from a list, rejecting duplicate names and
// invalid coordinates.
func NewSchools(list ...School) (Schools, error) {
	out := make(Schools, len(list))
	for _, s := range list {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: %w: empty school name", ErrDataIntegrity, ErrValidation)
		}
		if _, dup := out[s.Name]; dup {
			return nil, fmt.Errorf("%w: %w: %q", ErrDataIntegrity, ErrDuplicateSchool, s.Name)
		}
		if s.Location != nil {
			if err := s.Location.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %w: school %q: %w", ErrDataIntegrity, ErrValidation, s.Name, err)
			}
		}
		out[s.Name] = s
	}

	return out, nil
}

// Resolve finds the School for a team name. An exact match wins; a co-op
// name falls back to its first (primary) school.
func (s Schools) Resolve(team string) (School, bool) {
	if sc, ok := s[team]; ok {
		return sc, true
	}
	if i := strings.Index(team, coopSeparator); i > 0 {
		if sc, ok := s[strings.TrimSpace(team[:i])]; ok {
			return sc, true
		}
	}

	return School{}, false
}
