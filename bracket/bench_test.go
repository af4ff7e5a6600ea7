package bracket_test

import (
	"fmt"
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/sample"
)

// BenchmarkNew validates 80 sixteen-team brackets.
func BenchmarkNew(b *testing.B) {
	teams := make([]string, 16)
	schools := bracket.Schools{}
	for i := range teams {
		teams[i] = fmt.Sprintf("School %02d", i+1)
		schools[teams[i]] = bracket.School{Name: teams[i]}
	}
	var games []bracket.Game
	for y := 0; y < 80; y++ {
		gs, err := sample.Play(bracket.InstanceKey{Year: 1950 + y, Sport: bracket.Baseball, Division: "6A"}, teams, sample.Favorite)
		if err != nil {
			b.Fatal(err)
		}
		games = append(games, gs...)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bracket.New(games, schools); err != nil {
			b.Fatal(err)
		}
	}
}
