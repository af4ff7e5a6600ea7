package sample_test

import (
	"fmt"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/sample"
)

// ExamplePlay prints the first round of a chalk 8-team bracket.
func ExamplePlay() {
	teams := []string{"Jesuit", "Sheldon", "Tualatin", "West Linn", "Lincoln", "Grant", "Sprague", "Bend"}
	key := bracket.InstanceKey{Year: 2025, Sport: bracket.Baseball, Division: "6A"}
	games, _ := sample.Play(key, teams, sample.Favorite)
	for _, g := range games[:4] {
		fmt.Println(g)
	}
	// Output:
	// Quarterfinals: (1) Jesuit vs (8) Bend
	// Quarterfinals: (4) West Linn vs (5) Lincoln
	// Quarterfinals: (2) Sheldon vs (7) Sprague
	// Quarterfinals: (3) Tualatin vs (6) Grant
}
