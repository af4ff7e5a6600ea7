package travel_test

import (
	"fmt"

	"github.com/quarterback/oregontennis/geo"
	"github.com/quarterback/oregontennis/travel"
)

// ExampleGreedyPairs re-pairs two Portland-area hosts with two visitors.
func ExampleGreedyPairs() {
	at := func(name string, seed int, lat, lon float64) travel.Team {
		p, _ := geo.NewPoint(lat, lon)
		return travel.Team{Name: name, Seed: seed, Location: &p}
	}
	hosts := []travel.Team{
		at("Jesuit", 1, 45.4887, -122.7737),
		at("South Medford", 2, 42.3126, -122.8406),
	}
	visitors := []travel.Team{
		at("Grants Pass", 3, 42.4390, -123.3284),
		at("Tigard", 4, 45.4312, -122.7715),
	}
	pairs, _ := travel.GreedyPairs(hosts, visitors, travel.Distance(geo.DefaultOptions()))
	for _, p := range pairs {
		fmt.Printf("%s hosts %s (%.0f mi)\n", p.Host.Name, p.Visitor.Name, p.Miles)
	}
	// Output:
	// Jesuit hosts Tigard (4 mi)
	// South Medford hosts Grants Pass (26 mi)
}
