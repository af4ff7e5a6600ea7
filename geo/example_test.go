package geo_test

import (
	"fmt"

	"github.com/quarterback/oregontennis/geo"
)

// ExampleMiles computes the trip from Jesuit (Beaverton) to South Medford
// and classifies it.
func ExampleMiles() {
	jesuit, _ := geo.NewPoint(45.4914, -122.7837)
	southMedford, _ := geo.NewPoint(42.3165, -122.8756)

	d, err := geo.Miles(jesuit, southMedford)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f mi %s\n", d, geo.Classify(d, true, geo.DefaultTierOptions()))
	// Output:
	// 219 mi yellow
}
