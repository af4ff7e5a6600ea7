package peer_test

import (
	"fmt"

	"github.com/quarterback/oregontennis/metric"
	"github.com/quarterback/oregontennis/peer"
)

// ExampleStats judges seeds 9..16 by their quarterfinal advancement rates.
func ExampleStats() {
	rates := map[int]metric.Value{
		9: metric.Of(0.364), 10: metric.Of(0.217), 11: metric.Of(0.115), 12: metric.Of(0.067),
		13: metric.Of(0.100), 14: metric.Of(0.026), 15: metric.Of(0.0), 16: metric.Of(0.029),
	}
	res, err := peer.Stats(rates, peer.Band(9, 16), peer.DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("mean=%.4f stddev=%.4f peer=%v\n", res.Mean, res.StdDev, res.IsPeerGroup)
	// Output:
	// mean=0.1147 stddev=0.1137 peer=true
}
