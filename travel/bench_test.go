package travel_test

import (
	"context"
	"testing"

	"github.com/quarterback/oregontennis/bracket"
	"github.com/quarterback/oregontennis/sample"
	"github.com/quarterback/oregontennis/travel"
)

func benchDataset(b *testing.B, fieldSize int) *bracket.Dataset {
	b.Helper()
	opts := sample.DefaultOptions()
	opts.FieldSize = fieldSize
	opts.Schools = fieldSize * len(opts.Divisions)
	games, schools, err := sample.Generate(opts)
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	ds, err := bracket.New(games, schools)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	return ds
}

func benchmarkSimulateAll(b *testing.B, fieldSize, workers int) {
	ds := benchDataset(b, fieldSize)
	opts := travel.DefaultOptions()
	opts.Workers = workers
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := travel.SimulateAll(ctx, ds, opts); err != nil {
			b.Fatalf("SimulateAll failed: %v", err)
		}
	}
}

// BenchmarkSimulateAll_16Sequential runs 40 sixteen-team instances on one worker.
func BenchmarkSimulateAll_16Sequential(b *testing.B) { benchmarkSimulateAll(b, 16, 1) }

// BenchmarkSimulateAll_16Parallel uses GOMAXPROCS workers.
func BenchmarkSimulateAll_16Parallel(b *testing.B) { benchmarkSimulateAll(b, 16, 0) }

// BenchmarkSimulateAll_32Parallel doubles the field.
func BenchmarkSimulateAll_32Parallel(b *testing.B) { benchmarkSimulateAll(b, 32, 0) }
