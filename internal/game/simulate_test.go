package game

import (
	"context"
	"testing"

	"github.com/vovakirdan/t2048/internal/ai"
)

func TestSimulate(t *testing.T) {
	cfg := testConfig(3)

	results, err := Simulate(context.Background(), cfg, ai.Greedy{}, 5, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}
	for i, r := range results {
		if r.Seed != cfg.Seed+int64(i) {
			t.Errorf("results[%d].Seed = %d, want %d", i, r.Seed, cfg.Seed+int64(i))
		}
		if r.Turns == 0 || r.MaxTile < 2 || r.Sum < r.MaxTile {
			t.Errorf("results[%d] = %+v, want a played game", i, r)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := testConfig(3)

	a, err := Simulate(context.Background(), cfg, ai.Greedy{}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(context.Background(), cfg, ai.Greedy{}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Simulate(ctx, testConfig(4), ai.Greedy{}, 3, nil)
	if err == nil {
		t.Fatal("Simulate with cancelled context should fail")
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Turns: 10, MaxTile: 64},
		{Turns: 30, MaxTile: 256},
		{Turns: 20, MaxTile: 128},
	}

	got := Summarize(results, 128)
	want := Summary{Games: 3, MeanTurns: 20, BestTile: 256, Reached: 2, Target: 128}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}

	if empty := Summarize(nil, 2048); empty != (Summary{Target: 2048}) {
		t.Errorf("Summarize(nil) = %+v, want zero with target", empty)
	}
}

func TestSimulateNegativeSeedCrossingZero(t *testing.T) {
	cfg := testConfig(3)
	cfg.Seed = -2

	a, err := Simulate(context.Background(), cfg, ai.Greedy{}, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(context.Background(), cfg, ai.Greedy{}, 4, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := range a {
		if want := int64(i) - 2; a[i].Seed != want {
			t.Errorf("results[%d].Seed = %d, want %d", i, a[i].Seed, want)
		}
		if a[i] != b[i] {
			t.Errorf("game %d differs between runs: %+v vs %+v", i+1, a[i], b[i])
		}
	}
}
