package draw

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/Dosada05/sportsday-system/models"
)

func makePool(size int, classes []string) []models.Participant {
	pool := make([]models.Participant, size)
	for i := range pool {
		pool[i] = models.Participant{
			ID:      fmt.Sprintf("p%d", i),
			Name:    fmt.Sprintf("Participant %d", i),
			Class:   classes[i%len(classes)],
			Present: true,
		}
	}
	return pool
}

func memberIDs(teams []models.Team) map[string]int {
	seen := make(map[string]int)
	for _, t := range teams {
		for _, m := range t.Members {
			seen[m.ID]++
		}
	}
	return seen
}

func TestPartitionCompleteness(t *testing.T) {
	classes := []string{"10A", "10B", "10C", "10D"}
	strategies := []Strategy{StrategyBalanced, StrategyClassBased, StrategyRandom, StrategySplit}

	for _, strat := range strategies {
		for _, poolSize := range []int{0, 1, 7, 30, 200} {
			for _, teamCount := range []int{1, 2, 5, 30} {
				pool := makePool(poolSize, classes)
				rng := rand.New(rand.NewSource(42))
				teams, err := PartitionTeams(pool, classes, PartitionParams{
					TeamCount: teamCount,
					Strategy:  strat,
				}, rng)
				if err != nil {
					t.Fatalf("%s pool=%d teams=%d: %v", strat, poolSize, teamCount, err)
				}
				if len(teams) != teamCount {
					t.Fatalf("%s: got %d teams, want %d", strat, len(teams), teamCount)
				}

				seen := memberIDs(teams)
				if len(seen) != poolSize {
					t.Errorf("%s pool=%d teams=%d: %d distinct members assigned",
						strat, poolSize, teamCount, len(seen))
				}
				for id, n := range seen {
					if n != 1 {
						t.Errorf("%s: participant %s assigned %d times", strat, id, n)
					}
				}
			}
		}
	}
}

func TestPartitionRandomTeamSizes(t *testing.T) {
	pool := makePool(23, []string{"10A", "10B"})
	rng := rand.New(rand.NewSource(1))
	teams, err := PartitionTeams(pool, []string{"10A", "10B"}, PartitionParams{
		TeamCount: 5,
		Strategy:  StrategyRandom,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	min, max := len(teams[0].Members), len(teams[0].Members)
	for _, tm := range teams {
		if len(tm.Members) < min {
			min = len(tm.Members)
		}
		if len(tm.Members) > max {
			max = len(tm.Members)
		}
	}
	if max-min > 1 {
		t.Errorf("team sizes differ by %d, want at most 1", max-min)
	}
}

func TestPartitionBalancedClassFairness(t *testing.T) {
	classes := []string{"10A", "10B", "10C"}
	var pool []models.Participant
	for i := range classes {
		for j := 0; j < 10; j++ {
			pool = append(pool, models.Participant{
				ID:      fmt.Sprintf("c%dp%d", i, j),
				Class:   classes[i],
				Present: true,
			})
		}
	}

	rng := rand.New(rand.NewSource(7))
	teams, err := PartitionTeams(pool, classes, PartitionParams{
		TeamCount: 4,
		Strategy:  StrategyBalanced,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	for _, class := range classes {
		counts := make([]int, len(teams))
		for i, tm := range teams {
			for _, m := range tm.Members {
				if m.Class == class {
					counts[i]++
				}
			}
		}
		for i := 0; i < len(counts); i++ {
			for j := i + 1; j < len(counts); j++ {
				diff := counts[i] - counts[j]
				if diff < 0 {
					diff = -diff
				}
				if diff > 1 {
					t.Errorf("class %s: teams %d and %d differ by %d members", class, i, j, diff)
				}
			}
		}
	}
}

func TestPartitionClassBasedPurity(t *testing.T) {
	classes := []string{"10A", "10B"}
	pool := makePool(20, classes)

	rng := rand.New(rand.NewSource(3))
	teams, err := PartitionTeams(pool, classes, PartitionParams{
		TeamCount: 4,
		Strategy:  StrategyClassBased,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	// With 2 classes over 4 teams each team must hold a single class.
	for i, tm := range teams {
		var class string
		for _, m := range tm.Members {
			if class == "" {
				class = m.Class
			} else if m.Class != class {
				t.Errorf("team %d mixes classes %s and %s", i, class, m.Class)
			}
		}
	}
}

func TestPartitionSplitHalves(t *testing.T) {
	classes := []string{"10A", "10B", "10C", "10D"}
	pool := makePool(40, classes)

	rng := rand.New(rand.NewSource(11))
	teams, err := PartitionTeams(pool, classes, PartitionParams{
		TeamCount: 6,
		Strategy:  StrategySplit,
		SplitMode: SplitModeHalves,
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	groupOne := map[string]bool{"10A": true, "10B": true}
	for i, tm := range teams {
		wantOne := i < 3
		for _, m := range tm.Members {
			if groupOne[m.Class] != wantOne {
				t.Errorf("team %d: member of class %s on the wrong half", i, m.Class)
			}
		}
	}
}

func TestPartitionSplitCustom(t *testing.T) {
	classes := []string{"10A", "10B", "10C"}
	pool := makePool(18, classes)

	rng := rand.New(rand.NewSource(5))
	teams, err := PartitionTeams(pool, classes, PartitionParams{
		TeamCount:    4,
		Strategy:     StrategySplit,
		SplitMode:    SplitModeCustom,
		SplitClasses: []string{"10C"},
	}, rng)
	if err != nil {
		t.Fatal(err)
	}

	for i, tm := range teams {
		for _, m := range tm.Members {
			inFirstHalf := i < 2
			if inFirstHalf && m.Class != "10C" {
				t.Errorf("team %d should only hold 10C, got %s", i, m.Class)
			}
			if !inFirstHalf && m.Class == "10C" {
				t.Errorf("team %d should not hold 10C", i)
			}
		}
	}
}

func TestPartitionDeterministicUnderSeed(t *testing.T) {
	classes := []string{"10A", "10B"}
	pool := makePool(16, classes)

	run := func() []models.Team {
		rng := rand.New(rand.NewSource(99))
		teams, err := PartitionTeams(pool, classes, PartitionParams{
			TeamCount: 4,
			Strategy:  StrategyBalanced,
		}, rng)
		if err != nil {
			t.Fatal(err)
		}
		return teams
	}

	a, b := run(), run()
	for i := range a {
		if len(a[i].Members) != len(b[i].Members) {
			t.Fatalf("team %d sizes differ between runs", i)
		}
		for j := range a[i].Members {
			if a[i].Members[j].ID != b[i].Members[j].ID {
				t.Fatalf("team %d member %d differs between runs", i, j)
			}
		}
	}
}

func TestPartitionClassBasedEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	teams, err := PartitionTeams(nil, nil, PartitionParams{
		TeamCount: 2,
		Strategy:  StrategyClassBased,
	}, rng)
	if err != nil {
		t.Fatalf("PartitionTeams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 empty teams, got %d", len(teams))
	}
	for i, tm := range teams {
		if len(tm.Members) != 0 {
			t.Errorf("team %d has %d members, want 0", i, len(tm.Members))
		}
	}
}

func TestPartitionUnknownStrategy(t *testing.T) {
	pool := makePool(4, []string{"10A"})
	rng := rand.New(rand.NewSource(1))
	if _, err := PartitionTeams(pool, []string{"10A"}, PartitionParams{
		TeamCount: 2,
		Strategy:  "swiss",
	}, rng); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
