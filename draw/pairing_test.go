package draw

import (
	"fmt"
	"math/rand"
	"testing"
)

func teamIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("t%d", i+1)
	}
	return ids
}

func pairKey(p Pair) string {
	if p.Team1 < p.Team2 {
		return p.Team1 + "/" + p.Team2
	}
	return p.Team2 + "/" + p.Team1
}

func TestRoundRobinCompletenessEven(t *testing.T) {
	ids := teamIDs(8)
	rounds := RoundRobinRounds(ids)

	if len(rounds) != 7 {
		t.Fatalf("got %d rounds, want 7", len(rounds))
	}

	seen := make(map[string]int)
	for r, round := range rounds {
		if len(round) != 4 {
			t.Errorf("round %d has %d pairings, want 4", r, len(round))
		}
		inRound := make(map[string]bool)
		for _, p := range round {
			if inRound[p.Team1] || inRound[p.Team2] {
				t.Errorf("round %d: team repeats", r)
			}
			inRound[p.Team1], inRound[p.Team2] = true, true
			seen[pairKey(p)]++
		}
	}

	if len(seen) != 28 {
		t.Errorf("got %d distinct pairs, want C(8,2)=28", len(seen))
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("pair %s appears %d times", k, n)
		}
	}
}

func TestRoundRobinOddUsesBye(t *testing.T) {
	ids := teamIDs(5)
	rounds := RoundRobinRounds(ids)

	if len(rounds) != 5 {
		t.Fatalf("got %d rounds, want 5", len(rounds))
	}

	seen := make(map[string]int)
	for r, round := range rounds {
		if len(round) != 2 {
			t.Errorf("round %d has %d pairings, want 2 (one team byes)", r, len(round))
		}
		for _, p := range round {
			if p.Team1 == ByeID || p.Team2 == ByeID {
				t.Errorf("round %d: bye leaked into a pairing", r)
			}
			seen[pairKey(p)]++
		}
	}
	if len(seen) != 10 {
		t.Errorf("got %d distinct pairs, want C(5,2)=10", len(seen))
	}
}

func TestRoundRobinSmallInputs(t *testing.T) {
	if rounds := RoundRobinRounds(nil); rounds != nil {
		t.Errorf("no teams should yield no rounds, got %d", len(rounds))
	}
	if rounds := RoundRobinRounds(teamIDs(1)); len(rounds) != 1 || len(rounds[0]) != 0 {
		// One team plus a bye: a single empty round.
		t.Errorf("one team should yield one empty round, got %v", rounds)
	}
	rounds := RoundRobinRounds(teamIDs(2))
	if len(rounds) != 1 || len(rounds[0]) != 1 {
		t.Fatalf("two teams should yield one pairing, got %v", rounds)
	}
}

func TestUniquePairs(t *testing.T) {
	pool := UniquePairs(teamIDs(6))
	if len(pool) != 15 {
		t.Fatalf("got %d pairs, want C(6,2)=15", len(pool))
	}
	seen := make(map[string]bool)
	for _, p := range pool {
		k := pairKey(p)
		if seen[k] {
			t.Errorf("duplicate pair %s", k)
		}
		seen[k] = true
	}
}

func TestShuffledPairPoolDeterministicUnderSeed(t *testing.T) {
	a := ShuffledPairPool(teamIDs(7), rand.New(rand.NewSource(13)))
	b := ShuffledPairPool(teamIDs(7), rand.New(rand.NewSource(13)))
	if len(a) != len(b) {
		t.Fatal("pool sizes differ")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pool order differs at %d", i)
		}
	}
}
