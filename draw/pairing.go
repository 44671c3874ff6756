package draw

import (
	"math/rand"
)

// ByeID is the sentinel opponent inserted when the team count is odd. It
// balances the rotation but never materializes into a real match.
const ByeID = ""

// Pair is an unordered team pairing.
type Pair struct {
	Team1 string
	Team2 string
}

// RoundRobinRounds generates the circle-method round-robin sequence for the
// given team ids. With N entries (bye included) it yields N-1 rounds, each a
// set of disjoint pairings; pairings involving the bye are omitted.
func RoundRobinRounds(teamIDs []string) [][]Pair {
	ids := make([]string, len(teamIDs))
	copy(ids, teamIDs)
	if len(ids)%2 != 0 {
		ids = append(ids, ByeID)
	}
	n := len(ids)
	if n < 2 {
		return nil
	}

	rounds := make([][]Pair, 0, n-1)
	for r := 0; r < n-1; r++ {
		var round []Pair
		for i := 0; i < n/2; i++ {
			a, b := ids[i], ids[n-1-i]
			if a != ByeID && b != ByeID {
				round = append(round, Pair{Team1: a, Team2: b})
			}
		}
		rounds = append(rounds, round)
		// Rotate: index 0 stays fixed, the rest shift by one.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}
	return rounds
}

// FlattenRounds concatenates a round sequence into a single pairing queue for
// the window-bounded allocator.
func FlattenRounds(rounds [][]Pair) []Pair {
	var out []Pair
	for _, r := range rounds {
		out = append(out, r...)
	}
	return out
}

// UniquePairs returns every unordered pair of teams, C(N,2) entries, in team
// list order.
func UniquePairs(teamIDs []string) []Pair {
	var out []Pair
	for i := 0; i < len(teamIDs); i++ {
		for j := i + 1; j < len(teamIDs); j++ {
			out = append(out, Pair{Team1: teamIDs[i], Team2: teamIDs[j]})
		}
	}
	return out
}

// ShuffledPairPool returns the full unique-pairing set in rng order. The
// fairness allocator regenerates the pool with this whenever it runs dry, so
// teams may meet again over a long schedule.
func ShuffledPairPool(teamIDs []string, rng *rand.Rand) []Pair {
	pool := UniquePairs(teamIDs)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool
}
