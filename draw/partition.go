package draw

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Dosada05/sportsday-system/models"
	"github.com/google/uuid"
)

// Strategy selects how the eligible pool is partitioned into teams.
type Strategy string

const (
	// StrategyBalanced interleaves the classes like dealing a deck of cards,
	// so every class is spread evenly over all teams.
	StrategyBalanced Strategy = "balanced"
	// StrategyClassBased keeps each class together on its own contiguous
	// block of teams.
	StrategyClassBased Strategy = "class_based"
	// StrategyRandom shuffles the whole pool and deals it round-robin.
	StrategyRandom Strategy = "random"
	// StrategySplit divides the classes into two halves and draws each half
	// onto its own half of the team list.
	StrategySplit Strategy = "split"
)

const (
	// SplitModeHalves puts the first half of the sorted class list in group
	// one and the rest in group two.
	SplitModeHalves = "halves"
	// SplitModeCustom uses an operator-supplied class subset as group one.
	SplitModeCustom = "custom"
)

// PartitionParams carries the strategy-specific knobs for PartitionTeams.
type PartitionParams struct {
	TeamCount    int
	Strategy     Strategy
	SplitMode    string   // split only
	SplitClasses []string // split custom mode: classes of group one
}

// PartitionTeams partitions the pool into params.TeamCount fresh teams using
// the selected strategy. The caller is responsible for filtering the pool to
// eligible participants and for validating the team count; the function never
// drops or duplicates a pool member. All randomness comes from rng, so a
// seeded source makes the draw reproducible.
func PartitionTeams(pool []models.Participant, classes []string, params PartitionParams, rng *rand.Rand) ([]models.Team, error) {
	teams := newTeams(params.TeamCount)
	classList := effectiveClasses(classes, pool)

	switch params.Strategy {
	case StrategyBalanced:
		dealDeck(teams, interleaveByClass(pool, classList, rng))
	case StrategyClassBased:
		partitionByClass(teams, pool, classList, rng)
	case StrategyRandom:
		dealDeck(teams, shuffled(pool, rng))
	case StrategySplit:
		if err := partitionSplit(teams, pool, classList, params, rng); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown draw strategy %q", params.Strategy)
	}
	return teams, nil
}

func newTeams(count int) []models.Team {
	teams := make([]models.Team, count)
	for i := range teams {
		teams[i] = models.Team{
			ID:      uuid.NewString(),
			Name:    fmt.Sprintf("Team %d", i+1),
			Members: []models.Participant{},
		}
	}
	return teams
}

// effectiveClasses extends the configured class list with any class that
// appears in the pool but was never registered, so no participant can fall
// outside every bucket. The result is sorted for a stable group order.
func effectiveClasses(classes []string, pool []models.Participant) []string {
	seen := make(map[string]bool, len(classes))
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, p := range pool {
		if !seen[p.Class] {
			seen[p.Class] = true
			out = append(out, p.Class)
		}
	}
	sort.Strings(out)
	return out
}

func shuffled(pool []models.Participant, rng *rand.Rand) []models.Participant {
	out := make([]models.Participant, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// dealDeck assigns deck[i] to team i modulo the team count.
func dealDeck(teams []models.Team, deck []models.Participant) {
	for i, p := range deck {
		t := &teams[i%len(teams)]
		t.Members = append(t.Members, p)
	}
}

// interleaveByClass builds the "deck of cards" sequence: one participant from
// each non-empty class queue in class order, repeated until every queue is
// drained. Queues are shuffled independently first.
func interleaveByClass(pool []models.Participant, classes []string, rng *rand.Rand) []models.Participant {
	queues := make(map[string][]models.Participant, len(classes))
	for _, p := range pool {
		queues[p.Class] = append(queues[p.Class], p)
	}
	for c := range queues {
		q := queues[c]
		rng.Shuffle(len(q), func(i, j int) { q[i], q[j] = q[j], q[i] })
	}

	deck := make([]models.Participant, 0, len(pool))
	for len(deck) < len(pool) {
		for _, c := range classes {
			if q := queues[c]; len(q) > 0 {
				deck = append(deck, q[0])
				queues[c] = q[1:]
			}
		}
	}
	return deck
}

// partitionByClass gives every class a contiguous block of teams and deals the
// class round-robin within its block only.
func partitionByClass(teams []models.Team, pool []models.Participant, classes []string, rng *rand.Rand) {
	if len(classes) == 0 {
		return
	}
	count := len(teams)
	perClass := (count + len(classes) - 1) / len(classes)
	if perClass < 1 {
		perClass = 1
	}

	byClass := make(map[string][]models.Participant, len(classes))
	for _, p := range pool {
		byClass[p.Class] = append(byClass[p.Class], p)
	}

	start := 0
	for _, c := range classes {
		end := start + perClass
		if end > count {
			end = count
		}
		if start >= count {
			// More classes than team blocks: wrap the overflow classes onto
			// the last block instead of dropping their members.
			start = count - perClass
			if start < 0 {
				start = 0
			}
			end = count
		}
		members := byClass[c]
		rng.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
		for i, p := range members {
			idx := start + i%(end-start)
			teams[idx].Members = append(teams[idx].Members, p)
		}
		if end < count {
			start = end
		} else {
			start = count
		}
	}
}

func partitionSplit(teams []models.Team, pool []models.Participant, classes []string, params PartitionParams, rng *rand.Rand) error {
	var groupOne map[string]bool
	switch params.SplitMode {
	case SplitModeCustom:
		groupOne = make(map[string]bool, len(params.SplitClasses))
		for _, c := range params.SplitClasses {
			groupOne[c] = true
		}
	case SplitModeHalves, "":
		mid := (len(classes) + 1) / 2
		groupOne = make(map[string]bool, mid)
		for _, c := range classes[:mid] {
			groupOne[c] = true
		}
	default:
		return fmt.Errorf("unknown split mode %q", params.SplitMode)
	}

	var poolOne, poolTwo []models.Participant
	for _, p := range pool {
		if groupOne[p.Class] {
			poolOne = append(poolOne, p)
		} else {
			poolTwo = append(poolTwo, p)
		}
	}

	mid := (len(teams) + 1) / 2
	dealDeck(teams[:mid], shuffled(poolOne, rng))
	if mid < len(teams) {
		dealDeck(teams[mid:], shuffled(poolTwo, rng))
	} else {
		// A single team gets both halves.
		dealDeck(teams, shuffled(poolTwo, rng))
	}
	return nil
}
