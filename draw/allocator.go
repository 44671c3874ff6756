package draw

import (
	"fmt"
	"math/rand"

	"github.com/Dosada05/sportsday-system/models"
	"github.com/google/uuid"
)

// AllocateWindow packs a pairing queue into slots between startLabel and
// endLabel. Each slot assigns at most one pairing per venue, scanning the
// queue for the first pairing whose teams are both still free in the slot.
// The loop ends when the window closes, the queue drains, or a full pass
// over the venues places nothing.
func AllocateWindow(pairs []Pair, venues []models.Venue, startLabel, endLabel string, slotMinutes int) ([]models.Match, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}
	cur, err := ParseLabel(startLabel)
	if err != nil {
		return nil, err
	}
	end, err := ParseLabel(endLabel)
	if err != nil {
		return nil, err
	}

	queue := make([]Pair, len(pairs))
	copy(queue, pairs)

	var matches []models.Match
	for cur < end && len(queue) > 0 {
		placed := placeSlot(&queue, venues)
		if len(placed) == 0 {
			break
		}
		matches = append(matches, buildMatches(placed, FormatLabel(cur))...)
		cur += slotMinutes
	}
	return matches, nil
}

// AllocateFairRounds fills exactly roundCount slots from the unique-pairing
// pool, each venue greedily taking the eligible pairing whose two teams have
// played the least so far. Ties fall to pool order, which the seeded shuffle
// fixed at (re)generation time. An exhausted pool is regenerated mid-round.
func AllocateFairRounds(teamIDs []string, venues []models.Venue, startLabel string, roundCount, slotMinutes int, rng *rand.Rand) ([]models.Match, error) {
	if slotMinutes <= 0 {
		return nil, fmt.Errorf("slot duration must be positive, got %d", slotMinutes)
	}
	cur, err := ParseLabel(startLabel)
	if err != nil {
		return nil, err
	}
	if len(teamIDs) < 2 {
		return nil, fmt.Errorf("need at least 2 teams, got %d", len(teamIDs))
	}

	playCount := make(map[string]int, len(teamIDs))
	for _, id := range teamIDs {
		playCount[id] = 0
	}
	pool := ShuffledPairPool(teamIDs, rng)

	var matches []models.Match
	for r := 0; r < roundCount; r++ {
		busy := make(map[string]bool)
		var placed []placement
		for _, v := range venues {
			if len(pool) == 0 {
				pool = ShuffledPairPool(teamIDs, rng)
			}
			idx := pickFairest(pool, busy, playCount)
			if idx < 0 {
				continue
			}
			p := pool[idx]
			pool = append(pool[:idx], pool[idx+1:]...)
			busy[p.Team1], busy[p.Team2] = true, true
			playCount[p.Team1]++
			playCount[p.Team2]++
			placed = append(placed, placement{pair: p, venue: v})
		}
		matches = append(matches, buildMatches(placed, FormatLabel(cur))...)
		cur += slotMinutes
	}
	return matches, nil
}

type placement struct {
	pair  Pair
	venue models.Venue
}

// placeSlot walks the venues once, pulling the first pairing from the queue
// whose teams are both still free in this slot.
func placeSlot(queue *[]Pair, venues []models.Venue) []placement {
	busy := make(map[string]bool)
	var placed []placement
	for _, v := range venues {
		q := *queue
		for i, p := range q {
			if busy[p.Team1] || busy[p.Team2] {
				continue
			}
			*queue = append(q[:i], q[i+1:]...)
			busy[p.Team1], busy[p.Team2] = true, true
			placed = append(placed, placement{pair: p, venue: v})
			break
		}
	}
	return placed
}

// pickFairest returns the index of the eligible pairing with the lowest
// combined play count, or -1 if every pairing has a busy team.
func pickFairest(pool []Pair, busy map[string]bool, playCount map[string]int) int {
	best, bestSum := -1, 0
	for i, p := range pool {
		if busy[p.Team1] || busy[p.Team2] {
			continue
		}
		sum := playCount[p.Team1] + playCount[p.Team2]
		if best < 0 || sum < bestSum {
			best, bestSum = i, sum
		}
	}
	return best
}

func buildMatches(placed []placement, timeLabel string) []models.Match {
	out := make([]models.Match, 0, len(placed))
	for _, pl := range placed {
		out = append(out, models.Match{
			ID:       uuid.NewString(),
			Time:     timeLabel,
			Team1ID:  pl.pair.Team1,
			Team2ID:  pl.pair.Team2,
			Venue:    pl.venue.Name,
			Activity: pl.venue.Activity,
		})
	}
	return out
}
