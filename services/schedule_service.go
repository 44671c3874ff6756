package services

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Dosada05/sportsday-system/draw"
	"github.com/Dosada05/sportsday-system/models"
)

// ScheduleService owns match generation, score entry and slot re-timing.
type ScheduleService struct {
	state *StateManager
	clock Clock
}

func NewScheduleService(state *StateManager, clock Clock) *ScheduleService {
	return &ScheduleService{state: state, clock: clock}
}

// GenerateSchedule replaces the schedule with a round-robin draw packed into
// the window between the configured start time and the finals time. Teams are
// locked as a side effect so the schedule and the draw cannot drift apart.
func (s *ScheduleService) GenerateSchedule(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		if len(st.Venues) == 0 {
			return ErrNoVenues
		}
		if len(st.Teams) == 0 {
			return ErrNoTeams
		}
		if err := st.Settings.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}

		pairs := draw.FlattenRounds(draw.RoundRobinRounds(teamIDs(st.Teams)))
		allocated, err := draw.AllocateWindow(pairs, st.Venues,
			st.Settings.StartTime, st.Settings.FinalsTime, st.Settings.SlotDuration())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}

		st.Matches = allocated
		st.TeamsLocked = true
		recomputeStandings(st)
		matches = append([]models.Match(nil), allocated...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// GenerateFixedRounds replaces the schedule with the fairness-greedy draw of
// Settings.RoundCount rounds. Seed, when set, makes the draw reproducible.
func (s *ScheduleService) GenerateFixedRounds(ctx context.Context, seedArg *int64) ([]models.Match, error) {
	seed := time.Now().UnixNano()
	if seedArg != nil {
		seed = *seedArg
	}
	rng := rand.New(rand.NewSource(seed))

	var matches []models.Match
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		if len(st.Venues) == 0 {
			return ErrNoVenues
		}
		if len(st.Teams) < 2 {
			return ErrNoTeams
		}
		if err := st.Settings.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}

		allocated, err := draw.AllocateFairRounds(teamIDs(st.Teams), st.Venues,
			st.Settings.StartTime, st.Settings.RoundCount, st.Settings.SlotDuration(), rng)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}

		st.Matches = allocated
		st.TeamsLocked = true
		recomputeStandings(st)
		matches = append([]models.Match(nil), allocated...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// AddManualMatch appends an operator-placed match. It deliberately skips the
// double-booking checks; ValidateSchedule will flag it as a known exception.
func (s *ScheduleService) AddManualMatch(ctx context.Context, team1ID, team2ID, venueName, activity, timeLabel string) (models.Match, error) {
	if _, err := draw.ParseLabel(timeLabel); err != nil {
		return models.Match{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	var match models.Match
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		if st.TeamByID(team1ID) == nil || st.TeamByID(team2ID) == nil {
			return ErrTeamNotFound
		}
		match = models.Match{
			ID:       uuid.NewString(),
			Time:     timeLabel,
			Team1ID:  team1ID,
			Team2ID:  team2ID,
			Venue:    venueName,
			Activity: activity,
			Manual:   true,
		}
		st.Matches = append(st.Matches, match)
		return nil
	})
	if err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// DeleteSlot removes every match at the given slot label.
func (s *ScheduleService) DeleteSlot(ctx context.Context, label string) error {
	if _, err := draw.ParseLabel(label); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		kept := st.Matches[:0]
		removed := 0
		for _, m := range st.Matches {
			if m.Time == label {
				removed++
				continue
			}
			kept = append(kept, m)
		}
		if removed == 0 {
			return ErrMatchNotFound
		}
		st.Matches = kept
		recomputeStandings(st)
		return nil
	})
}

// ClearSchedule drops all matches and resets the standings. Destructive;
// callers confirm first.
func (s *ScheduleService) ClearSchedule(ctx context.Context) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Matches = []models.Match{}
		recomputeStandings(st)
		return nil
	})
}

// ListSchedule returns the matches ordered by slot label, then venue.
func (s *ScheduleService) ListSchedule() []models.Match {
	var out []models.Match
	s.state.View(func(st *models.TournamentState) {
		out = append([]models.Match(nil), st.Matches...)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].Venue < out[j].Venue
	})
	return out
}

// SetScore records a result. Both scores are replaced on every call, so a
// caller changing one side must resend the other; nil clears a side. A match
// counts as done once both scores are set. Standings are recomputed in the
// same transaction.
func (s *ScheduleService) SetScore(ctx context.Context, matchID string, score1, score2 *int) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		m := st.MatchByID(matchID)
		if m == nil {
			return ErrMatchNotFound
		}
		m.Score1 = score1
		m.Score2 = score2
		m.Done = score1 != nil && score2 != nil
		recomputeStandings(st)
		return nil
	})
}

// ShiftFrom moves every slot at or after the reference label by delta
// minutes. Matches sharing a label keep sharing it after the shift; the
// label "now" resolves against the injected clock.
func (s *ScheduleService) ShiftFrom(ctx context.Context, ref string, deltaMinutes int) error {
	if ref == "now" {
		now := s.clock.Now()
		ref = draw.LabelOf(now.Hour(), now.Minute())
	} else if _, err := draw.ParseLabel(ref); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	return s.state.Update(ctx, func(st *models.TournamentState) error {
		if len(st.Matches) == 0 {
			return ErrNoMatches
		}
		relabel := map[string]string{}
		for _, m := range st.Matches {
			if m.Time < ref {
				continue
			}
			if _, seen := relabel[m.Time]; seen {
				continue
			}
			shifted, err := draw.ShiftLabel(m.Time, deltaMinutes)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
			}
			relabel[m.Time] = shifted
		}
		if len(relabel) == 0 {
			return ErrNoFutureSlots
		}
		for i := range st.Matches {
			if to, ok := relabel[st.Matches[i].Time]; ok {
				st.Matches[i].Time = to
			}
		}
		return nil
	})
}

// ShiftNextRound re-times the earliest slot that still has an unfinished
// match to start two minutes from now, moving every later slot by the same
// delta so the spacing between slots is preserved.
func (s *ScheduleService) ShiftNextRound(ctx context.Context) error {
	now := s.clock.Now()
	target := now.Hour()*60 + now.Minute() + 2

	var ref string
	var delta int
	found := false
	s.state.View(func(st *models.TournamentState) {
		for _, m := range st.Matches {
			if m.Done {
				continue
			}
			if !found || m.Time < ref {
				ref = m.Time
				found = true
			}
		}
	})
	if !found {
		return ErrNoFutureSlots
	}
	refMinutes, err := draw.ParseLabel(ref)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	delta = target - refMinutes
	return s.ShiftFrom(ctx, ref, delta)
}

// ScheduleViolation is one double-booking found by ValidateSchedule. Manual
// marks violations that only involve operator-placed matches, which are
// allowed but still worth surfacing.
type ScheduleViolation struct {
	Slot    string `json:"slot"`
	Message string `json:"message"`
	Manual  bool   `json:"manual"`
}

// ValidateSchedule reports every team and venue booked twice in one slot.
func (s *ScheduleService) ValidateSchedule() []ScheduleViolation {
	var violations []ScheduleViolation
	s.state.View(func(st *models.TournamentState) {
		type seenEntry struct {
			match models.Match
		}
		teamSeen := map[string]seenEntry{}  // "slot|team" -> first match
		venueSeen := map[string]seenEntry{} // "slot|venue" -> first match

		for _, m := range st.Matches {
			for _, teamID := range []string{m.Team1ID, m.Team2ID} {
				key := m.Time + "|" + teamID
				if prev, ok := teamSeen[key]; ok {
					name := teamID
					if t := st.TeamByID(teamID); t != nil {
						name = t.Name
					}
					violations = append(violations, ScheduleViolation{
						Slot:    m.Time,
						Message: fmt.Sprintf("%s plays twice at %s", name, m.Time),
						Manual:  m.Manual || prev.match.Manual,
					})
				} else {
					teamSeen[key] = seenEntry{match: m}
				}
			}
			key := m.Time + "|" + m.Venue
			if prev, ok := venueSeen[key]; ok {
				violations = append(violations, ScheduleViolation{
					Slot:    m.Time,
					Message: fmt.Sprintf("venue %s hosts two matches at %s", m.Venue, m.Time),
					Manual:  m.Manual || prev.match.Manual,
				})
			} else {
				venueSeen[key] = seenEntry{match: m}
			}
		}
	})
	return violations
}

func teamIDs(teams []models.Team) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
