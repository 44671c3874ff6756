package services

import (
	"context"
	"sort"

	"github.com/Dosada05/sportsday-system/models"
)

// StandingsService recomputes the leaderboard from completed matches.
type StandingsService struct {
	state *StateManager
}

func NewStandingsService(state *StateManager) *StandingsService {
	return &StandingsService{state: state}
}

// recomputeStandings rebuilds every team's points and stats from scratch by
// folding over the completed matches. Matches referencing teams that no
// longer exist are skipped. Running it twice with no score changes yields
// identical results.
func recomputeStandings(st *models.TournamentState) {
	for i := range st.Teams {
		st.Teams[i].Points = 0
		st.Teams[i].Stats = models.TeamStats{}
	}
	for _, m := range st.Matches {
		if !m.Done || m.Score1 == nil || m.Score2 == nil {
			continue
		}
		t1 := st.TeamByID(m.Team1ID)
		t2 := st.TeamByID(m.Team2ID)
		if t1 == nil || t2 == nil {
			continue
		}
		s1, s2 := *m.Score1, *m.Score2

		t1.Stats.Played++
		t2.Stats.Played++
		t1.Stats.GoalsFor += s1
		t1.Stats.GoalsAgainst += s2
		t2.Stats.GoalsFor += s2
		t2.Stats.GoalsAgainst += s1

		switch {
		case s1 > s2:
			t1.Points += 3
			t1.Stats.Wins++
			t2.Stats.Losses++
		case s2 > s1:
			t2.Points += 3
			t2.Stats.Wins++
			t1.Stats.Losses++
		default:
			t1.Points++
			t2.Points++
			t1.Stats.Draws++
			t2.Stats.Draws++
		}
	}
}

// sortStandings orders teams by points, then goal difference, then goals
// scored. The sort is stable so residual ties keep their existing order.
func sortStandings(teams []models.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Stats.GoalDifference() != b.Stats.GoalDifference() {
			return a.Stats.GoalDifference() > b.Stats.GoalDifference()
		}
		return a.Stats.GoalsFor > b.Stats.GoalsFor
	})
}

// Recompute rebuilds and persists the standings, returning the ranked list.
func (s *StandingsService) Recompute(ctx context.Context) ([]models.Team, error) {
	var ranked []models.Team
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		recomputeStandings(st)
		ranked = append([]models.Team(nil), st.Teams...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortStandings(ranked)
	return ranked, nil
}

// Standings returns the current ranked list without recomputing.
func (s *StandingsService) Standings() []models.Team {
	var ranked []models.Team
	s.state.View(func(st *models.TournamentState) {
		ranked = append([]models.Team(nil), st.Teams...)
	})
	sortStandings(ranked)
	return ranked
}

// TopN returns the first n rows of the current standings.
func (s *StandingsService) TopN(n int) []models.Team {
	ranked := s.Standings()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
