package services

import (
	"context"

	"github.com/Dosada05/sportsday-system/models"
)

// FinalService runs the head-to-head closing stage. Team names are copied in
// at activation so the display survives later team edits.
type FinalService struct {
	state *StateManager
}

func NewFinalService(state *StateManager) *FinalService {
	return &FinalService{state: state}
}

// ActivateFinal switches the dashboard into final mode with the two given
// teams at 0-0.
func (s *FinalService) ActivateFinal(ctx context.Context, team1ID, team2ID, stage, activity string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		t1 := st.TeamByID(team1ID)
		t2 := st.TeamByID(team2ID)
		if t1 == nil || t2 == nil {
			return ErrTeamNotFound
		}
		st.Final = models.FinalStage{
			Active:   true,
			Team1:    t1.Name,
			Team2:    t2.Name,
			Stage:    stage,
			Activity: activity,
		}
		return nil
	})
}

func (s *FinalService) SetFinalScore(ctx context.Context, score1, score2 int) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		if !st.Final.Active {
			return ErrNoMatches
		}
		st.Final.Score1 = score1
		st.Final.Score2 = score2
		return nil
	})
}

// ExitFinal returns the dashboard to series mode. Scores and names stay so
// the winner can still be read off afterwards.
func (s *FinalService) ExitFinal(ctx context.Context) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Final.Active = false
		return nil
	})
}

func (s *FinalService) Final() models.FinalStage {
	var f models.FinalStage
	s.state.View(func(st *models.TournamentState) {
		f = st.Final
	})
	return f
}
