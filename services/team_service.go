package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/Dosada05/sportsday-system/draw"
	"github.com/Dosada05/sportsday-system/models"
)

// TeamService owns the team draw and manual team edits.
type TeamService struct {
	state *StateManager
}

func NewTeamService(state *StateManager) *TeamService {
	return &TeamService{state: state}
}

// AssignTeamsInput carries the draw parameters. Seed, when set, makes the
// draw reproducible; operators normally leave it nil.
type AssignTeamsInput struct {
	TeamCount    int           `json:"team_count"`
	Strategy     draw.Strategy `json:"strategy"`
	SplitMode    string        `json:"split_mode,omitempty"`
	SplitClasses []string      `json:"split_classes,omitempty"`
	Seed         *int64        `json:"seed,omitempty"`
}

// AssignTeams replaces the current team set with a fresh draw over the
// present participants. Existing matches are left alone; regenerating the
// schedule afterwards is the operator's call.
func (s *TeamService) AssignTeams(ctx context.Context, in AssignTeamsInput) ([]models.Team, error) {
	switch in.Strategy {
	case draw.StrategyBalanced, draw.StrategyClassBased, draw.StrategyRandom, draw.StrategySplit:
	default:
		return nil, ErrUnknownStrategy
	}
	if in.TeamCount <= 0 {
		return nil, ErrInvalidTeamCount
	}

	seed := time.Now().UnixNano()
	if in.Seed != nil {
		seed = *in.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	var teams []models.Team
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		if st.TeamsLocked {
			return ErrTeamsLocked
		}
		pool := make([]models.Participant, 0, len(st.Participants))
		for _, p := range st.Participants {
			if p.Present {
				pool = append(pool, p)
			}
		}
		if len(pool) == 0 {
			return ErrEmptyPool
		}

		drawn, err := draw.PartitionTeams(pool, st.Classes, draw.PartitionParams{
			TeamCount:    in.TeamCount,
			Strategy:     in.Strategy,
			SplitMode:    in.SplitMode,
			SplitClasses: in.SplitClasses,
		}, rng)
		if err != nil {
			return err
		}
		st.Teams = drawn
		teams = append([]models.Team(nil), drawn...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// MoveParticipant moves a drawn participant between two teams.
func (s *TeamService) MoveParticipant(ctx context.Context, participantID, fromTeamID, toTeamID string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		if st.TeamsLocked {
			return ErrTeamsLocked
		}
		if fromTeamID == toTeamID {
			return ErrSameTeamMove
		}
		from := st.TeamByID(fromTeamID)
		to := st.TeamByID(toTeamID)
		if from == nil || to == nil {
			return ErrTeamNotFound
		}
		for i := range from.Members {
			if from.Members[i].ID == participantID {
				moved := from.Members[i]
				from.Members = append(from.Members[:i], from.Members[i+1:]...)
				to.Members = append(to.Members, moved)
				return nil
			}
		}
		return ErrParticipantNotFound
	})
}

func (s *TeamService) RenameTeam(ctx context.Context, id, name string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		t := st.TeamByID(id)
		if t == nil {
			return ErrTeamNotFound
		}
		t.Name = name
		return nil
	})
}

// SetLocked switches the draw lock. Locked teams reject reassignment and
// membership moves; schedule generation locks them as a side effect.
func (s *TeamService) SetLocked(ctx context.Context, locked bool) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.TeamsLocked = locked
		return nil
	})
}

func (s *TeamService) ListTeams() []models.Team {
	var out []models.Team
	s.state.View(func(st *models.TournamentState) {
		out = append([]models.Team(nil), st.Teams...)
	})
	return out
}
