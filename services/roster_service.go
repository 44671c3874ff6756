package services

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Dosada05/sportsday-system/models"
)

// RosterService manages classes and the participant roster.
type RosterService struct {
	state *StateManager
}

func NewRosterService(state *StateManager) *RosterService {
	return &RosterService{state: state}
}

// AddClass registers a class label. Labels are uppercased and kept sorted;
// adding an existing label is a no-op.
func (s *RosterService) AddClass(ctx context.Context, label string) error {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		return ErrClassNotFound
	}
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		for _, c := range st.Classes {
			if c == label {
				return nil
			}
		}
		st.Classes = append(st.Classes, label)
		sort.Strings(st.Classes)
		return nil
	})
}

// RemoveClass drops a class label. Participants of that class stay on the
// roster; they just lose their grouping for class-aware draws.
func (s *RosterService) RemoveClass(ctx context.Context, label string) error {
	label = strings.ToUpper(strings.TrimSpace(label))
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		for i, c := range st.Classes {
			if c == label {
				st.Classes = append(st.Classes[:i], st.Classes[i+1:]...)
				return nil
			}
		}
		return ErrClassNotFound
	})
}

func (s *RosterService) ListClasses() []string {
	var out []string
	s.state.View(func(st *models.TournamentState) {
		out = append([]string(nil), st.Classes...)
	})
	return out
}

// ImportParticipants adds one participant per non-blank line of text, all
// assigned to the given class and marked present. Returns how many were
// added.
func (s *RosterService) ImportParticipants(ctx context.Context, class, text string) (int, error) {
	class = strings.ToUpper(strings.TrimSpace(class))
	added := 0
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		known := false
		for _, c := range st.Classes {
			if c == class {
				known = true
				break
			}
		}
		if !known {
			return ErrClassNotFound
		}
		for _, line := range strings.Split(text, "\n") {
			name := strings.TrimSpace(line)
			if name == "" {
				continue
			}
			st.Participants = append(st.Participants, models.Participant{
				ID:      uuid.NewString(),
				Name:    name,
				Class:   class,
				Present: true,
			})
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (s *RosterService) SetPresence(ctx context.Context, id string, present bool) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		for i := range st.Participants {
			if st.Participants[i].ID == id {
				st.Participants[i].Present = present
				return nil
			}
		}
		return ErrParticipantNotFound
	})
}

func (s *RosterService) RemoveParticipant(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		for i := range st.Participants {
			if st.Participants[i].ID == id {
				st.Participants = append(st.Participants[:i], st.Participants[i+1:]...)
				return nil
			}
		}
		return ErrParticipantNotFound
	})
}

// ClearParticipants empties the roster. Destructive; callers confirm first.
func (s *RosterService) ClearParticipants(ctx context.Context) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Participants = []models.Participant{}
		return nil
	})
}

func (s *RosterService) ListParticipants() []models.Participant {
	var out []models.Participant
	s.state.View(func(st *models.TournamentState) {
		out = append([]models.Participant(nil), st.Participants...)
	})
	return out
}
