package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dosada05/sportsday-system/draw"
	"github.com/Dosada05/sportsday-system/models"
)

// AdminService covers tournament-wide operator actions: title and timing
// settings, state export/import and the full reset.
type AdminService struct {
	state *StateManager
}

func NewAdminService(state *StateManager) *AdminService {
	return &AdminService{state: state}
}

func (s *AdminService) SetTitle(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Title = title
		return nil
	})
}

// UpdateSettings replaces the timing parameters. Existing matches keep their
// labels; regenerating or shifting the schedule is a separate operator call.
func (s *AdminService) UpdateSettings(ctx context.Context, settings models.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	for _, label := range []string{settings.StartTime, settings.FinalsTime} {
		if _, err := draw.ParseLabel(label); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	if settings.StartTime >= settings.FinalsTime {
		return fmt.Errorf("%w: start time must be before finals time", ErrInvalidSettings)
	}
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Settings = settings
		return nil
	})
}

func (s *AdminService) Settings() models.Settings {
	var out models.Settings
	s.state.View(func(st *models.TournamentState) {
		out = st.Settings
	})
	return out
}

// Export returns the whole tournament as a JSON document.
func (s *AdminService) Export() ([]byte, error) {
	return s.state.Export()
}

// Import replaces the whole tournament with a previously exported document.
func (s *AdminService) Import(ctx context.Context, data []byte) error {
	return s.state.Import(ctx, data)
}

// ResetAll wipes everything back to defaults. Destructive; callers confirm
// first.
func (s *AdminService) ResetAll(ctx context.Context) error {
	return s.state.ResetAll(ctx)
}
