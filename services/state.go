package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/sportsday-system/models"
	"github.com/Dosada05/sportsday-system/repositories"
)

// StateManager serializes every read and write of the tournament state.
// All mutations go through Update, which persists the state after the
// mutating function returns without error, so the repository row never gets
// ahead of or behind what operators see.
type StateManager struct {
	mu     sync.Mutex
	state  *models.TournamentState
	repo   repositories.StateRepository
	logger *slog.Logger
}

func NewStateManager(ctx context.Context, repo repositories.StateRepository, logger *slog.Logger) (*StateManager, error) {
	m := &StateManager{repo: repo, logger: logger}

	loaded, err := repo.Load(ctx)
	switch {
	case err != nil:
		// A broken row must not keep the whole tournament down on the day.
		logger.Warn("failed to load persisted state, starting from defaults", "error", err)
		m.state = models.DefaultState()
	case loaded == nil:
		m.state = models.DefaultState()
	default:
		m.state = loaded
	}
	return m, nil
}

// View runs fn under the state lock. The state must not be retained or
// mutated by fn; copy out what you need.
func (m *StateManager) View(fn func(s *models.TournamentState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.state)
}

// Update runs fn under the state lock and persists the state afterwards.
// If fn returns an error the state may already be partially mutated in
// memory; callers are expected to either mutate last or fail before touching
// anything, which is how every service in this package is written.
func (m *StateManager) Update(ctx context.Context, fn func(s *models.TournamentState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := fn(m.state); err != nil {
		return err
	}
	if err := m.repo.Save(ctx, m.state); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// Export returns the full state as indented JSON, suitable for download and
// later Import.
func (m *StateManager) Export() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return json.MarshalIndent(m.state, "", "  ")
}

// Import replaces the whole state with a previously exported document.
func (m *StateManager) Import(ctx context.Context, data []byte) error {
	var incoming models.TournamentState
	if err := json.Unmarshal(data, &incoming); err != nil {
		return ErrInvalidStateFile
	}
	if incoming.Settings.MatchDuration <= 0 || incoming.Settings.StartTime == "" {
		return ErrInvalidStateFile
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = &incoming
	if err := m.repo.Save(ctx, m.state); err != nil {
		return fmt.Errorf("persist imported state: %w", err)
	}
	m.logger.Info("state imported",
		"participants", len(incoming.Participants),
		"teams", len(incoming.Teams),
		"matches", len(incoming.Matches))
	return nil
}

// ResetAll discards everything and persists a fresh default state.
func (m *StateManager) ResetAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = models.DefaultState()
	if err := m.repo.Save(ctx, m.state); err != nil {
		return fmt.Errorf("persist reset state: %w", err)
	}
	m.logger.Info("state reset to defaults")
	return nil
}
