package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/sportsday-system/models"
)

// memoryRepo is an in-memory StateRepository for service tests.
type memoryRepo struct {
	stored  *models.TournamentState
	loadErr error
	saveErr error
	saves   int
}

func (r *memoryRepo) Load(ctx context.Context) (*models.TournamentState, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.stored, nil
}

func (r *memoryRepo) Save(ctx context.Context, state *models.TournamentState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = state
	r.saves++
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(t *testing.T, repo *memoryRepo) *StateManager {
	t.Helper()
	if repo == nil {
		repo = &memoryRepo{}
	}
	m, err := NewStateManager(context.Background(), repo, discardLogger())
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}
	return m
}

func intPtr(v int) *int { return &v }

// seedTeams installs n teams named "Team 1".."Team N" with fixed ids t1..tN.
func seedTeams(t *testing.T, m *StateManager, n int) []string {
	t.Helper()
	ids := make([]string, n)
	err := m.Update(context.Background(), func(st *models.TournamentState) error {
		st.Teams = nil
		for i := 0; i < n; i++ {
			id := "t" + string(rune('1'+i))
			ids[i] = id
			st.Teams = append(st.Teams, models.Team{ID: id, Name: "Team " + string(rune('1'+i))})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seed teams: %v", err)
	}
	return ids
}

func seedVenues(t *testing.T, m *StateManager, venues ...models.Venue) {
	t.Helper()
	err := m.Update(context.Background(), func(st *models.TournamentState) error {
		st.Venues = append([]models.Venue(nil), venues...)
		return nil
	})
	if err != nil {
		t.Fatalf("seed venues: %v", err)
	}
}
