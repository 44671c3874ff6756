package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/sportsday-system/models"
)

// StateRepository persists the whole tournament state as one document. Load
// returns (nil, nil) when no state has been saved yet; callers fall back to
// defaults.
type StateRepository interface {
	Load(ctx context.Context) (*models.TournamentState, error)
	Save(ctx context.Context, state *models.TournamentState) error
}

const stateRowID = 1

type postgresStateRepository struct {
	db *sql.DB
}

func NewPostgresStateRepository(db *sql.DB) StateRepository {
	return &postgresStateRepository{db: db}
}

// EnsureSchema creates the state table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS tournament_state (
			id INTEGER PRIMARY KEY,
			data JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create tournament_state table: %w", err)
	}
	return nil
}

func (r *postgresStateRepository) Load(ctx context.Context) (*models.TournamentState, error) {
	query := `SELECT data FROM tournament_state WHERE id = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, stateRowID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament state: %w", err)
	}

	var state models.TournamentState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode tournament state: %w", err)
	}
	return &state, nil
}

func (r *postgresStateRepository) Save(ctx context.Context, state *models.TournamentState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode tournament state: %w", err)
	}

	query := `
		INSERT INTO tournament_state (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, stateRowID, raw); err != nil {
		return fmt.Errorf("failed to save tournament state: %w", err)
	}
	return nil
}
