package models

import "time"

// SnapshotMatch is a match expanded with resolved team names for display.
type SnapshotMatch struct {
	Time     string `json:"time"`
	Venue    string `json:"venue"`
	Activity string `json:"activity"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Score1   *int   `json:"score1"`
	Score2   *int   `json:"score2"`
}

// SnapshotStanding is one row of the leaderboard excerpt carried in the
// snapshot.
type SnapshotStanding struct {
	Rank   int    `json:"rank"`
	Team   string `json:"team"`
	Points int    `json:"points"`
}

// Snapshot is the derived, read-only view published to the secondary display
// surface. The writer always builds the full object before publishing, so a
// reader either sees a complete snapshot or none at all.
type Snapshot struct {
	Title            string             `json:"title"`
	TimerSeconds     int                `json:"timer_seconds"`
	TimerRunning     bool               `json:"timer_running"`
	ActiveMatches    []SnapshotMatch    `json:"active_matches"`
	NextMatches      []SnapshotMatch    `json:"next_matches"`
	StartTimeDisplay string             `json:"start_time_display"`
	Leaderboard      []SnapshotStanding `json:"leaderboard"`
	FinalMode        bool               `json:"final_mode"`
	Final            FinalStage         `json:"final"`
	GeneratedAt      time.Time          `json:"generated_at"`
}
