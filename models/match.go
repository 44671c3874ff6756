package models

// Match is a scheduled meeting between two teams on a venue at a slot label.
// Time is a fixed-width "HH:MM" label; matches sharing a label start together.
// Activity is copied from the venue at generation time so later venue edits
// do not rewrite history. Manual marks operator-added matches, which are
// exempt from the no-double-booking invariant.
type Match struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Team1ID  string `json:"team1_id"`
	Team2ID  string `json:"team2_id"`
	Venue    string `json:"venue"`
	Activity string `json:"activity"`
	Score1   *int   `json:"score1"`
	Score2   *int   `json:"score2"`
	Done     bool   `json:"done"`
	Manual   bool   `json:"manual,omitempty"`
}

// HasTeam reports whether the team plays in this match.
func (m Match) HasTeam(teamID string) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}
