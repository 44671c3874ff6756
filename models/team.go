package models

// TeamStats is the cumulative aggregate recalculated from completed matches.
type TeamStats struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// GoalDifference is the first standings tie-break.
func (s TeamStats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

type Team struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Members []Participant `json:"members"`
	Points  int           `json:"points"`
	Stats   TeamStats     `json:"stats"`
}
