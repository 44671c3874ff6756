package models

// FinalStage is the head-to-head closing stage shown on the dashboard once
// the group play is over. Team names are denormalized so the display keeps
// working even if the team list is regenerated afterwards.
type FinalStage struct {
	Active   bool   `json:"active"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Score1   int    `json:"score1"`
	Score2   int    `json:"score2"`
	Stage    string `json:"stage"`
	Activity string `json:"activity"`
}
