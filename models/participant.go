package models

// Participant is a single roster entry. Class is the group label the
// participant belongs to; only participants with Present set are eligible
// for the team draw.
type Participant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Class   string `json:"class"`
	Present bool   `json:"present"`
}
