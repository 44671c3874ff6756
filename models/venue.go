package models

// Venue is a place/activity combination that can host one match per slot.
type Venue struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Activity string `json:"activity"`
}
