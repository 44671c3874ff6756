package models

// TournamentState is the whole mutable tournament in one value. Every
// operation loads, mutates and persists this structure through the state
// manager; nothing keeps derived copies that could drift.
type TournamentState struct {
	Title        string        `json:"title"`
	Classes      []string      `json:"classes"`
	Participants []Participant `json:"participants"`
	Venues       []Venue       `json:"venues"`
	Teams        []Team        `json:"teams"`
	Matches      []Match       `json:"matches"`
	Settings     Settings      `json:"settings"`
	TeamsLocked  bool          `json:"teams_locked"`
	Final        FinalStage    `json:"final"`
}

// DefaultState returns the state a fresh or unreadable installation starts
// from.
func DefaultState() *TournamentState {
	return &TournamentState{
		Title:   "Tournament",
		Classes: []string{},
		Settings: Settings{
			StartTime:     "10:00",
			FinalsTime:    "14:00",
			MatchDuration: 15,
			BreakDuration: 5,
			RoundCount:    6,
		},
		Participants: []Participant{},
		Venues:       []Venue{},
		Teams:        []Team{},
		Matches:      []Match{},
	}
}

// TeamByID returns a pointer into the state's team slice, or nil.
func (s *TournamentState) TeamByID(id string) *Team {
	for i := range s.Teams {
		if s.Teams[i].ID == id {
			return &s.Teams[i]
		}
	}
	return nil
}

// MatchByID returns a pointer into the state's match slice, or nil.
func (s *TournamentState) MatchByID(id string) *Match {
	for i := range s.Matches {
		if s.Matches[i].ID == id {
			return &s.Matches[i]
		}
	}
	return nil
}

// VenueByID returns a pointer into the state's venue slice, or nil.
func (s *TournamentState) VenueByID(id string) *Venue {
	for i := range s.Venues {
		if s.Venues[i].ID == id {
			return &s.Venues[i]
		}
	}
	return nil
}
