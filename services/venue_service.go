package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Dosada05/sportsday-system/models"
)

// VenueService manages the venue list.
type VenueService struct {
	state *StateManager
}

func NewVenueService(state *StateManager) *VenueService {
	return &VenueService{state: state}
}

func (s *VenueService) AddVenue(ctx context.Context, name, activity string) (models.Venue, error) {
	venue := models.Venue{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Activity: strings.TrimSpace(activity),
	}
	err := s.state.Update(ctx, func(st *models.TournamentState) error {
		st.Venues = append(st.Venues, venue)
		return nil
	})
	if err != nil {
		return models.Venue{}, err
	}
	return venue, nil
}

// UpdateVenue renames a venue or changes its activity. Already scheduled
// matches keep the venue name and activity they were generated with.
func (s *VenueService) UpdateVenue(ctx context.Context, id, name, activity string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		v := st.VenueByID(id)
		if v == nil {
			return ErrVenueNotFound
		}
		if name = strings.TrimSpace(name); name != "" {
			v.Name = name
		}
		if activity = strings.TrimSpace(activity); activity != "" {
			v.Activity = activity
		}
		return nil
	})
}

// RemoveVenue deletes a venue unless a scheduled match still references it.
func (s *VenueService) RemoveVenue(ctx context.Context, id string) error {
	return s.state.Update(ctx, func(st *models.TournamentState) error {
		idx := -1
		for i := range st.Venues {
			if st.Venues[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrVenueNotFound
		}
		for _, m := range st.Matches {
			if m.Venue == st.Venues[idx].Name {
				return ErrVenueInUse
			}
		}
		st.Venues = append(st.Venues[:idx], st.Venues[idx+1:]...)
		return nil
	})
}

func (s *VenueService) ListVenues() []models.Venue {
	var out []models.Venue
	s.state.View(func(st *models.TournamentState) {
		out = append([]models.Venue(nil), st.Venues...)
	})
	return out
}
