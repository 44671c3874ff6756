package services

import "errors"

// Shared errors used across the services and the HTTP error mapping.
var (
	// Lookup failures
	ErrTeamNotFound        = errors.New("team not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrVenueNotFound       = errors.New("venue not found")
	ErrClassNotFound       = errors.New("class not found")

	// Draw and team assignment
	ErrTeamsLocked      = errors.New("teams are locked")
	ErrInvalidTeamCount = errors.New("team count must be at least one")
	ErrEmptyPool        = errors.New("no present participants to assign")
	ErrUnknownStrategy  = errors.New("unknown partition strategy")
	ErrSameTeamMove     = errors.New("participant is already in the target team")

	// Scheduling
	ErrNoVenues        = errors.New("no venues configured")
	ErrNoTeams         = errors.New("no teams to schedule")
	ErrNoMatches       = errors.New("no matches scheduled")
	ErrNoFutureSlots   = errors.New("no slots at or after the given time")
	ErrInvalidSettings = errors.New("invalid tournament settings")

	// Conflicts
	ErrVenueInUse = errors.New("venue is referenced by scheduled matches")

	// Authentication and state transfer
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStateFile   = errors.New("state file is not a valid tournament export")
)
