package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/Dosada05/sportsday-system/draw"
	"github.com/Dosada05/sportsday-system/models"
)

// SnapshotService derives the read-only dashboard view and runs the match
// countdown clock. The clock is in-memory only; it restarts at the configured
// match duration after a process restart, which is acceptable for a
// single-day event.
type SnapshotService struct {
	state *StateManager
	clock Clock

	mu        sync.Mutex
	running   bool
	endsAt    time.Time     // valid while running
	remaining time.Duration // valid while paused
	primed    bool          // remaining initialized from settings
}

func NewSnapshotService(state *StateManager, clock Clock) *SnapshotService {
	return &SnapshotService{state: state, clock: clock}
}

func (s *SnapshotService) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.primeLocked()
	s.endsAt = s.clock.Now().Add(s.remaining)
	s.running = true
}

func (s *SnapshotService) PauseTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.remaining = s.endsAt.Sub(s.clock.Now())
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.running = false
}

// ResetTimer stops the clock and reloads it with the configured match
// duration.
func (s *SnapshotService) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.remaining = s.matchDuration()
	s.primed = true
}

// AdjustTimer adds minutes to the clock, clamping at zero.
func (s *SnapshotService) AdjustTimer(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primeLocked()
	delta := time.Duration(minutes) * time.Minute
	if s.running {
		s.endsAt = s.endsAt.Add(delta)
		if s.endsAt.Before(s.clock.Now()) {
			s.endsAt = s.clock.Now()
		}
		return
	}
	s.remaining += delta
	if s.remaining < 0 {
		s.remaining = 0
	}
}

// primeLocked lazily loads the paused clock from settings on first use.
func (s *SnapshotService) primeLocked() {
	if !s.primed {
		s.remaining = s.matchDuration()
		s.primed = true
	}
}

func (s *SnapshotService) matchDuration() time.Duration {
	minutes := 0
	s.state.View(func(st *models.TournamentState) {
		minutes = st.Settings.MatchDuration
	})
	return time.Duration(minutes) * time.Minute
}

// timerState returns the countdown in whole seconds plus the running flag.
func (s *SnapshotService) timerState(now time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primeLocked()
	if s.running {
		left := s.endsAt.Sub(now)
		if left <= 0 {
			// Expired while nobody paused it.
			s.running = false
			s.remaining = 0
			return 0, false
		}
		return int(left.Round(time.Second) / time.Second), true
	}
	return int(s.remaining / time.Second), false
}

// BuildSnapshot assembles the full dashboard view for the given instant.
// Active matches are the ones at the latest slot label not after now; next
// matches sit at the earliest label strictly after now. The call is
// read-only and safe to repeat at any cadence.
func (s *SnapshotService) BuildSnapshot(now time.Time) models.Snapshot {
	nowLabel := draw.LabelOf(now.Hour(), now.Minute())
	seconds, running := s.timerState(now)

	snap := models.Snapshot{
		TimerSeconds:     seconds,
		TimerRunning:     running,
		StartTimeDisplay: "--:--",
		GeneratedAt:      now,
	}

	s.state.View(func(st *models.TournamentState) {
		snap.Title = st.Title
		snap.FinalMode = st.Final.Active
		snap.Final = st.Final

		activeLabel, nextLabel := "", ""
		for _, m := range st.Matches {
			if m.Time <= nowLabel {
				if m.Time > activeLabel {
					activeLabel = m.Time
				}
			} else if nextLabel == "" || m.Time < nextLabel {
				nextLabel = m.Time
			}
		}
		for _, m := range st.Matches {
			switch m.Time {
			case activeLabel:
				if activeLabel != "" {
					snap.ActiveMatches = append(snap.ActiveMatches, snapshotMatch(st, m))
				}
			case nextLabel:
				snap.NextMatches = append(snap.NextMatches, snapshotMatch(st, m))
			}
		}
		switch {
		case activeLabel != "":
			snap.StartTimeDisplay = "KICKOFF " + activeLabel
		case nextLabel != "":
			snap.StartTimeDisplay = "NEXT " + nextLabel
		}

		ranked := append([]models.Team(nil), st.Teams...)
		sortStandings(ranked)
		if len(ranked) > 8 {
			ranked = ranked[:8]
		}
		for i, t := range ranked {
			snap.Leaderboard = append(snap.Leaderboard, models.SnapshotStanding{
				Rank:   i + 1,
				Team:   t.Name,
				Points: t.Points,
			})
		}
	})
	return snap
}

// FinalWinner names the final-stage winner, or "draw" on a tie.
func FinalWinner(f models.FinalStage) string {
	switch {
	case f.Score1 > f.Score2:
		return f.Team1
	case f.Score2 > f.Score1:
		return f.Team2
	default:
		return "draw"
	}
}

func snapshotMatch(st *models.TournamentState, m models.Match) models.SnapshotMatch {
	return models.SnapshotMatch{
		Time:     m.Time,
		Venue:    m.Venue,
		Activity: m.Activity,
		Team1:    teamName(st, m.Team1ID),
		Team2:    teamName(st, m.Team2ID),
		Score1:   m.Score1,
		Score2:   m.Score2,
	}
}

func teamName(st *models.TournamentState, id string) string {
	if t := st.TeamByID(id); t != nil {
		return t.Name
	}
	return fmt.Sprintf("? (%s)", id)
}
