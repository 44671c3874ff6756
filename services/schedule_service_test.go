package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/sportsday-system/models"
)

func newScheduleService(m *StateManager, at time.Time) *ScheduleService {
	return NewScheduleService(m, FixedClock{Instant: at})
}

func TestGenerateScheduleGuards(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())

	if _, err := svc.GenerateSchedule(context.Background()); !errors.Is(err, ErrNoVenues) {
		t.Errorf("no venues: got %v", err)
	}
	seedVenues(t, m, models.Venue{ID: "v1", Name: "Court A", Activity: "Volleyball"})
	if _, err := svc.GenerateSchedule(context.Background()); !errors.Is(err, ErrNoTeams) {
		t.Errorf("no teams: got %v", err)
	}
}

func TestGenerateScheduleLocksTeamsAndPacksWindow(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 4)
	seedVenues(t, m, models.Venue{ID: "v1", Name: "Court A", Activity: "Volleyball"})

	matches, err := svc.GenerateSchedule(context.Background())
	if err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}
	// Full round robin of 4 teams on one venue: 6 matches, one per slot,
	// 20-minute spacing from the default 10:00 start.
	if len(matches) != 6 {
		t.Fatalf("expected 6 matches, got %d", len(matches))
	}
	wantTimes := []string{"10:00", "10:20", "10:40", "11:00", "11:20", "11:40"}
	for i, m := range svc.ListSchedule() {
		if m.Time != wantTimes[i] {
			t.Errorf("match %d at %s, want %s", i, m.Time, wantTimes[i])
		}
		if m.Venue != "Court A" || m.Activity != "Volleyball" {
			t.Errorf("match %d venue/activity = %s/%s", i, m.Venue, m.Activity)
		}
	}
	m.View(func(st *models.TournamentState) {
		if !st.TeamsLocked {
			t.Error("expected teams locked after generation")
		}
	})
}

func TestDayFlowScoresAndStandings(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	standings := NewStandingsService(m)
	ids := seedTeams(t, m, 4)
	seedVenues(t, m, models.Venue{ID: "v1", Name: "Court A", Activity: "Volleyball"})

	if _, err := svc.GenerateSchedule(context.Background()); err != nil {
		t.Fatalf("GenerateSchedule: %v", err)
	}

	findMatch := func(a, b string) string {
		var id string
		m.View(func(st *models.TournamentState) {
			for _, match := range st.Matches {
				if match.HasTeam(a) && match.HasTeam(b) {
					id = match.ID
					return
				}
			}
		})
		if id == "" {
			t.Fatalf("no match between %s and %s", a, b)
		}
		return id
	}

	// Team 1 beats Team 4 2-1; Team 2 and Team 3 draw 3-3.
	if err := svc.SetScore(context.Background(), findMatch(ids[0], ids[3]), intPtr(2), intPtr(1)); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if err := svc.SetScore(context.Background(), findMatch(ids[1], ids[2]), intPtr(3), intPtr(3)); err != nil {
		t.Fatalf("SetScore: %v", err)
	}

	ranked, err := standings.Recompute(context.Background())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if ranked[0].ID != ids[0] || ranked[0].Points != 3 {
		t.Errorf("rank 1 = %s (%d pts), want %s with 3", ranked[0].ID, ranked[0].Points, ids[0])
	}
	if ranked[1].Points != 1 || ranked[2].Points != 1 {
		t.Errorf("ranks 2-3 points = %d, %d, want 1, 1", ranked[1].Points, ranked[2].Points)
	}
	if ranked[3].ID != ids[3] || ranked[3].Points != 0 {
		t.Errorf("rank 4 = %s (%d pts), want %s with 0", ranked[3].ID, ranked[3].Points, ids[3])
	}

	// Team 1 should have taken a win and Team 4 a loss.
	if ranked[0].Stats.Wins != 1 || ranked[3].Stats.Losses != 1 {
		t.Errorf("stats fold wrong: %+v vs %+v", ranked[0].Stats, ranked[3].Stats)
	}
}

func TestSetScoreTogglesDone(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 2)

	match, err := svc.AddManualMatch(context.Background(), "t1", "t2", "Court A", "Football", "10:00")
	if err != nil {
		t.Fatalf("AddManualMatch: %v", err)
	}

	if err := svc.SetScore(context.Background(), match.ID, intPtr(1), nil); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	m.View(func(st *models.TournamentState) {
		if st.MatchByID(match.ID).Done {
			t.Error("half-scored match marked done")
		}
	})

	if err := svc.SetScore(context.Background(), match.ID, intPtr(1), intPtr(0)); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	m.View(func(st *models.TournamentState) {
		if !st.MatchByID(match.ID).Done {
			t.Error("fully scored match not marked done")
		}
	})

	if err := svc.SetScore(context.Background(), "ghost", nil, nil); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("missing match: got %v", err)
	}
}

func TestDeleteSlotRemovesWholeBlock(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 4)

	mustManual := func(a, b, label string) {
		t.Helper()
		if _, err := svc.AddManualMatch(context.Background(), a, b, "Court A", "Football", label); err != nil {
			t.Fatalf("AddManualMatch: %v", err)
		}
	}
	mustManual("t1", "t2", "10:00")
	mustManual("t3", "t4", "10:00")
	mustManual("t1", "t3", "10:20")

	if err := svc.DeleteSlot(context.Background(), "10:00"); err != nil {
		t.Fatalf("DeleteSlot: %v", err)
	}
	remaining := svc.ListSchedule()
	if len(remaining) != 1 || remaining[0].Time != "10:20" {
		t.Fatalf("expected only the 10:20 match left, got %+v", remaining)
	}

	if err := svc.DeleteSlot(context.Background(), "10:00"); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("empty slot: got %v", err)
	}
}

func TestShiftFromPreservesSlotGrouping(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 4)

	mustManual := func(a, b, label string) {
		t.Helper()
		if _, err := svc.AddManualMatch(context.Background(), a, b, "Court A", "Football", label); err != nil {
			t.Fatalf("AddManualMatch: %v", err)
		}
	}
	mustManual("t1", "t2", "09:55")
	mustManual("t3", "t4", "10:15")
	mustManual("t1", "t3", "10:15")
	mustManual("t2", "t4", "10:35")

	if err := svc.ShiftFrom(context.Background(), "10:15", 30); err != nil {
		t.Fatalf("ShiftFrom: %v", err)
	}

	got := map[string]int{}
	for _, match := range svc.ListSchedule() {
		got[match.Time]++
	}
	want := map[string]int{"09:55": 1, "10:45": 2, "11:05": 1}
	for label, count := range want {
		if got[label] != count {
			t.Errorf("slot %s has %d matches, want %d (all: %v)", label, got[label], count, got)
		}
	}
}

func TestShiftFromErrors(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 2)

	if err := svc.ShiftFrom(context.Background(), "10:00", 10); !errors.Is(err, ErrNoMatches) {
		t.Errorf("empty schedule: got %v", err)
	}

	if _, err := svc.AddManualMatch(context.Background(), "t1", "t2", "Court A", "Football", "09:00"); err != nil {
		t.Fatalf("AddManualMatch: %v", err)
	}
	if err := svc.ShiftFrom(context.Background(), "12:00", 10); !errors.Is(err, ErrNoFutureSlots) {
		t.Errorf("no slots after ref: got %v", err)
	}
}

func TestShiftNextRoundTargetsEarliestUnfinishedSlot(t *testing.T) {
	now := time.Date(2026, 6, 12, 10, 7, 30, 0, time.Local)
	m := newTestManager(t, nil)
	svc := newScheduleService(m, now)
	seedTeams(t, m, 4)

	mustManual := func(a, b, label string) models.Match {
		t.Helper()
		match, err := svc.AddManualMatch(context.Background(), a, b, "Court A", "Football", label)
		if err != nil {
			t.Fatalf("AddManualMatch: %v", err)
		}
		return match
	}
	done := mustManual("t1", "t2", "10:00")
	mustManual("t3", "t4", "10:20")
	mustManual("t1", "t3", "10:40")

	if err := svc.SetScore(context.Background(), done.ID, intPtr(1), intPtr(0)); err != nil {
		t.Fatalf("SetScore: %v", err)
	}

	// Earliest unfinished slot is 10:20; it moves to now+2 = 10:09 and the
	// 10:40 slot keeps its 20 minute offset.
	if err := svc.ShiftNextRound(context.Background()); err != nil {
		t.Fatalf("ShiftNextRound: %v", err)
	}
	times := []string{}
	for _, match := range svc.ListSchedule() {
		times = append(times, match.Time)
	}
	want := []string{"10:00", "10:09", "10:29"}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("schedule times = %v, want %v", times, want)
		}
	}
}

func TestGenerateFixedRoundsGuards(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())

	if _, err := svc.GenerateFixedRounds(context.Background(), nil); !errors.Is(err, ErrNoVenues) {
		t.Errorf("no venues: got %v", err)
	}
	seedVenues(t, m, models.Venue{ID: "v1", Name: "Court A", Activity: "Volleyball"})
	seedTeams(t, m, 1)
	if _, err := svc.GenerateFixedRounds(context.Background(), nil); !errors.Is(err, ErrNoTeams) {
		t.Errorf("one team: got %v", err)
	}
}

func TestGenerateFixedRoundsLocksTeamsAndIsSeedReproducible(t *testing.T) {
	build := func() []models.Match {
		m := newTestManager(t, nil)
		svc := newScheduleService(m, time.Now())
		seedTeams(t, m, 4)
		seedVenues(t, m,
			models.Venue{ID: "v1", Name: "Court A", Activity: "Volleyball"},
			models.Venue{ID: "v2", Name: "Court B", Activity: "Football"})

		seed := int64(11)
		matches, err := svc.GenerateFixedRounds(context.Background(), &seed)
		if err != nil {
			t.Fatalf("GenerateFixedRounds: %v", err)
		}
		m.View(func(st *models.TournamentState) {
			if !st.TeamsLocked {
				t.Error("expected teams locked after generation")
			}
		})
		return matches
	}

	first := build()

	// Default settings: 6 rounds at 20-minute spacing from 10:00. Every
	// round places at least one match and two venues cap a round at two.
	perSlot := map[string]int{}
	for _, match := range first {
		perSlot[match.Time]++
	}
	wantTimes := []string{"10:00", "10:20", "10:40", "11:00", "11:20", "11:40"}
	if len(perSlot) != len(wantTimes) {
		t.Fatalf("slot labels %v, want %v", perSlot, wantTimes)
	}
	for _, label := range wantTimes {
		if n := perSlot[label]; n < 1 || n > 2 {
			t.Errorf("slot %s holds %d matches", label, n)
		}
	}

	second := build()
	if len(second) != len(first) {
		t.Fatalf("draw sizes differ under the same seed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Time != b.Time || a.Team1ID != b.Team1ID || a.Team2ID != b.Team2ID || a.Venue != b.Venue {
			t.Errorf("draw differs under the same seed at %d: %+v vs %+v", i, a, b)
		}
	}
}

func TestScheduleRejectsUnpaddedLabels(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 2)

	// An unpadded label would sort after every padded morning label and
	// corrupt slot ordering, so it must never reach the state.
	if _, err := svc.AddManualMatch(context.Background(), "t1", "t2", "Court A", "Football", "9:30"); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("AddManualMatch with unpadded label: got %v", err)
	}
	if err := svc.ShiftFrom(context.Background(), "9:30", 10); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("ShiftFrom with unpadded ref: got %v", err)
	}
	if err := svc.DeleteSlot(context.Background(), "9:30"); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("DeleteSlot with unpadded label: got %v", err)
	}
	m.View(func(st *models.TournamentState) {
		if len(st.Matches) != 0 {
			t.Fatalf("unpadded label leaked into state: %+v", st.Matches)
		}
	})
}

func TestSetScoreReplacesBothSides(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 2)

	match, err := svc.AddManualMatch(context.Background(), "t1", "t2", "Court A", "Football", "10:00")
	if err != nil {
		t.Fatalf("AddManualMatch: %v", err)
	}
	if err := svc.SetScore(context.Background(), match.ID, intPtr(2), intPtr(1)); err != nil {
		t.Fatalf("SetScore: %v", err)
	}

	// Every call carries both sides; sending only one clears the other.
	if err := svc.SetScore(context.Background(), match.ID, intPtr(3), nil); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	m.View(func(st *models.TournamentState) {
		got := st.MatchByID(match.ID)
		if got.Score1 == nil || *got.Score1 != 3 {
			t.Errorf("score1 = %v, want 3", got.Score1)
		}
		if got.Score2 != nil {
			t.Errorf("score2 = %v, want cleared", got.Score2)
		}
		if got.Done {
			t.Error("half-scored match marked done")
		}
	})
}

func TestValidateScheduleFlagsManualDoubleBooking(t *testing.T) {
	m := newTestManager(t, nil)
	svc := newScheduleService(m, time.Now())
	seedTeams(t, m, 3)

	if _, err := svc.AddManualMatch(context.Background(), "t1", "t2", "Court A", "Football", "10:00"); err != nil {
		t.Fatalf("AddManualMatch: %v", err)
	}
	if _, err := svc.AddManualMatch(context.Background(), "t1", "t3", "Court B", "Chess", "10:00"); err != nil {
		t.Fatalf("AddManualMatch: %v", err)
	}

	violations := svc.ValidateSchedule()
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %+v", violations)
	}
	if violations[0].Slot != "10:00" || !violations[0].Manual {
		t.Errorf("violation = %+v, want manual team clash at 10:00", violations[0])
	}
}
