package models

import "errors"

// Settings are the tournament timing parameters. MatchDuration and
// BreakDuration are minutes and must both be positive; a slot is one match
// plus the following break. RoundCount is only used by the fixed-round
// fairness allocator.
type Settings struct {
	StartTime     string `json:"start_time"`
	FinalsTime    string `json:"finals_time"`
	MatchDuration int    `json:"match_duration"`
	BreakDuration int    `json:"break_duration"`
	RoundCount    int    `json:"round_count"`
}

// SlotDuration returns the minutes between consecutive slot starts.
func (s Settings) SlotDuration() int {
	return s.MatchDuration + s.BreakDuration
}

func (s Settings) Validate() error {
	if s.MatchDuration <= 0 {
		return errors.New("match duration must be positive")
	}
	if s.BreakDuration <= 0 {
		return errors.New("break duration must be positive")
	}
	return nil
}
