package draw

import (
	"fmt"
)

// Slot labels are fixed-width "HH:MM" strings. The width guarantees that
// lexicographic order equals chronological order within a day, so labels can
// be compared and sorted as plain strings everywhere else in the system.

// ParseLabel converts a slot label to minutes after midnight. Only the exact
// fixed-width form is accepted; an unpadded label like "9:30" would sort
// after every "1x:xx" label and corrupt the ordering everywhere.
func ParseLabel(label string) (int, error) {
	if len(label) != 5 || label[2] != ':' {
		return 0, fmt.Errorf("invalid slot label %q: want HH:MM", label)
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if label[i] < '0' || label[i] > '9' {
			return 0, fmt.Errorf("invalid slot label %q: want HH:MM", label)
		}
	}
	h := int(label[0]-'0')*10 + int(label[1]-'0')
	m := int(label[3]-'0')*10 + int(label[4]-'0')
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid slot label %q: out of range", label)
	}
	return h*60 + m, nil
}

// FormatLabel converts minutes after midnight to a slot label. Values are
// wrapped into a single day.
func FormatLabel(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ShiftLabel moves a label by delta minutes, preserving the fixed width.
func ShiftLabel(label string, delta int) (string, error) {
	m, err := ParseLabel(label)
	if err != nil {
		return "", err
	}
	return FormatLabel(m + delta), nil
}

// LabelOf formats a wall-clock hour and minute as a slot label.
func LabelOf(hour, minute int) string {
	return FormatLabel(hour*60 + minute)
}
