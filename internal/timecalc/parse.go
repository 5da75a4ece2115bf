package timecalc

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// ParseClock parses "HH:MM" or "HH:MM:SS" as a duration since midnight.
func ParseClock(src string) (time.Duration, error) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(src))
		if err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: expected HH:MM or HH:MM:SS", src)
}

// ParseStart parses an RFC3339 date-time, or a bare time of day which is
// placed on the logical day containing now. A time of day earlier than the
// midnight offset belongs to the calendar date after that day.
func ParseStart(src string, now time.Time, cal Calendar) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(src)); err == nil {
		return t, nil
	}
	clock, err := ParseClock(src)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or HH:MM[:SS]", src)
	}
	day := cal.DayOf(now)
	if clock < cal.Offset {
		day = day.AddDate(0, 0, 1)
	}
	return atClock(day, clock, cal.loc()), nil
}

// ParseDate parses "YYYY-MM-DD", "today", "yesterday" or "N days ago" into
// local midnight of a logical day.
func ParseDate(src string, now time.Time, cal Calendar) (time.Time, error) {
	src = strings.TrimSpace(src)
	if d, err := time.ParseInLocation("2006-01-02", src, cal.loc()); err == nil {
		return d, nil
	}

	today := cal.DayOf(now)
	switch strings.ToLower(src) {
	case "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	fields := strings.Fields(strings.ToLower(src))
	if len(fields) == 3 && (fields[1] == "days" || fields[1] == "day") && fields[2] == "ago" {
		n, err := strconv.Atoi(fields[0])
		if err == nil && n >= 0 {
			return today.AddDate(0, 0, -n), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, today, yesterday or \"N days ago\"", src)
}
