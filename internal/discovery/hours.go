package discovery

import (
	"strconv"
	"strings"
	"time"

	"gymfinder/internal/domain"
)

// Display texts for the two distinct "not open" schedule states. A day whose
// entry says "closed" rests today; a day with no entry at all has unknown
// hours. The two must never be conflated.
const (
	ClosedTodayText  = "今日休息"
	HoursUnknownText = "营业时间未知"

	closedMarker = "closed"
)

// dayKeys is indexed by time.Weekday (0=Sunday).
var dayKeys = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

type HoursStatus struct {
	Open       bool
	TodayHours string
}

// EvaluateHours computes the live open/closed state of a weekly schedule at
// the reference instant. The weekday is taken in ref's location. TodayHours
// is the day's raw schedule entry, returned verbatim for display.
//
// Malformed range tokens are skipped rather than fatal: a day with only
// malformed ranges behaves as closed but still shows its raw entry.
func EvaluateHours(schedule domain.WeeklySchedule, ref time.Time) HoursStatus {
	entry, ok := schedule[dayKeys[ref.Weekday()]]
	if !ok {
		return HoursStatus{Open: false, TodayHours: HoursUnknownText}
	}
	entry = strings.TrimSpace(entry)
	if entry == "" || strings.EqualFold(entry, closedMarker) {
		return HoursStatus{Open: false, TodayHours: ClosedTodayText}
	}

	now := ref.Hour()*60 + ref.Minute()
	open := false
	for _, rng := range strings.Split(entry, ",") {
		start, end, ok := parseRange(rng)
		if !ok {
			continue
		}
		if end > start {
			if now >= start && now <= end {
				open = true
				break
			}
		} else {
			// Overnight range spanning midnight, e.g. "22:00-06:00".
			if now >= start || now <= end {
				open = true
				break
			}
		}
	}
	return HoursStatus{Open: open, TodayHours: entry}
}

func parseRange(s string) (start, end int, ok bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	start, ok = parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// parseClock converts "HH:MM" to minutes since midnight. "24:00" wraps to 0,
// which turns full-day ranges like "06:00-24:00" into overnight ones.
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return (h%24)*60 + m, true
}
