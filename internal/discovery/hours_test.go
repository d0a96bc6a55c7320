package discovery_test

import (
	"testing"
	"time"

	"gymfinder/internal/discovery"
	"gymfinder/internal/domain"
)

// 2024-01-01 was a Monday.
func monday(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func TestEvaluateHours_RegularDay(t *testing.T) {
	sched := domain.WeeklySchedule{"monday": "06:00-22:00"}

	if hs := discovery.EvaluateHours(sched, monday(7, 0)); !hs.Open {
		t.Fatalf("expected open at 07:00, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(23, 0)); hs.Open {
		t.Fatalf("expected closed at 23:00, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(6, 0)); !hs.Open {
		t.Fatalf("expected open at range start, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(22, 0)); !hs.Open {
		t.Fatalf("expected open at range end, got %+v", hs)
	}
}

func TestEvaluateHours_OvernightRange(t *testing.T) {
	sched := domain.WeeklySchedule{"monday": "22:00-06:00"}

	if hs := discovery.EvaluateHours(sched, monday(23, 30)); !hs.Open {
		t.Fatalf("expected open at 23:30, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(7, 0)); hs.Open {
		t.Fatalf("expected closed at 07:00, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(3, 0)); !hs.Open {
		t.Fatalf("expected open at 03:00 (pre-dawn side), got %+v", hs)
	}
}

func TestEvaluateHours_FullDayStyleRange(t *testing.T) {
	// "24:00" wraps to midnight, turning the range into an overnight one.
	sched := domain.WeeklySchedule{"monday": "06:00-24:00"}

	if hs := discovery.EvaluateHours(sched, monday(23, 59)); !hs.Open {
		t.Fatalf("expected open at 23:59, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(5, 0)); hs.Open {
		t.Fatalf("expected closed at 05:00, got %+v", hs)
	}
}

func TestEvaluateHours_ClosedVsUnknownAreDistinct(t *testing.T) {
	closed := discovery.EvaluateHours(domain.WeeklySchedule{"monday": "closed"}, monday(10, 0))
	if closed.Open || closed.TodayHours != discovery.ClosedTodayText {
		t.Fatalf("closed day: %+v", closed)
	}

	unknown := discovery.EvaluateHours(domain.WeeklySchedule{}, monday(10, 0))
	if unknown.Open || unknown.TodayHours != discovery.HoursUnknownText {
		t.Fatalf("unknown day: %+v", unknown)
	}

	if closed.TodayHours == unknown.TodayHours {
		t.Fatalf("closed and unknown states must not be conflated")
	}
}

func TestEvaluateHours_NilSchedule(t *testing.T) {
	hs := discovery.EvaluateHours(nil, monday(10, 0))
	if hs.Open || hs.TodayHours != discovery.HoursUnknownText {
		t.Fatalf("nil schedule: %+v", hs)
	}
}

func TestEvaluateHours_MultipleRanges(t *testing.T) {
	sched := domain.WeeklySchedule{"monday": "06:00-12:00,14:00-22:00"}

	if hs := discovery.EvaluateHours(sched, monday(13, 0)); hs.Open {
		t.Fatalf("expected closed during midday break, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(15, 0)); !hs.Open {
		t.Fatalf("expected open at 15:00, got %+v", hs)
	}
	if hs := discovery.EvaluateHours(sched, monday(15, 0)); hs.TodayHours != "06:00-12:00,14:00-22:00" {
		t.Fatalf("today hours must be the raw entry, got %q", hs.TodayHours)
	}
}

func TestEvaluateHours_MalformedRangesAreSkipped(t *testing.T) {
	// A bad token must not hide the valid range next to it.
	sched := domain.WeeklySchedule{"monday": "garbage,10:00-12:00"}
	if hs := discovery.EvaluateHours(sched, monday(11, 0)); !hs.Open {
		t.Fatalf("expected open via the valid range, got %+v", hs)
	}

	// A day with only malformed ranges behaves as closed, raw text kept.
	sched = domain.WeeklySchedule{"monday": "ab:cd-ef:gh"}
	hs := discovery.EvaluateHours(sched, monday(11, 0))
	if hs.Open {
		t.Fatalf("expected closed for malformed-only entry, got %+v", hs)
	}
	if hs.TodayHours != "ab:cd-ef:gh" {
		t.Fatalf("expected raw entry preserved, got %q", hs.TodayHours)
	}
}

func TestEvaluateHours_WeekdaySelection(t *testing.T) {
	sched := domain.WeeklySchedule{
		"monday":  "06:00-22:00",
		"tuesday": "closed",
	}
	// 2024-01-02 was a Tuesday.
	tuesday := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	if hs := discovery.EvaluateHours(sched, tuesday); hs.Open || hs.TodayHours != discovery.ClosedTodayText {
		t.Fatalf("tuesday: %+v", hs)
	}
}
