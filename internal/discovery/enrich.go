package discovery

import (
	"time"

	"gymfinder/internal/domain"
)

// Open/closed display statuses.
const (
	OpenStatusText   = "营业中"
	ClosedStatusText = "休息中"
)

// Enrich derives the per-request fields of a venue: display distance (only
// when both the request position and the venue coordinates are present),
// live open/closed state at ref, and the type display label.
func Enrich(v domain.Venue, req domain.SearchRequest, ref time.Time) domain.EnrichedVenue {
	ev := domain.EnrichedVenue{Venue: v, TypeLabel: domain.TypeLabel(v.Type)}

	if req.HasPosition() && v.HasCoords() {
		d := RoundKm(DistanceKm(*req.Lat, *req.Lng, *v.Lat, *v.Lng))
		ev.DistanceKm = &d
	}

	hs := EvaluateHours(v.Schedule, ref)
	ev.Open = hs.Open
	ev.TodayHours = hs.TodayHours
	if hs.Open {
		ev.OpenStatus = OpenStatusText
	} else {
		ev.OpenStatus = ClosedStatusText
	}
	return ev
}
