package discovery

import (
	"sort"

	"gymfinder/internal/domain"
)

// Rank orders venues in place by the selected key and returns the slice.
// The sort is stable so residual ties keep their input order; an
// unrecognized key falls back to distance. It never errors.
func Rank(items []domain.EnrichedVenue, key domain.SortKey) []domain.EnrichedVenue {
	switch key {
	case domain.SortRating:
		sort.SliceStable(items, func(i, j int) bool { return ratingLess(items[i], items[j]) })
	case domain.SortName:
		// Byte-wise ordering, no locale collation.
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	default:
		sort.SliceStable(items, func(i, j int) bool { return distanceLess(items[i], items[j]) })
	}
	return items
}

// distanceLess sorts ascending by distance; venues with no computed distance
// sort after all venues that have one.
func distanceLess(a, b domain.EnrichedVenue) bool {
	switch {
	case a.DistanceKm == nil:
		return false
	case b.DistanceKm == nil:
		return true
	default:
		return *a.DistanceKm < *b.DistanceKm
	}
}

// ratingLess sorts descending by rating, then descending by review count,
// then featured venues first.
func ratingLess(a, b domain.EnrichedVenue) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	if a.ReviewCount != b.ReviewCount {
		return a.ReviewCount > b.ReviewCount
	}
	if a.Featured != b.Featured {
		return a.Featured
	}
	return false
}
