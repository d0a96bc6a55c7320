package discovery

import (
	"strings"

	"gymfinder/internal/domain"
)

// Filter applies the request's predicates conjunctively, preserving input
// order. It never errors: unmatched filters simply reduce the result to
// empty. Predicates already pushed down to the catalog are harmless to
// reapply since they are idempotent on a conforming candidate set.
func Filter(candidates []domain.EnrichedVenue, req domain.SearchRequest) []domain.EnrichedVenue {
	out := make([]domain.EnrichedVenue, 0, len(candidates))
	for _, v := range candidates {
		if !matchCity(v, req.City) {
			continue
		}
		if !matchKeyword(v, req.Keyword) {
			continue
		}
		if req.Type != nil && v.Type != *req.Type {
			continue
		}
		if !matchPrograms(v, req.Programs) {
			continue
		}
		if !matchRadius(v, req) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchCity(v domain.EnrichedVenue, city *string) bool {
	if city == nil || *city == "" {
		return true
	}
	return v.City != nil && containsFold(*v.City, *city)
}

// matchKeyword passes when any of name, localized name, address, or
// description contains the keyword case-insensitively.
func matchKeyword(v domain.EnrichedVenue, kw *string) bool {
	if kw == nil || *kw == "" {
		return true
	}
	if containsFold(v.Name, *kw) {
		return true
	}
	if v.LocalName != nil && containsFold(*v.LocalName, *kw) {
		return true
	}
	if v.Address != nil && containsFold(*v.Address, *kw) {
		return true
	}
	if v.Description != nil && containsFold(*v.Description, *kw) {
		return true
	}
	return false
}

// matchPrograms uses OR semantics: at least one requested program must be in
// the venue's supported set.
func matchPrograms(v domain.EnrichedVenue, programs []string) bool {
	if len(programs) == 0 {
		return true
	}
	for _, p := range programs {
		if v.HasProgram(p) {
			return true
		}
	}
	return false
}

// matchRadius only applies when the request carried a position. Venues with
// no computed distance are not filtered by radius.
func matchRadius(v domain.EnrichedVenue, req domain.SearchRequest) bool {
	if !req.HasPosition() || v.DistanceKm == nil {
		return true
	}
	return *v.DistanceKm <= req.RadiusKm
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
