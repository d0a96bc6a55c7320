package domain

import "context"

type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

type CountryCities struct {
	Country string      `json:"country"`
	Cities  []CityCount `json:"cities"`
}

// VenueCatalog is the external catalog store. FindCandidates pushes down
// whatever coarse predicates it can and may return a superset that the
// engine still refines (notably by radius, which needs the caller's
// position). CountCandidates must stay consistent with the same predicates.
type VenueCatalog interface {
	// Read paths
	FindCandidates(ctx context.Context, f CoarseFilters) ([]Venue, error)
	CountCandidates(ctx context.Context, f CoarseFilters) (int, error)
	GetVenue(ctx context.Context, id int64) (Venue, error)
	ListCities(ctx context.Context) ([]CityCount, error)
	ListCountries(ctx context.Context) ([]CountryCities, error)

	// Write paths (ingestor)
	UpsertVenue(ctx context.Context, v Venue) error
	LogMiss(ctx context.Context, id int64, status int, reason string) error
}

type GymSource interface {
	GetGym(ctx context.Context, id int64) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
