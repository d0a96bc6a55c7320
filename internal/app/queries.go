package app

import (
	"context"
	"time"

	"gymfinder/internal/domain"
)

const (
	citiesCacheKey    = "listing:cities"
	countriesCacheKey = "listing:countries"
)

// QueryService serves the auxiliary distinct/group reads. These change only
// on ingest, so they are cached; discovery responses never are.
type QueryService struct {
	catalog  domain.VenueCatalog
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(c domain.VenueCatalog, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{catalog: c, cache: cache, cacheTTL: ttl}
}

// ListCities returns distinct city values with venue counts, most-populous
// first.
func (s *QueryService) ListCities(ctx context.Context) ([]domain.CityCount, error) {
	var out []domain.CityCount
	if ok, _ := s.cache.Get(ctx, citiesCacheKey, &out); ok {
		return out, nil
	}
	out, err := s.catalog.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, citiesCacheKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

// ListCountries groups distinct cities per country, each country's cities
// ordered by venue count descending.
func (s *QueryService) ListCountries(ctx context.Context) ([]domain.CountryCities, error) {
	var out []domain.CountryCities
	if ok, _ := s.cache.Get(ctx, countriesCacheKey, &out); ok {
		return out, nil
	}
	out, err := s.catalog.ListCountries(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, countriesCacheKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
