package app

import (
	"context"
	"fmt"
	"strings"

	"gymfinder/internal/domain"
)

type IngestionService struct {
	source  domain.GymSource
	catalog domain.VenueCatalog
	cache   domain.Cache
}

func NewIngestionService(src domain.GymSource, c domain.VenueCatalog, cache domain.Cache) *IngestionService {
	return &IngestionService{source: src, catalog: c, cache: cache}
}

// IngestGym fetches one venue payload and upserts it into the catalog.
// Known 404/401/403 answers are recorded as misses and stop gracefully;
// anything else (network/5xx/JSON) bubbles up.
func (s *IngestionService) IngestGym(ctx context.Context, id int64) error {
	p, err := s.source.GetGym(ctx, id)
	if err != nil {
		low := strings.ToLower(err.Error())

		// 404: gym not found upstream -> record miss and stop gracefully.
		if strings.Contains(low, "not found") {
			_ = s.catalog.LogMiss(ctx, id, 404, "not found")
			s.invalidateListings(ctx)
			return nil
		}

		// 401/403: unauthorized/forbidden/inactive -> record miss, stop.
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.catalog.LogMiss(ctx, id, 403, "inactive")
			s.invalidateListings(ctx)
			return nil
		}

		return err
	}

	if err := s.catalog.UpsertVenue(ctx, mapGym(id, p)); err != nil {
		return fmt.Errorf("upsert gym %d: %w", id, err)
	}

	// Venue changes can shift the city/country listings.
	s.invalidateListings(ctx)
	return nil
}

func (s *IngestionService) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, citiesCacheKey)
	_ = s.cache.Del(ctx, countriesCacheKey)
}
