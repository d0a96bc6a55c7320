package app

import (
	"context"
	"errors"
	"time"

	"gymfinder/internal/discovery"
	"gymfinder/internal/domain"
)

// DefaultCity is the label used when no city was requested and none can be
// inferred from the results.
const DefaultCity = "北京"

// DiscoveryService is the orchestrator: Validate → Fetch+Enrich →
// Reduce(Filter→Rank→Paginate) → Assemble. It is stateless and
// request-scoped; the catalog fetch is the only suspension point.
type DiscoveryService struct {
	catalog domain.VenueCatalog
	loc     *time.Location
	now     func() time.Time
}

func NewDiscoveryService(catalog domain.VenueCatalog, loc *time.Location) *DiscoveryService {
	if loc == nil {
		loc = time.Local
	}
	return &DiscoveryService{catalog: catalog, loc: loc, now: time.Now}
}

func (s *DiscoveryService) Discover(ctx context.Context, req domain.SearchRequest) (domain.PageResult, error) {
	if err := req.Validate(); err != nil {
		return domain.PageResult{}, err
	}
	req = req.Normalized()

	candidates, err := s.catalog.FindCandidates(ctx, req.Coarse())
	if err != nil {
		return domain.PageResult{}, &domain.UpstreamError{Op: "catalog find", Err: err}
	}

	ref := s.now().In(s.loc)
	enriched := make([]domain.EnrichedVenue, 0, len(candidates))
	for _, v := range candidates {
		enriched = append(enriched, discovery.Enrich(v, req, ref))
	}

	filtered := discovery.Filter(enriched, req)
	ranked := discovery.Rank(filtered, req.Sort)

	// With a position the engine refined by radius, so the count must come
	// from the materialized list. Without one every predicate was pushed
	// down and the catalog's count query stays consistent with the list.
	total := len(ranked)
	if !req.HasPosition() {
		n, err := s.catalog.CountCandidates(ctx, req.Coarse())
		if err != nil {
			return domain.PageResult{}, &domain.UpstreamError{Op: "catalog count", Err: err}
		}
		total = n
	}

	items, meta := discovery.PaginateTotal(ranked, total, req.Page, req.PageSize)
	return domain.PageResult{
		Items:       items,
		Meta:        meta,
		CurrentCity: s.resolveCity(req, ranked),
		Request:     req,
	}, nil
}

// GetGym reads a single venue with live enrichment. Position is optional;
// when present the computed distance is attached like in search results.
func (s *DiscoveryService) GetGym(ctx context.Context, id int64, lat, lng *float64) (domain.EnrichedVenue, error) {
	req := domain.SearchRequest{Lat: lat, Lng: lng}
	if err := req.Validate(); err != nil {
		return domain.EnrichedVenue{}, err
	}

	v, err := s.catalog.GetVenue(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.EnrichedVenue{}, err
	}
	if err != nil {
		return domain.EnrichedVenue{}, &domain.UpstreamError{Op: "catalog get", Err: err}
	}
	return discovery.Enrich(v, req, s.now().In(s.loc)), nil
}

// resolveCity echoes the requested city, or best-effort labels the result
// set by its first venue's city when a position was given. This is an
// approximation, not a true reverse geocode.
func (s *DiscoveryService) resolveCity(req domain.SearchRequest, ranked []domain.EnrichedVenue) string {
	if req.City != nil && *req.City != "" {
		return *req.City
	}
	if req.HasPosition() {
		for _, v := range ranked {
			if v.City != nil && *v.City != "" {
				return *v.City
			}
		}
	}
	return DefaultCity
}
