package app_test

import (
	"context"
	"testing"
	"time"

	"gymfinder/internal/app"
	"gymfinder/internal/domain"
)

// ---- fakes ----

type listingCatalog struct {
	fakeCatalog
	cities    []domain.CityCount
	countries []domain.CountryCities
}

func (f *listingCatalog) ListCities(ctx context.Context) ([]domain.CityCount, error) {
	return f.cities, nil
}
func (f *listingCatalog) ListCountries(ctx context.Context) ([]domain.CountryCities, error) {
	return f.countries, nil
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]domain.CityCount:
		*d = v.([]domain.CityCount)
	case *[]domain.CountryCities:
		*d = v.([]domain.CountryCities)
	}
	return true, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

// ---- tests ----

func TestListCities_CacheMissThenHit(t *testing.T) {
	cat := &listingCatalog{cities: []domain.CityCount{
		{City: "北京", Count: 120},
		{City: "上海", Count: 80},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(cat, cache, 10*time.Minute)

	// Miss (first time, populates cache)
	out, err := q.ListCities(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 2 || out[0].City != "北京" || out[0].Count != 120 {
		t.Fatalf("unexpected cities: %+v", out)
	}

	// Mutate catalog to ensure second read indeed comes from cache
	cat.cities = []domain.CityCount{{City: "SHOULD NOT SEE THIS", Count: 1}}

	out2, err := q.ListCities(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if out2[0].City != "北京" {
		t.Fatalf("expected cached cities, got %+v", out2)
	}
}

func TestListCountries_Cache(t *testing.T) {
	cat := &listingCatalog{countries: []domain.CountryCities{
		{Country: "中国", Cities: []domain.CityCount{{City: "北京", Count: 120}, {City: "上海", Count: 80}}},
	}}
	cache := &fakeCache{}
	q := app.NewQueryService(cat, cache, 10*time.Minute)

	out, err := q.ListCountries(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out) != 1 || out[0].Country != "中国" || len(out[0].Cities) != 2 {
		t.Fatalf("unexpected countries: %+v", out)
	}

	cat.countries = nil
	out2, _ := q.ListCountries(context.Background())
	if len(out2) != 1 {
		t.Fatalf("expected cached countries, got %+v", out2)
	}
}
