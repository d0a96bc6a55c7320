package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "gymfinder/internal/adapters/redis"
	"gymfinder/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := []domain.CityCount{{City: "北京", Count: 120}, {City: "上海", Count: 80}}
	if err := c.Set(ctx, "listing:cities", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.CityCount
	ok, err := c.Get(ctx, "listing:cities", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 2 || out[0].City != "北京" || out[1].Count != 80 {
		t.Fatalf("roundtrip: %+v", out)
	}

	if err := c.Del(ctx, "listing:cities"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "listing:cities", &out)
	if err != nil || ok {
		t.Fatalf("expected miss after delete, ok=%v err=%v", ok, err)
	}
}

func TestCache_MissIsNotAnError(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)

	var out []domain.CityCount
	ok, err := c.Get(context.Background(), "nope", &out)
	if err != nil {
		t.Fatalf("miss must not error: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}
