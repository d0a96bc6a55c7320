package discovery_test

import (
	"math"
	"testing"

	"gymfinder/internal/discovery"
)

func TestDistanceKm_Symmetry(t *testing.T) {
	a := discovery.DistanceKm(39.9042, 116.4074, 31.2304, 121.4737)
	b := discovery.DistanceKm(31.2304, 121.4737, 39.9042, 116.4074)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %f vs %f", a, b)
	}
}

func TestDistanceKm_IdenticalPoints(t *testing.T) {
	if d := discovery.DistanceKm(39.90, 116.40, 39.90, 116.40); d > 1e-9 {
		t.Fatalf("expected zero distance for identical points, got %f", d)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Beijing to Shanghai, roughly 1068 km great-circle.
	d := discovery.DistanceKm(39.9042, 116.4074, 31.2304, 121.4737)
	if d < 1050 || d > 1080 {
		t.Fatalf("Beijing-Shanghai distance out of range: %f", d)
	}
}

func TestDistanceKm_NonNegative(t *testing.T) {
	if d := discovery.DistanceKm(-39.9, -116.4, 39.9, 116.4); d < 0 {
		t.Fatalf("negative distance: %f", d)
	}
}

func TestRoundKm(t *testing.T) {
	if got := discovery.RoundKm(1.20449); got != 1.2 {
		t.Fatalf("RoundKm(1.20449) = %f", got)
	}
	if got := discovery.RoundKm(11.996); got != 12.0 {
		t.Fatalf("RoundKm(11.996) = %f", got)
	}
}
